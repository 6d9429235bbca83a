package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	facultyDTO "sekolahku_backend/internals/features/school/faculties/dto"
	facultyModel "sekolahku_backend/internals/features/school/faculties/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	"sekolahku_backend/internals/testutil"
)

func newFacultyReq(username string, subjectIDs []uuid.UUID) facultyDTO.CreateFacultyAccountRequest {
	return facultyDTO.CreateFacultyAccountRequest{
		Username:   username,
		Password:   "password123",
		Email:      username + "@test.local",
		FirstName:  "Test",
		LastName:   "Faculty",
		Department: "Science",
		SubjectIDs: subjectIDs,
	}
}

func TestCreateFacultyWithAccountAndSubjects(t *testing.T) {
	db := testutil.OpenTestDB(t)
	math := testutil.SeedSubject(t, db, "MATH101")
	phys := testutil.SeedSubject(t, db, "PHY101")

	created, err := CreateFacultyWithAccount(db, newFacultyReq("guru", []uuid.UUID{math.SubjectID, phys.SubjectID}))
	require.NoError(t, err)
	require.NotNil(t, created.User)
	assert.True(t, created.User.IsStaff)
	assert.Len(t, created.Subjects, 2)

	taught, err := SubjectsTaughtBy(db, created.FacultyID)
	require.NoError(t, err)
	assert.Len(t, taught, 2)

	teaches, err := Teaches(db, created.FacultyID, math.SubjectID)
	require.NoError(t, err)
	assert.True(t, teaches)

	other := testutil.SeedSubject(t, db, "CHE101")
	teaches, err = Teaches(db, created.FacultyID, other.SubjectID)
	require.NoError(t, err)
	assert.False(t, teaches)
}

func TestCreateFacultyUnknownSubjectRollsBack(t *testing.T) {
	db := testutil.OpenTestDB(t)
	math := testutil.SeedSubject(t, db, "MATH101")

	_, err := CreateFacultyWithAccount(db, newFacultyReq("guru", []uuid.UUID{math.SubjectID, uuid.New()}))
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)

	var users int64
	require.NoError(t, db.Model(&userModel.UserModel{}).Count(&users).Error)
	assert.Zero(t, users)

	var faculty int64
	require.NoError(t, db.Model(&facultyModel.FacultyModel{}).Count(&faculty).Error)
	assert.Zero(t, faculty)
}

func TestCreateFacultyDuplicateUsername(t *testing.T) {
	db := testutil.OpenTestDB(t)
	testutil.SeedUser(t, db, "guru")

	_, err := CreateFacultyWithAccount(db, newFacultyReq("guru", nil))
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
}
