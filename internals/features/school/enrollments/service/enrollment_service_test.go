package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enrollmentModel "sekolahku_backend/internals/features/school/enrollments/model"
	studentService "sekolahku_backend/internals/features/school/students/service"
	"sekolahku_backend/internals/testutil"
)

func TestAvailableSubjectsExcludesEnrolled(t *testing.T) {
	db := testutil.OpenTestDB(t)
	math := testutil.SeedSubject(t, db, "MATH101")
	phys := testutil.SeedSubject(t, db, "PHY101")
	chem := testutil.SeedSubject(t, db, "CHE101")
	student := testutil.SeedStudent(t, db, "andi", "R001")

	_, err := EnrollSubjects(db, student.StudentID, []uuid.UUID{math.SubjectID})
	require.NoError(t, err)

	available, err := AvailableSubjects(db, student.StudentID)
	require.NoError(t, err)
	require.Len(t, available, 2)
	codes := []string{available[0].SubjectCode, available[1].SubjectCode}
	assert.Contains(t, codes, phys.SubjectCode)
	assert.Contains(t, codes, chem.SubjectCode)
}

func TestEnrollSubjectsRejectsInvalidIDAndRollsBack(t *testing.T) {
	db := testutil.OpenTestDB(t)
	math := testutil.SeedSubject(t, db, "MATH101")
	student := testutil.SeedStudent(t, db, "budi", "R002")

	_, err := EnrollSubjects(db, student.StudentID, []uuid.UUID{math.SubjectID, uuid.New()})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)

	// the valid id in the same batch must not survive
	var cnt int64
	require.NoError(t, db.Model(&enrollmentModel.EnrollmentModel{}).Count(&cnt).Error)
	assert.Zero(t, cnt)
}

func TestEnrollSubjectsRejectsAlreadyEnrolled(t *testing.T) {
	db := testutil.OpenTestDB(t)
	math := testutil.SeedSubject(t, db, "MATH101")
	student := testutil.SeedStudent(t, db, "cici", "R003")

	_, err := EnrollSubjects(db, student.StudentID, []uuid.UUID{math.SubjectID})
	require.NoError(t, err)

	// an enrolled subject is no longer in the available set
	_, err = EnrollSubjects(db, student.StudentID, []uuid.UUID{math.SubjectID})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestEnrollmentDrivesDerivedSubjectList(t *testing.T) {
	db := testutil.OpenTestDB(t)
	math := testutil.SeedSubject(t, db, "MATH101")
	phys := testutil.SeedSubject(t, db, "PHY101")
	student := testutil.SeedStudent(t, db, "dedi", "R004")

	created, err := EnrollSubjects(db, student.StudentID, []uuid.UUID{math.SubjectID, phys.SubjectID})
	require.NoError(t, err)
	require.Len(t, created, 2)
	for _, e := range created {
		assert.NotEmpty(t, e.EnrollmentDate)
		require.NotNil(t, e.Subject)
	}

	subjects, err := studentService.SubjectsOf(db, student.StudentID)
	require.NoError(t, err)
	assert.Len(t, subjects, 2)
}
