package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enrollmentModel "sekolahku_backend/internals/features/school/enrollments/model"
	"sekolahku_backend/internals/testutil"
)

func TestRecordResultRequiresEnrollment(t *testing.T) {
	db := testutil.OpenTestDB(t)
	subject := testutil.SeedSubject(t, db, "MATH101")
	student := testutil.SeedStudent(t, db, "andi", "R001")

	_, err := RecordResult(db, subject.SubjectID, student.StudentID, 80, 100)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestRecordResultUnknownSubject(t *testing.T) {
	db := testutil.OpenTestDB(t)
	student := testutil.SeedStudent(t, db, "budi", "R002")

	_, err := RecordResult(db, uuid.New(), student.StudentID, 80, 100)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestRecordResultAllowsRepeatsForSamePair(t *testing.T) {
	db := testutil.OpenTestDB(t)
	subject := testutil.SeedSubject(t, db, "MATH101")
	student := testutil.SeedStudent(t, db, "cici", "R003")
	require.NoError(t, db.Create(&enrollmentModel.EnrollmentModel{
		StudentID: student.StudentID,
		SubjectID: subject.SubjectID,
	}).Error)

	first, err := RecordResult(db, subject.SubjectID, student.StudentID, 40, 100)
	require.NoError(t, err)
	second, err := RecordResult(db, subject.SubjectID, student.StudentID, 90, 100)
	require.NoError(t, err)
	assert.NotEqual(t, first.ExamResultID, second.ExamResultID)

	rows, err := ResultsOf(db, student.StudentID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	marks := []int{rows[0].MarksObtained, rows[1].MarksObtained}
	assert.ElementsMatch(t, []int{40, 90}, marks)
}

func TestRecordResultMarksMayExceedTotal(t *testing.T) {
	db := testutil.OpenTestDB(t)
	subject := testutil.SeedSubject(t, db, "MATH101")
	student := testutil.SeedStudent(t, db, "dedi", "R004")
	require.NoError(t, db.Create(&enrollmentModel.EnrollmentModel{
		StudentID: student.StudentID,
		SubjectID: subject.SubjectID,
	}).Error)

	// bonus marks are a thing; the pair is stored as given
	row, err := RecordResult(db, subject.SubjectID, student.StudentID, 105, 100)
	require.NoError(t, err)
	assert.Equal(t, 105, row.MarksObtained)
}
