package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	enrollmentModel "sekolahku_backend/internals/features/school/enrollments/model"
	"sekolahku_backend/internals/testutil"
)

func TestMarkAttendanceUpsertsOnRepeat(t *testing.T) {
	db := testutil.OpenTestDB(t)
	subject := testutil.SeedSubject(t, db, "MATH101")
	student := testutil.SeedStudent(t, db, "andi", "R001")
	require.NoError(t, db.Create(&enrollmentModel.EnrollmentModel{
		StudentID: student.StudentID,
		SubjectID: subject.SubjectID,
	}).Error)

	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	marked, err := MarkAttendance(db, subject.SubjectID, date, map[uuid.UUID]string{
		student.StudentID: attendanceModel.StatusPresent,
	})
	require.NoError(t, err)
	require.Len(t, marked, 1)

	// same triple again with the opposite status: overwrite, not a second row
	_, err = MarkAttendance(db, subject.SubjectID, date, map[uuid.UUID]string{
		student.StudentID: attendanceModel.StatusAbsent,
	})
	require.NoError(t, err)

	var rows []attendanceModel.AttendanceModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, attendanceModel.StatusAbsent, rows[0].Status)
}

func TestMarkAttendanceSkipsNonEnrolledStudents(t *testing.T) {
	db := testutil.OpenTestDB(t)
	subject := testutil.SeedSubject(t, db, "PHY101")
	enrolled := testutil.SeedStudent(t, db, "budi", "R002")
	outsider := testutil.SeedStudent(t, db, "cici", "R003")
	require.NoError(t, db.Create(&enrollmentModel.EnrollmentModel{
		StudentID: enrolled.StudentID,
		SubjectID: subject.SubjectID,
	}).Error)

	marked, err := MarkAttendance(db, subject.SubjectID, time.Now(), map[uuid.UUID]string{
		enrolled.StudentID: attendanceModel.StatusPresent,
		outsider.StudentID: attendanceModel.StatusPresent,
	})
	require.NoError(t, err)
	require.Len(t, marked, 1)
	assert.Equal(t, enrolled.StudentID, marked[0].StudentID)
}

func TestMarkAttendanceUnknownSubject(t *testing.T) {
	db := testutil.OpenTestDB(t)
	student := testutil.SeedStudent(t, db, "dedi", "R004")

	_, err := MarkAttendance(db, uuid.New(), time.Now(), map[uuid.UUID]string{
		student.StudentID: attendanceModel.StatusPresent,
	})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestAttendancePercent(t *testing.T) {
	db := testutil.OpenTestDB(t)
	subject := testutil.SeedSubject(t, db, "CHE101")
	student := testutil.SeedStudent(t, db, "eka", "R005")
	require.NoError(t, db.Create(&enrollmentModel.EnrollmentModel{
		StudentID: student.StudentID,
		SubjectID: subject.SubjectID,
	}).Error)

	pct, err := AttendancePercent(db, student.StudentID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, pct)

	base := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	statuses := []string{
		attendanceModel.StatusPresent,
		attendanceModel.StatusPresent,
		attendanceModel.StatusPresent,
		attendanceModel.StatusAbsent,
	}
	for i, status := range statuses {
		_, err := MarkAttendance(db, subject.SubjectID, base.AddDate(0, 0, i), map[uuid.UUID]string{
			student.StudentID: status,
		})
		require.NoError(t, err)
	}

	pct, err = AttendancePercent(db, student.StudentID)
	require.NoError(t, err)
	assert.Equal(t, 75.0, pct)
}
