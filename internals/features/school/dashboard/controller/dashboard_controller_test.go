package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	attendanceService "sekolahku_backend/internals/features/school/attendance/service"
	enrollmentModel "sekolahku_backend/internals/features/school/enrollments/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/testutil"
)

func newDashboardApp(db *gorm.DB, userID uuid.UUID) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		return c.Next()
	})
	app.Get("/dashboard", NewDashboardController(db).Dashboard)
	return app
}

type dashboardEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Role  string `json:"role"`
		Admin *struct {
			TotalStudents int64 `json:"total_students"`
			TotalFaculty  int64 `json:"total_faculty"`
			TotalSubjects int64 `json:"total_subjects"`
		} `json:"admin"`
		Faculty *struct {
			Department string `json:"department"`
			Subjects   []struct {
				SubjectCode string `json:"subject_code"`
			} `json:"subjects"`
		} `json:"faculty"`
		Student *struct {
			RollNumber        string  `json:"roll_number"`
			AttendancePercent float64 `json:"attendance_percent"`
			Enrollments       []struct {
				SubjectID uuid.UUID `json:"subject_id"`
			} `json:"enrollments"`
			Results []struct {
				MarksObtained int `json:"marks_obtained"`
			} `json:"results"`
		} `json:"student"`
	} `json:"data"`
}

func getDashboard(t *testing.T, app *fiber.App) dashboardEnvelope {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body dashboardEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestDashboardAdminCounts(t *testing.T) {
	db := testutil.OpenTestDB(t)
	admin := testutil.SeedAdmin(t, db, "admin")
	testutil.SeedStudent(t, db, "andi", "R001")
	testutil.SeedStudent(t, db, "budi", "R002")
	testutil.SeedFaculty(t, db, "guru")
	testutil.SeedSubject(t, db, "MATH101")

	body := getDashboard(t, newDashboardApp(db, admin.ID))
	assert.Equal(t, "administrator", body.Data.Role)
	require.NotNil(t, body.Data.Admin)
	assert.Equal(t, int64(2), body.Data.Admin.TotalStudents)
	assert.Equal(t, int64(1), body.Data.Admin.TotalFaculty)
	assert.Equal(t, int64(1), body.Data.Admin.TotalSubjects)
	assert.Nil(t, body.Data.Student)
	assert.Nil(t, body.Data.Faculty)
}

func TestDashboardFacultySubjects(t *testing.T) {
	db := testutil.OpenTestDB(t)
	math := testutil.SeedSubject(t, db, "MATH101")
	faculty := testutil.SeedFaculty(t, db, "guru", math)

	body := getDashboard(t, newDashboardApp(db, faculty.UserID))
	assert.Equal(t, "faculty", body.Data.Role)
	require.NotNil(t, body.Data.Faculty)
	require.Len(t, body.Data.Faculty.Subjects, 1)
	assert.Equal(t, "MATH101", body.Data.Faculty.Subjects[0].SubjectCode)
}

func TestDashboardStudentSection(t *testing.T) {
	db := testutil.OpenTestDB(t)
	subject := testutil.SeedSubject(t, db, "MATH101")
	student := testutil.SeedStudent(t, db, "andi", "R001")
	require.NoError(t, db.Create(&enrollmentModel.EnrollmentModel{
		StudentID: student.StudentID,
		SubjectID: subject.SubjectID,
	}).Error)

	base := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	for i, status := range []string{
		attendanceModel.StatusPresent,
		attendanceModel.StatusPresent,
		attendanceModel.StatusPresent,
		attendanceModel.StatusAbsent,
	} {
		_, err := attendanceService.MarkAttendance(db, subject.SubjectID, base.AddDate(0, 0, i), map[uuid.UUID]string{
			student.StudentID: status,
		})
		require.NoError(t, err)
	}

	body := getDashboard(t, newDashboardApp(db, student.UserID))
	assert.Equal(t, "student", body.Data.Role)
	require.NotNil(t, body.Data.Student)
	assert.Equal(t, "R001", body.Data.Student.RollNumber)
	assert.Equal(t, 75.0, body.Data.Student.AttendancePercent)
	require.Len(t, body.Data.Student.Enrollments, 1)
	assert.Empty(t, body.Data.Student.Results)
}

func TestDashboardPlainAccount(t *testing.T) {
	db := testutil.OpenTestDB(t)
	plain := testutil.SeedUser(t, db, "nobody")

	body := getDashboard(t, newDashboardApp(db, plain.ID))
	assert.Equal(t, "plain", body.Data.Role)
	assert.Nil(t, body.Data.Admin)
	assert.Nil(t, body.Data.Faculty)
	assert.Nil(t, body.Data.Student)
}
