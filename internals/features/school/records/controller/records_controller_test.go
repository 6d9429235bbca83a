package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	enrollmentModel "sekolahku_backend/internals/features/school/enrollments/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/testutil"
)

func newRecordsApp(db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	ctrl := NewRecordsController(db)

	app.Get("/students", ctrl.ListStudents)
	app.Patch("/students/:id", ctrl.UpdateStudent)
	app.Delete("/students/:id", ctrl.DeleteStudent)
	app.Get("/faculty/:id", ctrl.GetFaculty)
	app.Patch("/faculty/:id", ctrl.UpdateFaculty)
	return app
}

func patchJSON(t *testing.T, app *fiber.App, target string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPatch, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestUpdateStudentRecord(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := newRecordsApp(db)
	student := testutil.SeedStudent(t, db, "andi", "R001")

	resp := patchJSON(t, app, "/students/"+student.StudentID.String(), fiber.Map{
		"semester": 3,
		"course":   "MSc",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var reloaded studentModel.StudentModel
	require.NoError(t, db.First(&reloaded, "student_id = ?", student.StudentID).Error)
	assert.Equal(t, 3, reloaded.Semester)
	assert.Equal(t, "MSc", reloaded.Course)
	assert.Equal(t, "R001", reloaded.RollNumber)
}

func TestDeleteStudentRecordRemovesAccountAndEnrollments(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := newRecordsApp(db)
	subject := testutil.SeedSubject(t, db, "MATH101")
	student := testutil.SeedStudent(t, db, "andi", "R001")
	require.NoError(t, db.Create(&enrollmentModel.EnrollmentModel{
		StudentID: student.StudentID,
		SubjectID: subject.SubjectID,
	}).Error)

	req := httptest.NewRequest(http.MethodDelete, "/students/"+student.StudentID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var users int64
	require.NoError(t, db.Model(&userModel.UserModel{}).Count(&users).Error)
	assert.Zero(t, users)

	var students int64
	require.NoError(t, db.Model(&studentModel.StudentModel{}).Count(&students).Error)
	assert.Zero(t, students)

	var enrollments int64
	require.NoError(t, db.Model(&enrollmentModel.EnrollmentModel{}).Count(&enrollments).Error)
	assert.Zero(t, enrollments)
}

func TestUpdateFacultyRecordReplacesSubjects(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := newRecordsApp(db)
	math := testutil.SeedSubject(t, db, "MATH101")
	phys := testutil.SeedSubject(t, db, "PHY101")
	faculty := testutil.SeedFaculty(t, db, "guru", math)

	resp := patchJSON(t, app, "/faculty/"+faculty.FacultyID.String(), fiber.Map{
		"subject_ids": []string{phys.SubjectID.String()},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Subjects []struct {
				SubjectCode string `json:"subject_code"`
			} `json:"subjects"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data.Subjects, 1)
	assert.Equal(t, "PHY101", body.Data.Subjects[0].SubjectCode)
}
