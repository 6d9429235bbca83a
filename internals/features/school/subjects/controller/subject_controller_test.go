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

	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	enrollmentModel "sekolahku_backend/internals/features/school/enrollments/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/testutil"
)

func newSubjectApp(db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	ctrl := NewSubjectController(db)
	app.Post("/subjects", ctrl.CreateSubject)
	app.Get("/subjects", ctrl.ListSubjects)
	app.Get("/subjects/:id", ctrl.GetSubject)
	app.Put("/subjects/:id", ctrl.UpdateSubject)
	app.Delete("/subjects/:id", ctrl.DeleteSubject)
	return app
}

func jsonReq(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateSubjectAndDuplicateCode(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := newSubjectApp(db)

	resp, err := app.Test(jsonReq(t, http.MethodPost, "/subjects", fiber.Map{
		"subject_name": "Mathematics",
		"subject_code": "MATH101",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// same code again, case-insensitively
	resp, err = app.Test(jsonReq(t, http.MethodPost, "/subjects", fiber.Map{
		"subject_name": "Mathematics again",
		"subject_code": "math101",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var body struct {
		Success   bool   `json:"success"`
		ErrorCode string `json:"error_code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "CONFLICT", body.ErrorCode)
}

func TestCreateSubjectValidation(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := newSubjectApp(db)

	resp, err := app.Test(jsonReq(t, http.MethodPost, "/subjects", fiber.Map{
		"subject_name": "No code",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestDeleteSubjectCascades(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := newSubjectApp(db)

	subject := testutil.SeedSubject(t, db, "MATH101")
	student := testutil.SeedStudent(t, db, "andi", "R001")
	require.NoError(t, db.Create(&enrollmentModel.EnrollmentModel{
		StudentID: student.StudentID,
		SubjectID: subject.SubjectID,
	}).Error)

	resp, err := app.Test(jsonReq(t, http.MethodDelete, "/subjects/"+subject.SubjectID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var enrollments int64
	require.NoError(t, db.Model(&enrollmentModel.EnrollmentModel{}).Count(&enrollments).Error)
	assert.Zero(t, enrollments)

	var attendance int64
	require.NoError(t, db.Model(&attendanceModel.AttendanceModel{}).Count(&attendance).Error)
	assert.Zero(t, attendance)

	// a second delete finds nothing
	resp, err = app.Test(jsonReq(t, http.MethodDelete, "/subjects/"+subject.SubjectID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
