package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/testutil"
)

func newEnrollmentApp(db *gorm.DB, userID uuid.UUID) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		return c.Next()
	})
	ctrl := NewEnrollmentController(db)
	app.Get("/enrollments/available", ctrl.AvailableSubjects)
	app.Post("/enrollments", ctrl.Enroll)
	return app
}

func TestEnrollEndToEnd(t *testing.T) {
	db := testutil.OpenTestDB(t)
	math := testutil.SeedSubject(t, db, "MATH101")
	testutil.SeedSubject(t, db, "PHY101")
	student := testutil.SeedStudent(t, db, "andi", "R001")
	app := newEnrollmentApp(db, student.UserID)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(fiber.Map{
		"subject_ids": []string{math.SubjectID.String()},
	}))
	req := httptest.NewRequest(http.MethodPost, "/enrollments", &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// the enrolled subject drops out of the available list
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/enrollments/available", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []struct {
			SubjectCode string `json:"subject_code"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "PHY101", body.Data[0].SubjectCode)
}

func TestEnrollWithoutStudentProfileIsNoOp(t *testing.T) {
	db := testutil.OpenTestDB(t)
	testutil.SeedSubject(t, db, "MATH101")
	plain := testutil.SeedUser(t, db, "nobody")
	app := newEnrollmentApp(db, plain.ID)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/enrollments/available", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
		Data    []any  `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "No student profile", body.Message)
	assert.Empty(t, body.Data)
}
