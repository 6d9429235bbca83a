package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	facultyDTO "sekolahku_backend/internals/features/school/faculties/dto"
	facultyModel "sekolahku_backend/internals/features/school/faculties/model"
	facultyService "sekolahku_backend/internals/features/school/faculties/service"
	helper "sekolahku_backend/internals/helpers"
)

type FacultyController struct {
	DB *gorm.DB
}

func NewFacultyController(db *gorm.DB) *FacultyController {
	return &FacultyController{DB: db}
}

// POST /api/a/faculties (account + profile in one unit)
func (h *FacultyController) CreateFaculty(c *fiber.Ctx) error {
	var req facultyDTO.CreateFacultyAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	created, err := facultyService.CreateFacultyWithAccount(h.DB, req)
	if err != nil {
		return err
	}

	log.Printf("[SUCCESS] Created faculty %s (user %s)", created.FacultyID, req.Username)
	return helper.JsonCreated(c, "Faculty created", facultyDTO.FromFacultyModel(created))
}

// GET /api/a/faculties
func (h *FacultyController) ListFaculties(c *fiber.Ctx) error {
	var rows []facultyModel.FacultyModel
	if err := h.DB.Preload("User").Preload("Subjects").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list faculties")
	}
	return helper.JsonList(c, "Faculties fetched", facultyDTO.FromFacultyModels(rows), int64(len(rows)))
}

// GET /api/a/faculties/:id
func (h *FacultyController) GetFaculty(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid faculty id")
	}

	var m facultyModel.FacultyModel
	if err := h.DB.Preload("User").Preload("Subjects").
		First(&m, "faculty_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Faculty not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch faculty")
	}

	return helper.JsonOK(c, "Faculty found", facultyDTO.FromFacultyModel(m))
}

// DELETE /api/a/faculties/:id
// Deletes the backing account; the profile and its join rows cascade with it.
func (h *FacultyController) DeleteFaculty(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid faculty id")
	}

	var m facultyModel.FacultyModel
	if err := h.DB.First(&m, "faculty_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Faculty not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch faculty")
	}

	if err := h.DB.Exec("DELETE FROM users WHERE id = ?", m.UserID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete faculty")
	}

	return helper.JsonDeleted(c, "Faculty deleted", fiber.Map{"faculty_id": id})
}
