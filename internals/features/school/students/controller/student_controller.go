package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentDTO "sekolahku_backend/internals/features/school/students/dto"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	studentService "sekolahku_backend/internals/features/school/students/service"
	subjectDTO "sekolahku_backend/internals/features/school/subjects/dto"
	helper "sekolahku_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// POST /api/a/students (account + profile in one unit)
func (h *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req studentDTO.CreateStudentAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	created, err := studentService.CreateStudentWithAccount(h.DB, req)
	if err != nil {
		return err
	}

	log.Printf("[SUCCESS] Created student %s (roll %s)", created.StudentID, created.RollNumber)
	return helper.JsonCreated(c, "Student created", studentDTO.FromStudentModel(created))
}

// GET /api/a/students
func (h *StudentController) ListStudents(c *fiber.Ctx) error {
	var rows []studentModel.StudentModel
	if err := h.DB.Preload("User").Order("roll_number ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list students")
	}
	return helper.JsonList(c, "Students fetched", studentDTO.FromStudentModels(rows), int64(len(rows)))
}

// GET /api/a/students/:id (detail including the derived subject set)
func (h *StudentController) GetStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	var m studentModel.StudentModel
	if err := h.DB.Preload("User").First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	subjects, err := studentService.SubjectsOf(h.DB, m.StudentID)
	if err != nil {
		return err
	}

	resp := studentDTO.FromStudentModel(m)
	resp.Subjects = subjectDTO.FromSubjectModels(subjects)
	return helper.JsonOK(c, "Student found", resp)
}

// DELETE /api/a/students/:id
// Deletes the backing account; profile, enrollments, attendance and results
// cascade with it.
func (h *StudentController) DeleteStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	var m studentModel.StudentModel
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	if err := h.DB.Exec("DELETE FROM users WHERE id = ?", m.UserID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete student")
	}

	return helper.JsonDeleted(c, "Student deleted", fiber.Map{"student_id": id})
}
