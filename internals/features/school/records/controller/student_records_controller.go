package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	recordDTO "sekolahku_backend/internals/features/school/records/dto"
	studentDTO "sekolahku_backend/internals/features/school/students/dto"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
)

// GET /api/records/students
func (h *RecordsController) ListStudents(c *fiber.Ctx) error {
	var students []studentModel.StudentModel
	if err := h.DB.Preload("User").Order("created_at ASC").Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}
	return helper.JsonList(c, "Students", studentDTO.FromStudentModels(students), int64(len(students)))
}

// GET /api/records/students/:id
func (h *RecordsController) GetStudent(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var student studentModel.StudentModel
	if err := h.DB.Preload("User").First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}
	return helper.JsonOK(c, "Student", studentDTO.FromStudentModel(student))
}

// PATCH /api/records/students/:id
func (h *RecordsController) UpdateStudent(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req recordDTO.UpdateStudentRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	var student studentModel.StudentModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("User").First(&student, "student_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Student not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
		}

		if req.RollNumber != nil {
			student.RollNumber = *req.RollNumber
		}
		if req.Course != nil {
			student.Course = *req.Course
		}
		if req.Semester != nil {
			student.Semester = *req.Semester
		}

		if err := tx.Omit("User").Save(&student).Error; err != nil {
			if helper.IsDuplicateErr(err) {
				return fiber.NewError(fiber.StatusConflict, "Roll number already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
		}
		return nil
	})
	if err != nil {
		return err
	}

	return helper.JsonUpdated(c, "Student updated", studentDTO.FromStudentModel(student))
}

// DELETE /api/records/students/:id
// Removes the backing account; the profile and its enrollment, attendance and
// result rows follow through the cascades.
func (h *RecordsController) DeleteStudent(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var student studentModel.StudentModel
	if err := h.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	if err := h.DB.Exec("DELETE FROM users WHERE id = ?", student.UserID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete student")
	}

	log.Printf("[INFO] Deleted student record %s", id)
	return helper.JsonDeleted(c, "Student deleted", fiber.Map{"student_id": id})
}
