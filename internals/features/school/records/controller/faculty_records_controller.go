package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	facultyDTO "sekolahku_backend/internals/features/school/faculties/dto"
	facultyModel "sekolahku_backend/internals/features/school/faculties/model"
	recordDTO "sekolahku_backend/internals/features/school/records/dto"
	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
	helper "sekolahku_backend/internals/helpers"
)

// GET /api/records/faculty
func (h *RecordsController) ListFaculty(c *fiber.Ctx) error {
	var faculty []facultyModel.FacultyModel
	if err := h.DB.Preload("User").Preload("Subjects").Order("created_at ASC").Find(&faculty).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch faculty")
	}
	return helper.JsonList(c, "Faculty", facultyDTO.FromFacultyModels(faculty), int64(len(faculty)))
}

// GET /api/records/faculty/:id
func (h *RecordsController) GetFaculty(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var f facultyModel.FacultyModel
	if err := h.DB.Preload("User").Preload("Subjects").First(&f, "faculty_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Faculty not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch faculty")
	}
	return helper.JsonOK(c, "Faculty", facultyDTO.FromFacultyModel(f))
}

// PATCH /api/records/faculty/:id
// subject_ids, when present, replaces the taught-subject set wholesale.
func (h *RecordsController) UpdateFaculty(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req recordDTO.UpdateFacultyRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	var f facultyModel.FacultyModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("User").First(&f, "faculty_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Faculty not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch faculty")
		}

		if req.Department != nil {
			f.Department = *req.Department
			if err := tx.Omit("User", "Subjects").Save(&f).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to update faculty")
			}
		}

		if req.SubjectIDs != nil {
			var subjects []subjectModel.SubjectModel
			if len(*req.SubjectIDs) > 0 {
				if err := tx.Where("subject_id IN ?", *req.SubjectIDs).Find(&subjects).Error; err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch subjects")
				}
				if len(subjects) != len(*req.SubjectIDs) {
					return fiber.NewError(fiber.StatusNotFound, "One or more subjects not found")
				}
			}
			if err := tx.Model(&f).Association("Subjects").Replace(subjects); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to update taught subjects")
			}
			f.Subjects = subjects
		} else if err := tx.Preload("Subjects").First(&f, "faculty_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch faculty")
		}
		return nil
	})
	if err != nil {
		return err
	}

	return helper.JsonUpdated(c, "Faculty updated", facultyDTO.FromFacultyModel(f))
}

// DELETE /api/records/faculty/:id
func (h *RecordsController) DeleteFaculty(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var f facultyModel.FacultyModel
	if err := h.DB.First(&f, "faculty_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Faculty not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch faculty")
	}

	if err := h.DB.Exec("DELETE FROM users WHERE id = ?", f.UserID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete faculty")
	}

	log.Printf("[INFO] Deleted faculty record %s", id)
	return helper.JsonDeleted(c, "Faculty deleted", fiber.Map{"faculty_id": id})
}
