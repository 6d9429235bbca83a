package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	subjectDTO "sekolahku_backend/internals/features/school/subjects/dto"
	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
	helper "sekolahku_backend/internals/helpers"
)

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

// POST /api/a/subjects
func (h *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var req subjectDTO.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	var created subjectModel.SubjectModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&subjectModel.SubjectModel{}).
			Where("lower(subject_code) = lower(?)", req.Code).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check code uniqueness")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Subject code already exists")
		}

		m := req.ToModel()
		if err := tx.Create(&m).Error; err != nil {
			if helper.IsDuplicateErr(err) {
				return fiber.NewError(fiber.StatusConflict, "Subject code already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create subject")
		}
		created = m
		return nil
	}); err != nil {
		return err
	}

	log.Printf("[SUCCESS] Created subject %s (%s)", created.SubjectName, created.SubjectCode)
	return helper.JsonCreated(c, "Subject created", subjectDTO.FromSubjectModel(created))
}

// GET /api/a/subjects?q=
func (h *SubjectController) ListSubjects(c *fiber.Ctx) error {
	tx := h.DB.Model(&subjectModel.SubjectModel{})

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		kw := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(subject_code) LIKE ? OR LOWER(subject_name) LIKE ?", kw, kw)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count subjects")
	}

	var rows []subjectModel.SubjectModel
	if err := tx.Order("subject_code ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list subjects")
	}

	return helper.JsonList(c, "Subjects fetched", subjectDTO.FromSubjectModels(rows), total)
}

// GET /api/a/subjects/:id
func (h *SubjectController) GetSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid subject id")
	}

	var m subjectModel.SubjectModel
	if err := h.DB.First(&m, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Subject not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch subject")
	}

	return helper.JsonOK(c, "Subject found", subjectDTO.FromSubjectModel(m))
}

// PUT /api/a/subjects/:id (partial)
func (h *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid subject id")
	}

	var req subjectDTO.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	var updated subjectModel.SubjectModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var m subjectModel.SubjectModel
		if err := tx.First(&m, "subject_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Subject not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch subject")
		}

		if req.Code != nil && !strings.EqualFold(*req.Code, m.SubjectCode) {
			var cnt int64
			if err := tx.Model(&subjectModel.SubjectModel{}).
				Where("lower(subject_code) = lower(?) AND subject_id <> ?", *req.Code, m.SubjectID).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to check code uniqueness")
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, "Subject code already exists")
			}
		}

		req.Apply(&m)
		if err := tx.Save(&m).Error; err != nil {
			if helper.IsDuplicateErr(err) {
				return fiber.NewError(fiber.StatusConflict, "Subject code already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update subject")
		}
		updated = m
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonUpdated(c, "Subject updated", subjectDTO.FromSubjectModel(updated))
}

// DELETE /api/a/subjects/:id
// Hard delete: enrollments, attendance and exam results referencing the
// subject go with it.
func (h *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid subject id")
	}

	res := h.DB.Delete(&subjectModel.SubjectModel{}, "subject_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete subject")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Subject not found")
	}

	log.Printf("[SUCCESS] Deleted subject %s", id)
	return helper.JsonDeleted(c, "Subject deleted", fiber.Map{"subject_id": id})
}
