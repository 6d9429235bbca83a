package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	recordDTO "sekolahku_backend/internals/features/school/records/dto"
	resultDTO "sekolahku_backend/internals/features/school/results/dto"
	resultModel "sekolahku_backend/internals/features/school/results/model"
	helper "sekolahku_backend/internals/helpers"
)

// GET /api/records/results?student_id=&subject_id=
func (h *RecordsController) ListResults(c *fiber.Ctx) error {
	q := h.DB.Preload("Student.User").Preload("Subject")

	if v := c.Query("student_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid student_id filter")
		}
		q = q.Where("student_id = ?", id)
	}
	if v := c.Query("subject_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid subject_id filter")
		}
		q = q.Where("subject_id = ?", id)
	}

	var rows []resultModel.ExamResultModel
	if err := q.Order("created_at ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch results")
	}
	return helper.JsonList(c, "Results", resultDTO.FromExamResultModels(rows), int64(len(rows)))
}

// GET /api/records/results/:id
func (h *RecordsController) GetResult(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var row resultModel.ExamResultModel
	if err := h.DB.Preload("Student.User").Preload("Subject").First(&row, "exam_result_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Result not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch result")
	}
	return helper.JsonOK(c, "Result", resultDTO.FromExamResultModel(row))
}

// POST /api/records/results
func (h *RecordsController) CreateResult(c *fiber.Ctx) error {
	var req recordDTO.CreateResultRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	row := resultModel.ExamResultModel{
		StudentID:     req.StudentID,
		SubjectID:     req.SubjectID,
		MarksObtained: req.MarksObtained,
		TotalMarks:    req.TotalMarks,
	}
	if err := h.DB.Omit("Student", "Subject").Create(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create result")
	}
	return helper.JsonCreated(c, "Result created", resultDTO.FromExamResultModel(row))
}

// PATCH /api/records/results/:id
func (h *RecordsController) UpdateResult(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req recordDTO.UpdateResultRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	var row resultModel.ExamResultModel
	if err := h.DB.First(&row, "exam_result_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Result not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch result")
	}

	if req.MarksObtained != nil {
		row.MarksObtained = *req.MarksObtained
	}
	if req.TotalMarks != nil {
		row.TotalMarks = *req.TotalMarks
	}

	if err := h.DB.Omit("Student", "Subject").Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update result")
	}
	return helper.JsonUpdated(c, "Result updated", resultDTO.FromExamResultModel(row))
}

// DELETE /api/records/results/:id
func (h *RecordsController) DeleteResult(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	res := h.DB.Delete(&resultModel.ExamResultModel{}, "exam_result_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete result")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Result not found")
	}
	return helper.JsonDeleted(c, "Result deleted", fiber.Map{"exam_result_id": id})
}
