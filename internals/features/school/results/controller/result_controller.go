package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	facultyService "sekolahku_backend/internals/features/school/faculties/service"
	resultDTO "sekolahku_backend/internals/features/school/results/dto"
	resultService "sekolahku_backend/internals/features/school/results/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type ResultController struct {
	DB *gorm.DB
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{DB: db}
}

// POST /api/u/subjects/:id/results (faculty only)
// The caller must actually teach the subject.
func (h *ResultController) AddResult(c *fiber.Ctx) error {
	role, err := helperAuth.RoleFromCtx(c, h.DB)
	if err != nil {
		return err
	}
	if role.Faculty == nil {
		return fiber.NewError(fiber.StatusForbidden, "Faculty role required")
	}

	subjectID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid subject id")
	}

	teaches, err := facultyService.Teaches(h.DB, role.Faculty.FacultyID, subjectID)
	if err != nil {
		return err
	}
	if !teaches {
		return fiber.NewError(fiber.StatusForbidden, "You are not assigned to this subject")
	}

	var req resultDTO.AddResultRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	created, err := resultService.RecordResult(h.DB, subjectID, req.StudentID, req.MarksObtained, req.TotalMarks)
	if err != nil {
		return err
	}

	log.Printf("[SUCCESS] Recorded result student=%s subject=%s %d/%d", req.StudentID, subjectID, req.MarksObtained, req.TotalMarks)
	return helper.JsonCreated(c, "Result recorded", resultDTO.FromExamResultModel(created))
}
