package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentDTO "sekolahku_backend/internals/features/school/enrollments/dto"
	enrollmentService "sekolahku_backend/internals/features/school/enrollments/service"
	subjectDTO "sekolahku_backend/internals/features/school/subjects/dto"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

// GET /api/u/enrollments/available
// An account without a student profile gets an empty list, not an error.
func (h *EnrollmentController) AvailableSubjects(c *fiber.Ctx) error {
	role, err := helperAuth.RoleFromCtx(c, h.DB)
	if err != nil {
		return err
	}
	if role.Student == nil {
		return helper.JsonOK(c, "No student profile", []subjectDTO.SubjectResponse{})
	}

	subjects, err := enrollmentService.AvailableSubjects(h.DB, role.Student.StudentID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Available subjects fetched", subjectDTO.FromSubjectModels(subjects))
}

// POST /api/u/enrollments (self-service, whole batch or nothing)
func (h *EnrollmentController) Enroll(c *fiber.Ctx) error {
	role, err := helperAuth.RoleFromCtx(c, h.DB)
	if err != nil {
		return err
	}
	if role.Student == nil {
		// deliberate non-error fallback, mirrors the empty dashboard
		return helper.JsonOK(c, "No student profile", []enrollmentDTO.EnrollmentResponse{})
	}

	var req enrollmentDTO.EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	created, err := enrollmentService.EnrollSubjects(h.DB, role.Student.StudentID, req.SubjectIDs)
	if err != nil {
		return err
	}

	log.Printf("[SUCCESS] Student %s enrolled in %d subjects", role.Student.StudentID, len(created))
	return helper.JsonCreated(c, "Enrolled", enrollmentDTO.FromEnrollmentModels(created))
}
