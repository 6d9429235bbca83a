package controller

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceDTO "sekolahku_backend/internals/features/school/attendance/dto"
	attendanceService "sekolahku_backend/internals/features/school/attendance/service"
	facultyService "sekolahku_backend/internals/features/school/faculties/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// POST /api/u/subjects/:id/attendance (faculty only)
// The caller must actually teach the subject.
func (h *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
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

	var req attendanceDTO.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Date must be YYYY-MM-DD")
	}

	entries := make(map[uuid.UUID]string, len(req.Entries))
	for rawID, status := range req.Entries {
		studentID, err := uuid.Parse(rawID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid student id: "+rawID)
		}
		entries[studentID] = status
	}

	marked, err := attendanceService.MarkAttendance(h.DB, subjectID, date, entries)
	if err != nil {
		return err
	}

	log.Printf("[SUCCESS] Marked attendance subject=%s date=%s rows=%d", subjectID, req.Date, len(marked))
	return helper.JsonOK(c, "Attendance marked", attendanceDTO.FromAttendanceModels(marked))
}
