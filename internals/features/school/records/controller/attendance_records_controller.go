package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceDTO "sekolahku_backend/internals/features/school/attendance/dto"
	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	recordDTO "sekolahku_backend/internals/features/school/records/dto"
	helper "sekolahku_backend/internals/helpers"
)

// GET /api/records/attendance?student_id=&subject_id=&date=
func (h *RecordsController) ListAttendance(c *fiber.Ctx) error {
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
	if v := c.Query("date"); v != "" {
		d, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid date filter")
		}
		q = q.Where("date = ?", d.UTC().Truncate(24*time.Hour))
	}

	var rows []attendanceModel.AttendanceModel
	if err := q.Order("date ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attendance")
	}
	return helper.JsonList(c, "Attendance", attendanceDTO.FromAttendanceModels(rows), int64(len(rows)))
}

// GET /api/records/attendance/:id
func (h *RecordsController) GetAttendance(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var row attendanceModel.AttendanceModel
	if err := h.DB.Preload("Student.User").Preload("Subject").First(&row, "attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Attendance record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attendance")
	}
	return helper.JsonOK(c, "Attendance record", attendanceDTO.FromAttendanceModel(row))
}

// POST /api/records/attendance
func (h *RecordsController) CreateAttendance(c *fiber.Ctx) error {
	var req recordDTO.CreateAttendanceRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid date")
	}

	row := attendanceModel.AttendanceModel{
		StudentID: req.StudentID,
		SubjectID: req.SubjectID,
		Date:      date.UTC().Truncate(24 * time.Hour),
		Status:    req.Status,
	}
	if err := h.DB.Omit("Student", "Subject").Create(&row).Error; err != nil {
		if helper.IsDuplicateErr(err) {
			return fiber.NewError(fiber.StatusConflict, "Attendance already marked for this student, subject and date")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create attendance record")
	}
	return helper.JsonCreated(c, "Attendance record created", attendanceDTO.FromAttendanceModel(row))
}

// PATCH /api/records/attendance/:id
func (h *RecordsController) UpdateAttendance(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req recordDTO.UpdateAttendanceRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	var row attendanceModel.AttendanceModel
	if err := h.DB.First(&row, "attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Attendance record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	if req.Status != nil {
		row.Status = *req.Status
	}
	if req.Date != nil {
		d, err := time.Parse(time.DateOnly, *req.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid date")
		}
		row.Date = d.UTC().Truncate(24 * time.Hour)
	}

	if err := h.DB.Omit("Student", "Subject").Save(&row).Error; err != nil {
		if helper.IsDuplicateErr(err) {
			return fiber.NewError(fiber.StatusConflict, "Attendance already marked for this student, subject and date")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update attendance record")
	}
	return helper.JsonUpdated(c, "Attendance record updated", attendanceDTO.FromAttendanceModel(row))
}

// DELETE /api/records/attendance/:id
func (h *RecordsController) DeleteAttendance(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	res := h.DB.Delete(&attendanceModel.AttendanceModel{}, "attendance_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete attendance record")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Attendance record not found")
	}
	return helper.JsonDeleted(c, "Attendance record deleted", fiber.Map{"attendance_id": id})
}
