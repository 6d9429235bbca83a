package service

import (
	"errors"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	enrollmentModel "sekolahku_backend/internals/features/school/enrollments/model"
	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
)

// MarkAttendance upserts one row per submitted status, keyed on
// (student, subject, date), inside a single transaction. The population is
// exactly the subject's enrolled students; entries for anyone else are
// dropped, matching the roster the marking form presents.
func MarkAttendance(db *gorm.DB, subjectID uuid.UUID, date time.Time, entries map[uuid.UUID]string) ([]attendanceModel.AttendanceModel, error) {
	date = date.UTC().Truncate(24 * time.Hour)
	var marked []attendanceModel.AttendanceModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var subject subjectModel.SubjectModel
		if err := tx.First(&subject, "subject_id = ?", subjectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Subject not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch subject")
		}

		var enrolledIDs []uuid.UUID
		if err := tx.Model(&enrollmentModel.EnrollmentModel{}).
			Where("subject_id = ?", subjectID).
			Pluck("student_id", &enrolledIDs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch enrolled students")
		}
		enrolled := make(map[uuid.UUID]bool, len(enrolledIDs))
		for _, id := range enrolledIDs {
			enrolled[id] = true
		}

		for studentID, status := range entries {
			if !enrolled[studentID] {
				continue
			}
			if status != attendanceModel.StatusPresent && status != attendanceModel.StatusAbsent {
				return fiber.NewError(fiber.StatusBadRequest, "Status must be Present or Absent")
			}

			row := attendanceModel.AttendanceModel{
				StudentID: studentID,
				SubjectID: subjectID,
				Date:      date,
				Status:    status,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "student_id"},
					{Name: "subject_id"},
					{Name: "date"},
				},
				DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
			}).Create(&row).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to mark attendance")
			}
			marked = append(marked, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return marked, nil
}

// AttendancePercent is present/total × 100 across all of the student's rows,
// rounded to one decimal. Zero rows means 0, not a division by zero.
func AttendancePercent(db *gorm.DB, studentID uuid.UUID) (float64, error) {
	var total, present int64
	if err := db.Model(&attendanceModel.AttendanceModel{}).
		Where("student_id = ?", studentID).
		Count(&total).Error; err != nil {
		return 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to count attendance")
	}
	if total == 0 {
		return 0, nil
	}
	if err := db.Model(&attendanceModel.AttendanceModel{}).
		Where("student_id = ? AND status = ?", studentID, attendanceModel.StatusPresent).
		Count(&present).Error; err != nil {
		return 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to count attendance")
	}
	pct := float64(present) / float64(total) * 100
	return math.Round(pct*10) / 10, nil
}
