package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollmentModel "sekolahku_backend/internals/features/school/enrollments/model"
	resultModel "sekolahku_backend/internals/features/school/results/model"
	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
)

// RecordResult always inserts a new row: a (student, subject) pair may
// collect several results per term. The student must be enrolled in the
// subject. No bound between marks_obtained and total_marks is enforced.
func RecordResult(db *gorm.DB, subjectID, studentID uuid.UUID, marksObtained, totalMarks int) (resultModel.ExamResultModel, error) {
	var created resultModel.ExamResultModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var subject subjectModel.SubjectModel
		if err := tx.First(&subject, "subject_id = ?", subjectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Subject not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch subject")
		}

		var cnt int64
		if err := tx.Model(&enrollmentModel.EnrollmentModel{}).
			Where("student_id = ? AND subject_id = ?", studentID, subjectID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check enrollment")
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Student is not enrolled in this subject")
		}

		row := resultModel.ExamResultModel{
			StudentID:     studentID,
			SubjectID:     subjectID,
			MarksObtained: marksObtained,
			TotalMarks:    totalMarks,
		}
		if err := tx.Omit("Student", "Subject").Create(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to record result")
		}
		created = row
		return nil
	})
	return created, err
}

// ResultsOf lists all of a student's results with subjects attached.
func ResultsOf(db *gorm.DB, studentID uuid.UUID) ([]resultModel.ExamResultModel, error) {
	var rows []resultModel.ExamResultModel
	err := db.Preload("Subject").
		Where("student_id = ?", studentID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch results")
	}
	return rows, nil
}
