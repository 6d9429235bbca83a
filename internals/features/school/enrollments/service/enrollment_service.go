package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollmentModel "sekolahku_backend/internals/features/school/enrollments/model"
	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
	helper "sekolahku_backend/internals/helpers"
)

// AvailableSubjects is everything the student is not enrolled in yet.
func AvailableSubjects(db *gorm.DB, studentID uuid.UUID) ([]subjectModel.SubjectModel, error) {
	var subjects []subjectModel.SubjectModel
	err := db.
		Where("subject_id NOT IN (?)",
			db.Model(&enrollmentModel.EnrollmentModel{}).
				Select("subject_id").
				Where("student_id = ?", studentID),
		).
		Order("subject_code ASC").
		Find(&subjects).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch available subjects")
	}
	return subjects, nil
}

// EnrollSubjects creates one enrollment per requested subject in a single
// transaction. A requested id outside the available set fails the whole
// batch; nothing is kept from a partially bad request.
func EnrollSubjects(db *gorm.DB, studentID uuid.UUID, subjectIDs []uuid.UUID) ([]enrollmentModel.EnrollmentModel, error) {
	var created []enrollmentModel.EnrollmentModel

	err := db.Transaction(func(tx *gorm.DB) error {
		available, err := AvailableSubjects(tx, studentID)
		if err != nil {
			return err
		}
		availableSet := make(map[uuid.UUID]subjectModel.SubjectModel, len(available))
		for _, s := range available {
			availableSet[s.SubjectID] = s
		}

		for _, id := range subjectIDs {
			subject, ok := availableSet[id]
			if !ok {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid subject: "+id.String())
			}

			e := enrollmentModel.EnrollmentModel{
				StudentID: studentID,
				SubjectID: id,
			}
			if err := tx.Omit("Student", "Subject").Create(&e).Error; err != nil {
				if helper.IsDuplicateErr(err) {
					return fiber.NewError(fiber.StatusConflict, "Already enrolled in subject "+id.String())
				}
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to create enrollment")
			}
			s := subject
			e.Subject = &s
			created = append(created, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// EnrollmentsOf lists the student's enrollments with subjects attached.
func EnrollmentsOf(db *gorm.DB, studentID uuid.UUID) ([]enrollmentModel.EnrollmentModel, error) {
	var rows []enrollmentModel.EnrollmentModel
	err := db.Preload("Subject").
		Where("student_id = ?", studentID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}
	return rows, nil
}
