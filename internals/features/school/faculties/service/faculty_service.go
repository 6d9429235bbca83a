package service

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	facultyDTO "sekolahku_backend/internals/features/school/faculties/dto"
	facultyModel "sekolahku_backend/internals/features/school/faculties/model"
	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
	authService "sekolahku_backend/internals/features/users/auth/service"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

// CreateFacultyWithAccount provisions the account and the faculty profile as
// one unit. A failure at any point rolls the whole thing back, so no orphaned
// account can survive a failed profile write.
func CreateFacultyWithAccount(db *gorm.DB, req facultyDTO.CreateFacultyAccountRequest) (facultyModel.FacultyModel, error) {
	var created facultyModel.FacultyModel

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return created, fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&userModel.UserModel{}).
			Where("user_name = ?", req.Username).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check username uniqueness")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Username already exists")
		}

		var subjects []subjectModel.SubjectModel
		if len(req.SubjectIDs) > 0 {
			if err := tx.Where("subject_id IN ?", req.SubjectIDs).Find(&subjects).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch subjects")
			}
			if len(subjects) != len(req.SubjectIDs) {
				return fiber.NewError(fiber.StatusNotFound, "One or more subjects not found")
			}
		}

		user := userModel.UserModel{
			UserName:  req.Username,
			Email:     req.Email,
			Password:  hashed,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			IsStaff:   true,
			IsActive:  true,
		}
		if err := tx.Create(&user).Error; err != nil {
			if helper.IsDuplicateErr(err) {
				return fiber.NewError(fiber.StatusConflict, "Username already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create account")
		}

		faculty := facultyModel.FacultyModel{
			UserID:     user.ID,
			Department: req.Department,
			Subjects:   subjects,
		}
		if err := tx.Create(&faculty).Error; err != nil {
			if helper.IsDuplicateErr(err) {
				return fiber.NewError(fiber.StatusConflict, "Account already has a faculty profile")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create faculty profile")
		}

		faculty.User = &user
		created = faculty
		return nil
	})
	return created, err
}

// SubjectsTaughtBy returns the taught-subject set of one faculty.
func SubjectsTaughtBy(db *gorm.DB, facultyID any) ([]subjectModel.SubjectModel, error) {
	var subjects []subjectModel.SubjectModel
	err := db.
		Joins("JOIN faculty_subjects fs ON fs.subject_id = subjects.subject_id").
		Where("fs.faculty_id = ?", facultyID).
		Find(&subjects).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch taught subjects")
	}
	return subjects, nil
}

// Teaches reports whether the faculty teaches the given subject.
func Teaches(db *gorm.DB, facultyID, subjectID any) (bool, error) {
	var cnt int64
	err := db.Table("faculty_subjects").
		Where("faculty_id = ? AND subject_id = ?", facultyID, subjectID).
		Count(&cnt).Error
	if err != nil {
		return false, fiber.NewError(fiber.StatusInternalServerError, "Failed to check subject assignment")
	}
	return cnt > 0, nil
}
