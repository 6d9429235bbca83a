package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentDTO "sekolahku_backend/internals/features/school/students/dto"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
	authService "sekolahku_backend/internals/features/users/auth/service"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

// CreateStudentWithAccount provisions the account and the student profile as
// one unit. A failure at any point rolls the whole thing back, so no orphaned
// account can survive a failed profile write.
func CreateStudentWithAccount(db *gorm.DB, req studentDTO.CreateStudentAccountRequest) (studentModel.StudentModel, error) {
	var created studentModel.StudentModel

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

		cnt = 0
		if err := tx.Model(&studentModel.StudentModel{}).
			Where("roll_number = ?", req.RollNumber).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check roll number uniqueness")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Roll number already exists")
		}

		user := userModel.UserModel{
			UserName:  req.Username,
			Email:     req.Email,
			Password:  hashed,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			IsActive:  true,
		}
		if err := tx.Create(&user).Error; err != nil {
			if helper.IsDuplicateErr(err) {
				return fiber.NewError(fiber.StatusConflict, "Username already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create account")
		}

		student := studentModel.StudentModel{
			UserID:     user.ID,
			RollNumber: req.RollNumber,
			Course:     req.Course,
			Semester:   req.Semester,
		}
		if err := tx.Create(&student).Error; err != nil {
			if helper.IsDuplicateErr(err) {
				return fiber.NewError(fiber.StatusConflict, "Roll number already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student profile")
		}

		student.User = &user
		created = student
		return nil
	})
	return created, err
}

// SubjectsOf is the student's subject list: always exactly the set reachable
// through enrollments, never a stored copy.
func SubjectsOf(db *gorm.DB, studentID uuid.UUID) ([]subjectModel.SubjectModel, error) {
	var subjects []subjectModel.SubjectModel
	err := db.
		Joins("JOIN enrollments e ON e.subject_id = subjects.subject_id").
		Where("e.student_id = ?", studentID).
		Find(&subjects).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch enrolled subjects")
	}
	return subjects, nil
}
