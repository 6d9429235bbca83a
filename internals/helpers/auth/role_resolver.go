package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	facultyModel "sekolahku_backend/internals/features/school/faculties/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

type RoleKind string

const (
	RoleAdministrator RoleKind = "administrator"
	RoleFaculty       RoleKind = "faculty"
	RoleStudent       RoleKind = "student"
	RolePlain         RoleKind = "plain"
)

// Role is the resolved variant for one request: administrator flag first,
// then faculty profile, then student profile, else plain. An account's role
// follows its profile rows, so this is recomputed on every access and never
// cached.
type Role struct {
	Kind    RoleKind
	User    *userModel.UserModel
	Faculty *facultyModel.FacultyModel
	Student *studentModel.StudentModel
}

func ResolveRole(db *gorm.DB, userID uuid.UUID) (Role, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Role{}, fiber.NewError(fiber.StatusUnauthorized, "User not found")
		}
		return Role{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve role")
	}

	role := Role{Kind: RolePlain, User: &user}

	if user.IsAdmin {
		role.Kind = RoleAdministrator
		return role, nil
	}

	var faculty facultyModel.FacultyModel
	err := db.First(&faculty, "user_id = ?", userID).Error
	if err == nil {
		role.Kind = RoleFaculty
		role.Faculty = &faculty
		return role, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Role{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve role")
	}

	var student studentModel.StudentModel
	err = db.First(&student, "user_id = ?", userID).Error
	if err == nil {
		role.Kind = RoleStudent
		role.Student = &student
		return role, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Role{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve role")
	}

	return role, nil
}
