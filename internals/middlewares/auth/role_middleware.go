package auth

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// OnlyAdmin gates a group on the administrator flag from the token claims.
func OnlyAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.IsAdminFromLocals(c) {
			return fiber.NewError(fiber.StatusForbidden, "Administrator role required")
		}
		return c.Next()
	}
}

// OnlyRole gates a group on the resolved role variant. Resolution goes
// through the profile tables so a role change takes effect immediately.
func OnlyRole(db *gorm.DB, kind helperAuth.RoleKind, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := helperAuth.RoleFromCtx(c, db)
		if err != nil {
			return err
		}
		if role.Kind != kind {
			if message == "" {
				message = "Forbidden"
			}
			return fiber.NewError(fiber.StatusForbidden, message)
		}
		return c.Next()
	}
}

func OnlyFaculty(db *gorm.DB) fiber.Handler {
	return OnlyRole(db, helperAuth.RoleFaculty, "Faculty role required")
}
