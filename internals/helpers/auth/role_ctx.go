package auth

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RoleFromCtx resolves the caller's role once per request and reuses the
// result for the rest of that request only.
func RoleFromCtx(c *fiber.Ctx, db *gorm.DB) (Role, error) {
	if r, ok := c.Locals("resolved_role").(Role); ok {
		return r, nil
	}
	userID, err := GetUserIDFromLocals(c)
	if err != nil {
		return Role{}, err
	}
	role, err := ResolveRole(db, userID)
	if err != nil {
		return Role{}, err
	}
	c.Locals("resolved_role", role)
	return role, nil
}
