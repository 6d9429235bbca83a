package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserIDFromLocals reads the authenticated user id the JWT middleware
// stored on the request.
func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Locals("user_id")
	s, ok := raw.(string)
	if !ok || s == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user id in token")
	}
	return id, nil
}

// IsAdminFromLocals reads the admin claim; absent means false.
func IsAdminFromLocals(c *fiber.Ctx) bool {
	v, _ := c.Locals("is_admin").(bool)
	return v
}
