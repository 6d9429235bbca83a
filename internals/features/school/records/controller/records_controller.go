package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecordsController exposes plain CRUD over the stored records, for
// authenticated API consumers that need raw rows rather than the role-shaped
// portal endpoints.
type RecordsController struct {
	DB *gorm.DB
}

func NewRecordsController(db *gorm.DB) *RecordsController {
	return &RecordsController{DB: db}
}

func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return id, nil
}
