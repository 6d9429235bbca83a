package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resultController "sekolahku_backend/internals/features/school/results/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

func UserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := resultController.NewResultController(db)

	user.Post("/subjects/:id/results", authMiddleware.OnlyFaculty(db), ctrl.AddResult)
}
