package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "sekolahku_backend/internals/features/school/dashboard/controller"
)

func UserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := dashboardController.NewDashboardController(db)

	user.Get("/dashboard", ctrl.Dashboard)
}
