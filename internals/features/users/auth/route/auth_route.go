package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "sekolahku_backend/internals/features/users/auth/controller"
	middlewares "sekolahku_backend/internals/middlewares"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	api.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
}

func UserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	user.Get("/me", ctrl.Me)
}
