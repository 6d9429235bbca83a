package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentController "sekolahku_backend/internals/features/school/enrollments/controller"
)

func UserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := enrollmentController.NewEnrollmentController(db)

	enrollments := user.Group("/enrollments")
	enrollments.Get("/available", ctrl.AvailableSubjects)
	enrollments.Post("/", ctrl.Enroll)
}
