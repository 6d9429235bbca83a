package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "sekolahku_backend/internals/features/school/attendance/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

func UserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	user.Post("/subjects/:id/attendance", authMiddleware.OnlyFaculty(db), ctrl.MarkAttendance)
}
