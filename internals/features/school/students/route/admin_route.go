package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "sekolahku_backend/internals/features/school/students/controller"
)

func AdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	students := admin.Group("/students")
	students.Post("/", ctrl.CreateStudent)
	students.Get("/", ctrl.ListStudents)
	students.Get("/:id", ctrl.GetStudent)
	students.Delete("/:id", ctrl.DeleteStudent)
}
