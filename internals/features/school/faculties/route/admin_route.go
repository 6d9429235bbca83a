package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	facultyController "sekolahku_backend/internals/features/school/faculties/controller"
)

func AdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := facultyController.NewFacultyController(db)

	faculties := admin.Group("/faculties")
	faculties.Post("/", ctrl.CreateFaculty)
	faculties.Get("/", ctrl.ListFaculties)
	faculties.Get("/:id", ctrl.GetFaculty)
	faculties.Delete("/:id", ctrl.DeleteFaculty)
}
