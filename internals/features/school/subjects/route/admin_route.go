package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectController "sekolahku_backend/internals/features/school/subjects/controller"
)

func AdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := subjectController.NewSubjectController(db)

	subjects := admin.Group("/subjects")
	subjects.Post("/", ctrl.CreateSubject)
	subjects.Get("/", ctrl.ListSubjects)
	subjects.Get("/:id", ctrl.GetSubject)
	subjects.Put("/:id", ctrl.UpdateSubject)
	subjects.Delete("/:id", ctrl.DeleteSubject)
}
