package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	recordsController "sekolahku_backend/internals/features/school/records/controller"
	subjectController "sekolahku_backend/internals/features/school/subjects/controller"
)

// RecordsRoutes mounts the raw CRUD surface. The subjects resource reuses the
// admin subject controller; authentication is applied by the caller on the
// whole group.
func RecordsRoutes(records fiber.Router, db *gorm.DB) {
	ctrl := recordsController.NewRecordsController(db)
	subjectCtrl := subjectController.NewSubjectController(db)

	subjects := records.Group("/subjects")
	subjects.Get("/", subjectCtrl.ListSubjects)
	subjects.Post("/", subjectCtrl.CreateSubject)
	subjects.Get("/:id", subjectCtrl.GetSubject)
	subjects.Put("/:id", subjectCtrl.UpdateSubject)
	subjects.Delete("/:id", subjectCtrl.DeleteSubject)

	students := records.Group("/students")
	students.Get("/", ctrl.ListStudents)
	students.Get("/:id", ctrl.GetStudent)
	students.Patch("/:id", ctrl.UpdateStudent)
	students.Delete("/:id", ctrl.DeleteStudent)

	faculty := records.Group("/faculty")
	faculty.Get("/", ctrl.ListFaculty)
	faculty.Get("/:id", ctrl.GetFaculty)
	faculty.Patch("/:id", ctrl.UpdateFaculty)
	faculty.Delete("/:id", ctrl.DeleteFaculty)

	attendance := records.Group("/attendance")
	attendance.Get("/", ctrl.ListAttendance)
	attendance.Post("/", ctrl.CreateAttendance)
	attendance.Get("/:id", ctrl.GetAttendance)
	attendance.Patch("/:id", ctrl.UpdateAttendance)
	attendance.Delete("/:id", ctrl.DeleteAttendance)

	results := records.Group("/results")
	results.Get("/", ctrl.ListResults)
	results.Post("/", ctrl.CreateResult)
	results.Get("/:id", ctrl.GetResult)
	results.Patch("/:id", ctrl.UpdateResult)
	results.Delete("/:id", ctrl.DeleteResult)
}
