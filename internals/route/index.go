package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "sekolahku_backend/internals/features/school/attendance/route"
	dashboardRoute "sekolahku_backend/internals/features/school/dashboard/route"
	enrollmentRoute "sekolahku_backend/internals/features/school/enrollments/route"
	facultyRoute "sekolahku_backend/internals/features/school/faculties/route"
	recordsRoute "sekolahku_backend/internals/features/school/records/route"
	resultRoute "sekolahku_backend/internals/features/school/results/route"
	studentRoute "sekolahku_backend/internals/features/school/students/route"
	subjectRoute "sekolahku_backend/internals/features/school/subjects/route"
	authRoute "sekolahku_backend/internals/features/users/auth/route"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + admin flag)...")
	admin := api.Group("/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyAdmin(),
	)
	subjectRoute.AdminRoutes(admin, db)
	facultyRoute.AdminRoutes(admin, db)
	studentRoute.AdminRoutes(admin, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	user := api.Group("/u", authMiddleware.AuthMiddleware(db))
	authRoute.UserRoutes(user, db)
	dashboardRoute.UserRoutes(user, db)
	enrollmentRoute.UserRoutes(user, db)
	attendanceRoute.UserRoutes(user, db)
	resultRoute.UserRoutes(user, db)

	// ===================== RECORDS =====================
	log.Println("[INFO] Setting up RECORDS group...")
	records := api.Group("/records", authMiddleware.AuthMiddleware(db))
	recordsRoute.RecordsRoutes(records, db)
}
