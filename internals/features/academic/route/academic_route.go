// file: internals/features/academic/route/academic_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentController "kuliahku_backend/internals/features/academic/assignments/controller"
	scheduleController "kuliahku_backend/internals/features/academic/class_schedules/controller"
	dashboardController "kuliahku_backend/internals/features/academic/dashboard/controller"
	organizationController "kuliahku_backend/internals/features/academic/organizations/controller"
	semesterController "kuliahku_backend/internals/features/academic/semesters/controller"
	authMiddleware "kuliahku_backend/internals/middlewares/auth"
)

// AcademicRoutes mendaftarkan seluruh endpoint perencanaan akademik.
// Semua route di bawah /schedule butuh access token; data otomatis
// terpartisi per user lewat ownership check di masing-masing controller.
func AcademicRoutes(app *fiber.App, db *gorm.DB) {
	dashboard := dashboardController.NewDashboardController(db)
	semesters := semesterController.NewSemesterController(db, nil)
	schedules := scheduleController.NewClassScheduleController(db, nil)
	assignments := assignmentController.NewAssignmentController(db, nil)
	organizations := organizationController.NewOrganizationController(db, nil)

	schedule := app.Group("/schedule", authMiddleware.AuthMiddleware(db))

	// dashboard agregat (alias /dashboard untuk kompatibilitas frontend lama)
	schedule.Get("/", dashboard.Index)
	app.Get("/dashboard", authMiddleware.AuthMiddleware(db), dashboard.Index)

	// semester
	schedule.Post("/store-semester", semesters.Create)
	schedule.Patch("/update-semester/:id", semesters.Update)
	schedule.Delete("/destroy-semester/:id", semesters.Delete)

	// jadwal kuliah
	schedule.Post("/store-class", schedules.Create)
	schedule.Patch("/update-class/:id", schedules.Update)
	schedule.Delete("/destroy-class/:id", schedules.Delete)

	// tugas
	schedule.Post("/store-assignment", assignments.Create)
	schedule.Patch("/update-assignment/:id", assignments.Update)
	schedule.Patch("/toggle-assignment/:id", assignments.Toggle)
	schedule.Delete("/destroy-assignment/:id", assignments.Delete)

	// organisasi
	schedule.Post("/store-organization", organizations.Create)
	schedule.Patch("/update-organization/:id", organizations.Update)
	schedule.Delete("/destroy-organization/:id", organizations.Delete)
}
