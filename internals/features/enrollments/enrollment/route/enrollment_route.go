package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentController "belajarku_backend/internals/features/enrollments/enrollment/controller"
)

// Panggil dengan: route.EnrollmentUserRoutes(app.Group("/api/u"), db)
func EnrollmentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &enrollmentController.EnrollmentController{DB: db}

	enrollments := r.Group("/enrollments")
	enrollments.Post("/", ctl.Enroll)
	enrollments.Get("/", ctl.MyEnrollments)
	enrollments.Delete("/:id", ctl.Drop)
}

// Panggil dengan: route.EnrollmentAdminRoutes(app.Group("/api/a"), db)
func EnrollmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &enrollmentController.EnrollmentController{DB: db}
	r.Get("/courses/:courseId/enrollments", ctl.CourseRoster)
}
