package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	moduleController "belajarku_backend/internals/features/courses/course_module/controller"
)

// Panggil dengan: route.CourseModuleAdminRoutes(app.Group("/api/a"), db)
func CourseModuleAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &moduleController.CourseModuleController{DB: db}

	// nested di bawah course
	byCourse := r.Group("/courses/:courseId/modules")
	byCourse.Post("/", ctl.Create)
	byCourse.Get("/", ctl.ListByCourse)
	byCourse.Patch("/reorder", ctl.Reorder)

	// operasi langsung by id
	modules := r.Group("/modules")
	modules.Put("/:id", ctl.Update)
	modules.Delete("/:id", ctl.Delete)
}
