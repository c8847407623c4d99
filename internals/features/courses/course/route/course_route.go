package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "belajarku_backend/internals/features/courses/course/controller"
)

// Panggil dengan: route.CoursePublicRoutes(app.Group("/api/public"), db)
func CoursePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &courseController.CourseController{DB: db}

	courses := r.Group("/courses")
	courses.Get("/", ctl.ListPublic)
	courses.Get("/:slug", ctl.GetBySlug)
}

// Panggil dengan: route.CourseAdminRoutes(app.Group("/api/a"), db)
func CourseAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &courseController.CourseController{DB: db}

	courses := r.Group("/courses")
	courses.Post("/", ctl.Create)
	courses.Get("/", ctl.ListMine)
	courses.Put("/:id", ctl.Update)
	courses.Patch("/:id/status", ctl.SetStatus)
	courses.Post("/:id/thumbnail", ctl.UploadThumbnail)
	courses.Delete("/:id", ctl.Delete)
}
