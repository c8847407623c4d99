package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	categoryController "belajarku_backend/internals/features/courses/category/controller"
)

// Panggil dengan: route.CategoryPublicRoutes(app.Group("/api/public"), db)
func CategoryPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &categoryController.CategoryController{DB: db}

	categories := r.Group("/categories")
	categories.Get("/", ctl.List)
	categories.Get("/:slug", ctl.GetBySlug)
}

// Panggil dengan: route.CategoryAdminRoutes(app.Group("/api/a"), db)
func CategoryAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &categoryController.CategoryController{DB: db}

	categories := r.Group("/categories")
	categories.Post("/", ctl.Create)
	categories.Put("/:id", ctl.Update)
	categories.Delete("/:id", ctl.Delete)
}
