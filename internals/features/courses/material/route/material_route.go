package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	materialController "belajarku_backend/internals/features/courses/material/controller"
)

// Panggil dengan: route.MaterialAdminRoutes(app.Group("/api/a"), db)
func MaterialAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &materialController.MaterialController{DB: db}

	byModule := r.Group("/modules/:moduleId/materials")
	byModule.Post("/", ctl.CreateUpload)
	byModule.Post("/link", ctl.CreateLink)

	materials := r.Group("/materials")
	materials.Put("/:id", ctl.Update)
	materials.Delete("/:id", ctl.Delete)
}
