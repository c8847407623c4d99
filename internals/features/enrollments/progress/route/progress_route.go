package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	progressController "belajarku_backend/internals/features/enrollments/progress/controller"
)

// Panggil dengan: route.ProgressUserRoutes(app.Group("/api/u"), db)
func ProgressUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &progressController.ProgressController{DB: db}

	r.Post("/materials/:materialId/progress", ctl.MarkMaterial)
	r.Get("/courses/:courseId/progress", ctl.CourseProgress)
}
