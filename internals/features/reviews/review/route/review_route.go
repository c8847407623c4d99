package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reviewController "belajarku_backend/internals/features/reviews/review/controller"
)

// Panggil dengan: route.ReviewPublicRoutes(app.Group("/api/public"), db)
func ReviewPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &reviewController.ReviewController{DB: db}
	r.Get("/courses/:courseId/reviews", ctl.ListByCourse)
}

// Panggil dengan: route.ReviewUserRoutes(app.Group("/api/u"), db)
func ReviewUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &reviewController.ReviewController{DB: db}

	r.Put("/courses/:courseId/reviews", ctl.Upsert)
	r.Delete("/reviews/:id", ctl.Delete)
}
