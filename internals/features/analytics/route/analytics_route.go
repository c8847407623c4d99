package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsController "belajarku_backend/internals/features/analytics/controller"
)

// Panggil dengan: route.AnalyticsAdminRoutes(app.Group("/api/a"), db)
func AnalyticsAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &analyticsController.AnalyticsController{DB: db}

	analytics := r.Group("/analytics")
	analytics.Get("/dashboard", ctl.Dashboard)
	analytics.Get("/courses", ctl.CourseStats)
	analytics.Get("/enrollments/trend", ctl.EnrollmentTrend)
}
