// internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	analyticsRoute "belajarku_backend/internals/features/analytics/route"
	assignmentRoute "belajarku_backend/internals/features/assignments/assignment/route"
	categoryRoute "belajarku_backend/internals/features/courses/category/route"
	courseModuleRoute "belajarku_backend/internals/features/courses/course_module/route"
	courseRoute "belajarku_backend/internals/features/courses/course/route"
	materialRoute "belajarku_backend/internals/features/courses/material/route"
	enrollmentRoute "belajarku_backend/internals/features/enrollments/enrollment/route"
	progressRoute "belajarku_backend/internals/features/enrollments/progress/route"
	paymentRoute "belajarku_backend/internals/features/payments/payment/route"
	reviewRoute "belajarku_backend/internals/features/reviews/review/route"
	authRoute "belajarku_backend/internals/features/users/auth/route"
	userRoute "belajarku_backend/internals/features/users/user/route"
	authMiddleware "belajarku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== WEBHOOK (tanpa auth, skip-path) =====================
	log.Println("[INFO] Setting up Payment webhook...")
	paymentRoute.PaymentWebhookRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	categoryRoute.CategoryPublicRoutes(public, db)
	courseRoute.CoursePublicRoutes(public, db)
	reviewRoute.ReviewPublicRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	userRoute.UserRoutes(private, db)
	enrollmentRoute.EnrollmentUserRoutes(private, db)
	progressRoute.ProgressUserRoutes(private, db)
	assignmentRoute.AssignmentUserRoutes(private, db)
	reviewRoute.ReviewUserRoutes(private, db)
	paymentRoute.PaymentUserRoutes(private, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("panel admin"), constants.RoleAdmin),
	)
	userRoute.UserAdminRoutes(admin, db)
	categoryRoute.CategoryAdminRoutes(admin, db)
	courseRoute.CourseAdminRoutes(admin, db)
	courseModuleRoute.CourseModuleAdminRoutes(admin, db)
	materialRoute.MaterialAdminRoutes(admin, db)
	enrollmentRoute.EnrollmentAdminRoutes(admin, db)
	assignmentRoute.AssignmentAdminRoutes(admin, db)
	analyticsRoute.AnalyticsAdminRoutes(admin, db)

	// ===================== BASE =====================
	setupBaseRoutes(app, db)

	log.Println("[INFO] ✅ Semua route terpasang")
}
