package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "belajarku_backend/internals/features/payments/payment/controller"
)

// Webhook Midtrans — terdaftar di skip-path AuthMiddleware.
// Panggil dengan: route.PaymentWebhookRoutes(app, db)
func PaymentWebhookRoutes(app fiber.Router, db *gorm.DB) {
	ctl := &paymentController.PaymentController{DB: db}
	app.Post("/api/payments/notification", ctl.MidtransWebhook)
}

// Panggil dengan: route.PaymentUserRoutes(app.Group("/api/u"), db)
func PaymentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &paymentController.PaymentController{DB: db}
	r.Get("/payments", ctl.MyPayments)
}
