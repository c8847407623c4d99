package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "belajarku_backend/internals/features/users/auth/controller"
	authMiddleware "belajarku_backend/internals/middlewares/auth"
	middlewares "belajarku_backend/internals/middlewares"
)

// AuthRoutes memasang endpoint auth publik + yang butuh token.
// Hasil endpoint:
//   POST /api/auth/register
//   POST /api/auth/login
//   POST /api/auth/login-google
//   POST /api/auth/refresh-token
//   POST /api/auth/logout
//   POST /api/auth/change-password
//   GET  /api/auth/me
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	public := app.Group("/api/auth")
	public.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	public.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	public.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	public.Post("/refresh-token", ctl.RefreshToken)

	private := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))
	private.Post("/logout", ctl.Logout)
	private.Post("/change-password", ctl.ChangePassword)
	private.Get("/me", ctl.Me)
}
