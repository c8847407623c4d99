package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "belajarku_backend/internals/features/users/user/controller"
)

// Panggil dengan: route.UserRoutes(app.Group("/api/u"), db)
// Hasil endpoint:
//   /api/u/profile
//   /api/u/profile/avatar
func UserRoutes(r fiber.Router, db *gorm.DB) {
	userCtl := &userController.UserController{DB: db}

	profile := r.Group("/profile")
	profile.Get("/", userCtl.GetProfile)
	profile.Put("/", userCtl.UpdateProfile)
	profile.Post("/avatar", userCtl.UploadAvatar)
}
