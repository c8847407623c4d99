package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "belajarku_backend/internals/features/users/user/controller"
)

// Panggil dengan: route.UserAdminRoutes(app.Group("/api/a"), db)
// Hasil endpoint:
//   /api/a/users
//   /api/a/users/:id/active
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	userCtl := &userController.UserController{DB: db}

	users := r.Group("/users")
	users.Get("/", userCtl.List)
	users.Patch("/:id/active", userCtl.SetActive)
	users.Delete("/:id", userCtl.Delete)
}
