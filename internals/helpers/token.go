package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserIDFromToken mengambil user_id yang sudah dipasang AuthMiddleware di Locals.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user_id tidak ditemukan di token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user_id tidak valid")
	}
	return id, nil
}

// GetRoleFromToken mengambil role dari Locals (diisi AuthMiddleware).
func GetRoleFromToken(c *fiber.Ctx) string {
	role, _ := c.Locals("userRole").(string)
	return role
}

// IsAdmin true kalau request datang dari admin/tutor.
func IsAdmin(c *fiber.Ctx) bool {
	return GetRoleFromToken(c) == "admin"
}
