// internals/helpers/auth/course_authz.go
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "belajarku_backend/internals/features/courses/course/model"
	helper "belajarku_backend/internals/helpers"
)

// EnsureCanManageCourse memuat course dan memastikan requester boleh
// memodifikasinya: pemilik (created_by) atau role admin.
// Pola yang sama dipakai semua endpoint mutasi course/module/material/assignment.
func EnsureCanManageCourse(c *fiber.Ctx, db *gorm.DB, courseID uuid.UUID) (*courseModel.CourseModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}

	var course courseModel.CourseModel
	if err := db.First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Kursus tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data kursus")
	}

	if course.CourseCreatedBy != userID && !helper.IsAdmin(c) {
		return nil, fiber.NewError(fiber.StatusForbidden, "Akses ditolak: bukan pemilik kursus")
	}
	return &course, nil
}
