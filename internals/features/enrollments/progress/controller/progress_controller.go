// internals/features/enrollments/progress/controller/progress_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollmentDto "belajarku_backend/internals/features/enrollments/enrollment/dto"
	dto "belajarku_backend/internals/features/enrollments/progress/dto"
	model "belajarku_backend/internals/features/enrollments/progress/model"
	service "belajarku_backend/internals/features/enrollments/progress/service"
	helper "belajarku_backend/internals/helpers"
)

type ProgressController struct {
	DB *gorm.DB
}

var validate = validator.New()

// =========================================================
// MARK - POST /api/u/materials/:materialId/progress
// Tandai materi selesai / belum; enrollment langsung di-roll-up.
// =========================================================
func (h *ProgressController) MarkMaterial(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	materialID, err := uuid.Parse(strings.TrimSpace(c.Params("materialId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID materi tidak valid")
	}

	var req dto.MarkMaterialRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	completed := true
	if req.Completed != nil {
		completed = *req.Completed
	}
	timeSpent := 0
	if req.TimeSpentSeconds != nil {
		timeSpent = *req.TimeSpentSeconds
	}

	enr, err := service.MarkMaterial(h.DB, userID, materialID, completed, timeSpent)
	if err != nil {
		fe := &fiber.Error{}
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan progress")
	}

	msg := "Progress tersimpan"
	if enr.EnrollmentProgressPercent >= 100 {
		msg = "Selamat, kursus selesai! 🎉"
	}
	return helper.JsonUpdated(c, msg, enrollmentDto.ToEnrollmentResponse(enr))
}

// =========================================================
// DETAIL - GET /api/u/courses/:courseId/progress
// Semua progress user di satu kursus.
// =========================================================
func (h *ProgressController) CourseProgress(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("courseId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kursus tidak valid")
	}

	// enrollment dulu — user yang belum terdaftar tidak punya progress
	var enr struct {
		EnrollmentStatus          string `json:"enrollment_status"`
		EnrollmentProgressPercent int    `json:"enrollment_progress_percent"`
	}
	if err := h.DB.Table("enrollments").
		Select("enrollment_status, enrollment_progress_percent").
		Where("enrollment_user_id = ? AND enrollment_course_id = ? AND enrollment_deleted_at IS NULL", userID, courseID).
		Take(&enr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anda belum terdaftar di kursus ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil enrollment")
	}

	var list []model.ProgressModel
	if err := h.DB.
		Where("progress_user_id = ? AND progress_course_id = ?", userID, courseID).
		Order("progress_updated_at DESC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil progress")
	}

	return helper.JsonOK(c, "Progress kursus", fiber.Map{
		"enrollment_status":           enr.EnrollmentStatus,
		"enrollment_progress_percent": enr.EnrollmentProgressPercent,
		"items":                       dto.ToProgressResponses(list),
	})
}
