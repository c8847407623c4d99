// internals/features/reviews/review/controller/review_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollmentModel "belajarku_backend/internals/features/enrollments/enrollment/model"
	dto "belajarku_backend/internals/features/reviews/review/dto"
	model "belajarku_backend/internals/features/reviews/review/model"
	helper "belajarku_backend/internals/helpers"
)

type ReviewController struct {
	DB *gorm.DB
}

var validate = validator.New()

// =========================================================
// UPSERT - PUT /api/u/courses/:courseId/reviews
// Review pertama = insert; review ulang = update baris yang sama.
// Hanya peserta kursus (ACTIVE/COMPLETED) yang boleh menilai.
// =========================================================
func (h *ReviewController) Upsert(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("courseId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kursus tidak valid")
	}

	var req dto.ReviewUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Rating harus di antara 1 sampai 5")
	}

	var enrolled int64
	if err := h.DB.Model(&enrollmentModel.EnrollmentModel{}).
		Where("enrollment_user_id = ? AND enrollment_course_id = ?", userID, courseID).
		Where("enrollment_status IN ?", []string{
			enrollmentModel.EnrollmentStatusActive,
			enrollmentModel.EnrollmentStatusCompleted,
		}).
		Count(&enrolled).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek pendaftaran")
	}
	if enrolled == 0 {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya peserta kursus yang bisa memberi review")
	}

	var existing model.ReviewModel
	err = h.DB.
		Where("review_user_id = ? AND review_course_id = ?", userID, courseID).
		First(&existing).Error
	switch {
	case err == nil:
		existing.ReviewRating = req.ReviewRating
		existing.ReviewComment = req.ReviewComment
		if err := h.DB.Save(&existing).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui review")
		}
		return helper.JsonUpdated(c, "Review berhasil diperbarui", dto.ToReviewResponse(&existing))

	case errors.Is(err, gorm.ErrRecordNotFound):
		m := &model.ReviewModel{
			ReviewUserID:   userID,
			ReviewCourseID: courseID,
			ReviewRating:   req.ReviewRating,
			ReviewComment:  req.ReviewComment,
		}
		if err := h.DB.Create(m).Error; err != nil {
			if helper.IsDuplicateKeyError(err, "uq_reviews_user_course") {
				return helper.JsonError(c, fiber.StatusConflict, "Review sudah ada, coba lagi")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan review")
		}
		return helper.JsonCreated(c, "Review berhasil disimpan", dto.ToReviewResponse(m))

	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek review")
	}
}

// =========================================================
// LIST (publik) - GET /api/public/courses/:courseId/reviews
// Termasuk ringkasan rating (avg + breakdown bintang) via GROUP BY.
// =========================================================
func (h *ReviewController) ListByCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("courseId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kursus tidak valid")
	}
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := h.DB.Model(&model.ReviewModel{}).
		Where("review_course_id = ?", courseID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	type row struct {
		model.ReviewModel
		UserName string `gorm:"column:user_name"`
	}
	var rows []row
	if err := h.DB.Table("reviews").
		Select("reviews.*, users.user_name").
		Joins("JOIN users ON users.id = reviews.review_user_id").
		Where("reviews.review_course_id = ? AND reviews.review_deleted_at IS NULL", courseID).
		Order("reviews.review_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	list := make([]dto.ReviewResponse, 0, len(rows))
	for i := range rows {
		resp := dto.ToReviewResponse(&rows[i].ReviewModel)
		name := rows[i].UserName
		resp.UserName = &name
		list = append(list, resp)
	}

	summary := dto.ReviewSummary{Breakdown: make([]int64, 5)}
	var stats []struct {
		Rating int   `gorm:"column:review_rating"`
		Count  int64 `gorm:"column:cnt"`
	}
	if err := h.DB.Table("reviews").
		Select("review_rating, COUNT(*) AS cnt").
		Where("review_course_id = ? AND review_deleted_at IS NULL", courseID).
		Group("review_rating").
		Scan(&stats).Error; err == nil {
		var sum int64
		for _, s := range stats {
			if s.Rating >= 1 && s.Rating <= 5 {
				summary.Breakdown[s.Rating-1] = s.Count
				summary.ReviewCount += s.Count
				sum += int64(s.Rating) * s.Count
			}
		}
		if summary.ReviewCount > 0 {
			avg := float64(sum) / float64(summary.ReviewCount)
			summary.AvgRating = &avg
		}
	}

	return helper.JsonList(c, "Review kursus", fiber.Map{
		"summary": summary,
		"reviews": list,
	}, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// =========================================================
// DELETE - DELETE /api/u/reviews/:id
// Pemilik review, atau admin.
// =========================================================
func (h *ReviewController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.ReviewModel
	if err := h.DB.First(&m, "review_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Review tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if m.ReviewUserID != userID && !helper.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak: bukan review Anda")
	}

	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus review")
	}
	return helper.JsonDeleted(c, "Review berhasil dihapus", fiber.Map{"review_id": id})
}
