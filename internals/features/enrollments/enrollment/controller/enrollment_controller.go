// internals/features/enrollments/enrollment/controller/enrollment_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "belajarku_backend/internals/features/courses/course/model"
	dto "belajarku_backend/internals/features/enrollments/enrollment/dto"
	model "belajarku_backend/internals/features/enrollments/enrollment/model"
	paymentDto "belajarku_backend/internals/features/payments/payment/dto"
	paymentService "belajarku_backend/internals/features/payments/payment/service"
	userModel "belajarku_backend/internals/features/users/user/model"
	helper "belajarku_backend/internals/helpers"
	authz "belajarku_backend/internals/helpers/auth"
)

type EnrollmentController struct {
	DB *gorm.DB
}

var validate = validator.New()

// =========================================================
// ENROLL - POST /api/u/enrollments
// Gratis → langsung ACTIVE; berbayar → PENDING + Snap token.
// =========================================================
func (h *EnrollmentController) Enroll(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var course courseModel.CourseModel
	if err := h.DB.First(&course, "course_id = ?", req.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kursus tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kursus")
	}
	if course.CourseStatus != courseModel.CourseStatusPublished {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kursus belum dipublikasikan")
	}

	// cek enrollment yang sudah ada
	var existing model.EnrollmentModel
	err = h.DB.
		Where("enrollment_user_id = ? AND enrollment_course_id = ?", userID, course.CourseID).
		First(&existing).Error
	switch {
	case err == nil && existing.EnrollmentStatus == model.EnrollmentStatusDropped:
		// daftar ulang setelah keluar: hidupkan lagi baris yang sama
		next := model.EnrollmentStatusActive
		if course.CoursePrice > 0 {
			next = model.EnrollmentStatusPending
		}
		if err := h.DB.Model(&existing).
			Update("enrollment_status", next).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftar ulang")
		}
		existing.EnrollmentStatus = next
		return h.respondEnrollment(c, &course, &existing, userID)
	case err == nil:
		return helper.JsonError(c, fiber.StatusBadRequest, "Anda sudah terdaftar di kursus ini")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek pendaftaran")
	}

	enr := &model.EnrollmentModel{
		EnrollmentUserID:   userID,
		EnrollmentCourseID: course.CourseID,
		EnrollmentStatus:   model.EnrollmentStatusActive,
	}
	if course.CoursePrice > 0 {
		enr.EnrollmentStatus = model.EnrollmentStatusPending
	}

	if err := h.DB.Create(enr).Error; err != nil {
		if helper.IsDuplicateKeyError(err, "uq_enrollments_user_course") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Anda sudah terdaftar di kursus ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftar kursus")
	}

	return h.respondEnrollment(c, &course, enr, userID)
}

// kursus berbayar dapat bonus objek payment berisi snap token
func (h *EnrollmentController) respondEnrollment(c *fiber.Ctx, course *courseModel.CourseModel, enr *model.EnrollmentModel, userID uuid.UUID) error {
	if course.CoursePrice <= 0 {
		return helper.JsonCreated(c, "Berhasil mendaftar kursus", dto.ToEnrollmentResponse(enr))
	}

	var user userModel.UserModel
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	payment, err := paymentService.CreateCheckout(h.DB, &user, course, enr)
	if err != nil {
		fe := &fiber.Error{}
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pembayaran")
	}

	return helper.JsonCreated(c, "Selesaikan pembayaran untuk mengaktifkan kursus", fiber.Map{
		"enrollment": dto.ToEnrollmentResponse(enr),
		"payment":    paymentDto.ToPaymentResponse(payment),
	})
}

// =========================================================
// MY ENROLLMENTS - GET /api/u/enrollments
// =========================================================
func (h *EnrollmentController) MyEnrollments(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Table("enrollments").
		Where("enrollments.enrollment_user_id = ? AND enrollments.enrollment_deleted_at IS NULL", userID)
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		tx = tx.Where("enrollments.enrollment_status = ?", strings.ToUpper(st))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	type row struct {
		model.EnrollmentModel
		CourseTitle        string  `gorm:"column:course_title"`
		CourseSlug         string  `gorm:"column:course_slug"`
		CourseLevel        string  `gorm:"column:course_level"`
		CoursePrice        int64   `gorm:"column:course_price"`
		CourseThumbnailURL *string `gorm:"column:course_thumbnail_url"`
	}
	var rows []row
	if err := tx.
		Select("enrollments.*, courses.course_title, courses.course_slug, courses.course_level, courses.course_price, courses.course_thumbnail_url").
		Joins("JOIN courses ON courses.course_id = enrollments.enrollment_course_id").
		Order("enrollments.enrollment_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]dto.EnrollmentResponse, 0, len(rows))
	for i := range rows {
		resp := dto.ToEnrollmentResponse(&rows[i].EnrollmentModel)
		resp.Course = &dto.EnrolledCourse{
			CourseID:           rows[i].EnrollmentCourseID,
			CourseTitle:        rows[i].CourseTitle,
			CourseSlug:         rows[i].CourseSlug,
			CourseLevel:        rows[i].CourseLevel,
			CoursePrice:        rows[i].CoursePrice,
			CourseThumbnailURL: rows[i].CourseThumbnailURL,
		}
		out = append(out, resp)
	}

	return helper.JsonList(c, "Kursus saya", out,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// =========================================================
// DROP - DELETE /api/u/enrollments/:id
// =========================================================
func (h *EnrollmentController) Drop(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var enr model.EnrollmentModel
	if err := h.DB.
		First(&enr, "enrollment_id = ? AND enrollment_user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if enr.EnrollmentStatus == model.EnrollmentStatusCompleted {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kursus yang sudah selesai tidak bisa ditinggalkan")
	}

	if err := h.DB.Model(&enr).
		Update("enrollment_status", model.EnrollmentStatusDropped).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal keluar dari kursus")
	}
	return helper.JsonUpdated(c, "Berhasil keluar dari kursus", fiber.Map{"enrollment_id": id})
}

// =========================================================
// ROSTER - GET /api/a/courses/:courseId/enrollments
// =========================================================
func (h *EnrollmentController) CourseRoster(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("courseId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kursus tidak valid")
	}
	if _, err := authz.EnsureCanManageCourse(c, h.DB, courseID); err != nil {
		fe := &fiber.Error{}
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	p := helper.ResolvePaging(c, 25, 200)

	tx := h.DB.Table("enrollments").
		Where("enrollments.enrollment_course_id = ? AND enrollments.enrollment_deleted_at IS NULL", courseID)
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		tx = tx.Where("enrollments.enrollment_status = ?", strings.ToUpper(st))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	type rosterRow struct {
		model.EnrollmentModel
		UserName string `gorm:"column:user_name" json:"user_name"`
		FullName string `gorm:"column:full_name" json:"full_name"`
		Email    string `gorm:"column:email" json:"email"`
	}
	var rows []rosterRow
	if err := tx.
		Select("enrollments.*, users.user_name, users.full_name, users.email").
		Joins("JOIN users ON users.id = enrollments.enrollment_user_id").
		Order("enrollments.enrollment_created_at ASC").
		Limit(p.Limit).Offset(p.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Peserta kursus", rows,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
