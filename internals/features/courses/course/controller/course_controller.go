// internals/features/courses/course/controller/course_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	moduleDto "belajarku_backend/internals/features/courses/course_module/dto"
	moduleModel "belajarku_backend/internals/features/courses/course_module/model"
	dto "belajarku_backend/internals/features/courses/course/dto"
	model "belajarku_backend/internals/features/courses/course/model"
	materialModel "belajarku_backend/internals/features/courses/material/model"
	helper "belajarku_backend/internals/helpers"
	authz "belajarku_backend/internals/helpers/auth"
)

type CourseController struct {
	DB *gorm.DB
}

var validate = validator.New()

/* =========================================================
   LISTING PUBLIK (hanya PUBLISHED)
   ========================================================= */

// GET /api/public/courses
func (h *CourseController) ListPublic(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Table("courses").
		Where("courses.course_deleted_at IS NULL").
		Where("courses.course_status = ?", model.CourseStatusPublished)

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("(courses.course_title ILIKE ? OR courses.course_desc ILIKE ?)", "%"+q+"%", "%"+q+"%")
	}
	if lvl := strings.TrimSpace(c.Query("level")); lvl != "" {
		tx = tx.Where("courses.course_level = ?", strings.ToLower(lvl))
	}
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		tx = tx.Joins("JOIN categories ON categories.category_id = courses.course_category_id").
			Where("lower(categories.category_slug) = lower(?)", cat)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	// agregat rating & jumlah peserta langsung di query (hindari N+1)
	type row struct {
		model.CourseModel
		EnrollmentCount int64    `gorm:"column:enrollment_count"`
		AvgRating       *float64 `gorm:"column:avg_rating"`
		ReviewCount     int64    `gorm:"column:review_count"`
	}
	var rows []row
	if err := tx.
		Select(`courses.*,
			(SELECT COUNT(*) FROM enrollments e
				WHERE e.enrollment_course_id = courses.course_id AND e.enrollment_deleted_at IS NULL) AS enrollment_count,
			(SELECT ROUND(AVG(r.review_rating)::numeric, 2) FROM reviews r
				WHERE r.review_course_id = courses.course_id AND r.review_deleted_at IS NULL) AS avg_rating,
			(SELECT COUNT(*) FROM reviews r
				WHERE r.review_course_id = courses.course_id AND r.review_deleted_at IS NULL) AS review_count`).
		Order("courses.course_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]dto.CourseResponse, 0, len(rows))
	for i := range rows {
		resp := dto.ToCourseResponse(&rows[i].CourseModel)
		ec := rows[i].EnrollmentCount
		rc := rows[i].ReviewCount
		resp.EnrollmentCount = &ec
		resp.AvgRating = rows[i].AvgRating
		resp.ReviewCount = &rc
		out = append(out, resp)
	}

	return helper.JsonList(c, "Daftar kursus", out,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/public/courses/:slug — detail + kurikulum terurut
func (h *CourseController) GetBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))

	var m model.CourseModel
	if err := h.DB.
		Where("lower(course_slug) = lower(?)", slug).
		Where("course_status = ?", model.CourseStatusPublished).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kursus tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var modules []moduleModel.CourseModuleModel
	if err := h.DB.
		Where("course_module_course_id = ?", m.CourseID).
		Order("course_module_position ASC, course_module_created_at ASC").
		Find(&modules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil module")
	}

	var materials []materialModel.MaterialModel
	if err := h.DB.
		Where("material_course_id = ?", m.CourseID).
		Order("material_position ASC, material_created_at ASC").
		Find(&materials).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil materi")
	}

	resp := dto.ToCourseResponse(&m)

	var agg struct {
		AvgRating       *float64
		ReviewCount     int64
		EnrollmentCount int64
	}
	h.DB.Raw(`SELECT
		(SELECT ROUND(AVG(review_rating)::numeric, 2) FROM reviews
			WHERE review_course_id = ? AND review_deleted_at IS NULL)  AS avg_rating,
		(SELECT COUNT(*) FROM reviews
			WHERE review_course_id = ? AND review_deleted_at IS NULL)  AS review_count,
		(SELECT COUNT(*) FROM enrollments
			WHERE enrollment_course_id = ? AND enrollment_deleted_at IS NULL) AS enrollment_count`,
		m.CourseID, m.CourseID, m.CourseID).Scan(&agg)
	resp.AvgRating = agg.AvgRating
	resp.ReviewCount = &agg.ReviewCount
	resp.EnrollmentCount = &agg.EnrollmentCount

	return helper.JsonOK(c, "Detail kursus", fiber.Map{
		"course":     resp,
		"curriculum": moduleDto.BuildCurriculum(modules, materials),
	})
}

/* =========================================================
   ADMIN / PEMILIK
   ========================================================= */

// POST /api/a/courses
func (h *CourseController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CourseCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	base := ""
	if req.CourseSlug != nil {
		base = helper.GenerateSlug(*req.CourseSlug)
	}
	if base == "" {
		base = helper.GenerateSlug(req.CourseTitle)
	}
	slug, err := helper.EnsureUniqueSlug(h.DB, base, "courses", "course_slug")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal generate slug")
	}

	m := req.ToModel(userID)
	m.CourseSlug = slug

	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsForeignKeyError(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Kategori tidak ditemukan")
		}
		if helper.IsDuplicateKeyError(err, "uq_courses_slug") {
			return helper.JsonError(c, fiber.StatusConflict, "Slug kursus sudah digunakan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kursus")
	}
	return helper.JsonCreated(c, "Kursus berhasil dibuat", dto.ToCourseResponse(m))
}

// GET /api/a/courses — semua status; non-admin hanya punya sendiri
func (h *CourseController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&model.CourseModel{})
	if !helper.IsAdmin(c) {
		tx = tx.Where("course_created_by = ?", userID)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		tx = tx.Where("course_status = ?", strings.ToUpper(st))
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("course_title ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var list []model.CourseModel
	if err := tx.Order("course_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar kursus", dto.ToCourseResponses(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// PUT /api/a/courses/:id
func (h *CourseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	course, err := authz.EnsureCanManageCourse(c, h.DB, id)
	if err != nil {
		fe := &fiber.Error{}
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.CourseUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.CourseSlug != nil {
		s := helper.GenerateSlug(*req.CourseSlug)
		req.CourseSlug = &s
	}

	req.ApplyToModel(course)
	if err := h.DB.Save(course).Error; err != nil {
		if helper.IsDuplicateKeyError(err, "uq_courses_slug") {
			return helper.JsonError(c, fiber.StatusConflict, "Slug kursus sudah digunakan")
		}
		if helper.IsForeignKeyError(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Kategori tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kursus")
	}
	return helper.JsonUpdated(c, "Kursus berhasil diperbarui", dto.ToCourseResponse(course))
}

// PATCH /api/a/courses/:id/status — publish / archive / kembali ke draft
func (h *CourseController) SetStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	course, err := authz.EnsureCanManageCourse(c, h.DB, id)
	if err != nil {
		fe := &fiber.Error{}
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var body struct {
		CourseStatus string `json:"course_status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	status := strings.ToUpper(strings.TrimSpace(body.CourseStatus))
	if !model.IsValidCourseStatus(status) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Status kursus tidak valid")
	}

	// publish butuh minimal 1 materi supaya course tidak kosong
	if status == model.CourseStatusPublished {
		var cnt int64
		if err := h.DB.Model(&materialModel.MaterialModel{}).
			Where("material_course_id = ?", course.CourseID).
			Count(&cnt).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek materi")
		}
		if cnt == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Kursus belum memiliki materi")
		}
	}

	if err := h.DB.Model(course).
		Update("course_status", status).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status")
	}
	course.CourseStatus = status
	return helper.JsonUpdated(c, "Status kursus diperbarui", dto.ToCourseResponse(course))
}

// POST /api/a/courses/:id/thumbnail — multipart field "thumbnail"
func (h *CourseController) UploadThumbnail(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	course, err := authz.EnsureCanManageCourse(c, h.DB, id)
	if err != nil {
		fe := &fiber.Error{}
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	fileHeader, err := c.FormFile("thumbnail")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File thumbnail wajib diisi")
	}

	url, err := helper.SaveUploadedFile(fileHeader, "thumbnails", "image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	oldURL := course.CourseThumbnailURL
	if err := h.DB.Model(course).
		Update("course_thumbnail_url", url).Error; err != nil {
		helper.DeleteLocalFileByURL(url)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan thumbnail")
	}
	if oldURL != nil {
		helper.DeleteLocalFileByURL(*oldURL)
	}

	course.CourseThumbnailURL = &url
	return helper.JsonUpdated(c, "Thumbnail berhasil diunggah", dto.ToCourseResponse(course))
}

// DELETE /api/a/courses/:id
// Ditolak kalau masih ada peserta yang belum menyelesaikan kursus.
func (h *CourseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	course, err := authz.EnsureCanManageCourse(c, h.DB, id)
	if err != nil {
		fe := &fiber.Error{}
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var active int64
	if err := h.DB.Table("enrollments").
		Where("enrollment_course_id = ? AND enrollment_deleted_at IS NULL", id).
		Where("enrollment_status NOT IN ?", []string{"COMPLETED", "DROPPED"}).
		Count(&active).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek peserta aktif")
	}
	if active > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Masih ada peserta yang belum menyelesaikan kursus")
	}

	// kumpulkan file lokal dulu; unlink setelah commit
	var fileURLs []string
	h.DB.Model(&materialModel.MaterialModel{}).
		Where("material_course_id = ? AND material_url LIKE '/uploads/%'", id).
		Pluck("material_url", &fileURLs)

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("material_course_id = ?", id).
			Delete(&materialModel.MaterialModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_module_course_id = ?", id).
			Delete(&moduleModel.CourseModuleModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(course).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kursus")
	}

	if course.CourseThumbnailURL != nil {
		helper.DeleteLocalFileByURL(*course.CourseThumbnailURL)
	}
	for _, u := range fileURLs {
		helper.DeleteLocalFileByURL(u)
	}

	return helper.JsonDeleted(c, "Kursus berhasil dihapus", fiber.Map{"course_id": id})
}
