// internals/features/courses/category/controller/category_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "belajarku_backend/internals/features/courses/category/dto"
	model "belajarku_backend/internals/features/courses/category/model"
	helper "belajarku_backend/internals/helpers"
)

type CategoryController struct {
	DB *gorm.DB
}

var validate = validator.New()

// =========================================================
// CREATE - POST /api/a/categories
// =========================================================
func (h *CategoryController) Create(c *fiber.Ctx) error {
	var req dto.CategoryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.Normalize()
	if req.CategorySlug == nil || *req.CategorySlug == "" {
		gen := helper.GenerateSlug(req.CategoryName)
		req.CategorySlug = &gen
	} else {
		s := helper.GenerateSlug(*req.CategorySlug)
		req.CategorySlug = &s
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		if helper.IsDuplicateKeyError(err, "uq_categories_slug") {
			return helper.JsonError(c, fiber.StatusConflict, "Slug kategori sudah digunakan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kategori")
	}
	return helper.JsonCreated(c, "Kategori berhasil dibuat", dto.ToCategoryResponse(m))
}

// =========================================================
// LIST - GET /api/public/categories
// =========================================================
func (h *CategoryController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	tx := h.DB.Model(&model.CategoryModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("category_name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var list []model.CategoryModel
	if err := tx.Order("category_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar kategori", dto.ToCategoryResponses(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// =========================================================
// GET BY SLUG - GET /api/public/categories/:slug
// =========================================================
func (h *CategoryController) GetBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))

	var m model.CategoryModel
	if err := h.DB.First(&m, "lower(category_slug) = lower(?)", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Detail kategori", dto.ToCategoryResponse(&m))
}

// =========================================================
// UPDATE - PUT /api/a/categories/:id
// =========================================================
func (h *CategoryController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.CategoryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if req.CategorySlug != nil {
		s := helper.GenerateSlug(*req.CategorySlug)
		req.CategorySlug = &s
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m model.CategoryModel
	if err := h.DB.First(&m, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		if helper.IsDuplicateKeyError(err, "uq_categories_slug") {
			return helper.JsonError(c, fiber.StatusConflict, "Slug kategori sudah digunakan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kategori")
	}
	return helper.JsonUpdated(c, "Kategori berhasil diperbarui", dto.ToCategoryResponse(&m))
}

// =========================================================
// DELETE (soft) - DELETE /api/a/categories/:id
// =========================================================
func (h *CategoryController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	// tolak kalau masih ada course aktif di kategori ini
	var cnt int64
	if err := h.DB.Table("courses").
		Where("course_category_id = ? AND course_deleted_at IS NULL", id).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek relasi kategori")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kategori masih memiliki kursus")
	}

	res := h.DB.Delete(&model.CategoryModel{}, "category_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kategori")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kategori berhasil dihapus", fiber.Map{"category_id": id})
}
