// internals/features/courses/material/controller/material_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	moduleModel "belajarku_backend/internals/features/courses/course_module/model"
	dto "belajarku_backend/internals/features/courses/material/dto"
	model "belajarku_backend/internals/features/courses/material/model"
	progressModel "belajarku_backend/internals/features/enrollments/progress/model"
	progressService "belajarku_backend/internals/features/enrollments/progress/service"
	helper "belajarku_backend/internals/helpers"
	authz "belajarku_backend/internals/helpers/auth"
)

type MaterialController struct {
	DB *gorm.DB
}

var validate = validator.New()

func jsonFiberErr(c *fiber.Ctx, err error) error {
	fe := &fiber.Error{}
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
}

// storageKind memetakan tipe materi → allow-list upload
func storageKind(materialType string) string {
	switch materialType {
	case constants.MaterialTypeVideo:
		return "video"
	case constants.MaterialTypeAudio:
		return "audio"
	case constants.MaterialTypeImage:
		return "image"
	default:
		return "document"
	}
}

func (h *MaterialController) loadModule(c *fiber.Ctx) (*moduleModel.CourseModuleModel, error) {
	moduleID, err := uuid.Parse(strings.TrimSpace(c.Params("moduleId")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID module tidak valid")
	}
	var mod moduleModel.CourseModuleModel
	if err := h.DB.First(&mod, "course_module_id = ?", moduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Module tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil module")
	}
	if _, err := authz.EnsureCanManageCourse(c, h.DB, mod.CourseModuleCourseID); err != nil {
		return nil, err
	}
	return &mod, nil
}

// =========================================================
// CREATE (upload file) - POST /api/a/modules/:moduleId/materials
// multipart: file + material_title [+ material_position, material_duration_seconds]
// =========================================================
func (h *MaterialController) CreateUpload(c *fiber.Ctx) error {
	mod, err := h.loadModule(c)
	if err != nil {
		return jsonFiberErr(c, err)
	}

	title := strings.TrimSpace(c.FormValue("material_title"))
	if len(title) < 3 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Judul materi minimal 3 karakter")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File materi wajib diisi")
	}
	if fileHeader.Size > helper.MaxUploadSize {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "Ukuran file melebihi batas 25MB")
	}

	materialType := constants.DetectMaterialTypeFromExt(fileHeader.Filename)
	url, err := helper.SaveUploadedFile(fileHeader, "materials", storageKind(materialType))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := &model.MaterialModel{
		MaterialModuleID: mod.CourseModuleID,
		MaterialCourseID: mod.CourseModuleCourseID,
		MaterialTitle:    title,
		MaterialType:     materialType,
		MaterialURL:      url,
	}
	if pos := strings.TrimSpace(c.FormValue("material_position")); pos != "" {
		if v, convErr := strconv.Atoi(pos); convErr == nil && v >= 0 {
			m.MaterialPosition = v
		}
	}
	if dur := strings.TrimSpace(c.FormValue("material_duration_seconds")); dur != "" {
		if v, convErr := strconv.Atoi(dur); convErr == nil && v >= 0 {
			m.MaterialDurationSeconds = &v
		}
	}

	// materi baru menambah penyebut progress semua peserta:
	// simpan + roll-up dalam satu transaksi
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return progressService.RecomputeCourseEnrollments(tx, mod.CourseModuleCourseID)
	}); err != nil {
		helper.DeleteLocalFileByURL(url)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan materi")
	}

	return helper.JsonCreated(c, "Materi berhasil dibuat", dto.ToMaterialResponse(m))
}

// =========================================================
// CREATE (link eksternal) - POST /api/a/modules/:moduleId/materials/link
// =========================================================
func (h *MaterialController) CreateLink(c *fiber.Ctx) error {
	mod, err := h.loadModule(c)
	if err != nil {
		return jsonFiberErr(c, err)
	}

	var req dto.MaterialCreateLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := &model.MaterialModel{
		MaterialModuleID:        mod.CourseModuleID,
		MaterialCourseID:        mod.CourseModuleCourseID,
		MaterialTitle:           req.MaterialTitle,
		MaterialType:            constants.MaterialTypeLink,
		MaterialURL:             req.MaterialURL,
		MaterialDurationSeconds: req.MaterialDurationSeconds,
	}
	if req.MaterialPosition != nil {
		m.MaterialPosition = *req.MaterialPosition
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return progressService.RecomputeCourseEnrollments(tx, mod.CourseModuleCourseID)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan materi")
	}

	return helper.JsonCreated(c, "Materi berhasil dibuat", dto.ToMaterialResponse(m))
}

// =========================================================
// UPDATE - PUT /api/a/materials/:id
// =========================================================
func (h *MaterialController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.MaterialModel
	if err := h.DB.First(&m, "material_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Materi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if _, err := authz.EnsureCanManageCourse(c, h.DB, m.MaterialCourseID); err != nil {
		return jsonFiberErr(c, err)
	}

	var req dto.MaterialUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	// ganti URL hanya boleh untuk materi LINK; materi file lewat re-upload
	if req.MaterialURL != nil && m.MaterialType != constants.MaterialTypeLink {
		return helper.JsonError(c, fiber.StatusBadRequest, "URL materi file tidak bisa diubah langsung")
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui materi")
	}
	return helper.JsonUpdated(c, "Materi berhasil diperbarui", dto.ToMaterialResponse(&m))
}

// =========================================================
// DELETE - DELETE /api/a/materials/:id
// =========================================================
func (h *MaterialController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.MaterialModel
	if err := h.DB.First(&m, "material_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Materi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if _, err := authz.EnsureCanManageCourse(c, h.DB, m.MaterialCourseID); err != nil {
		return jsonFiberErr(c, err)
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("progress_material_id = ?", id).
			Delete(&progressModel.ProgressModel{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&m).Error; err != nil {
			return err
		}
		// penyebut progress berkurang; roll-up ulang dalam transaksi yang sama
		return progressService.RecomputeCourseEnrollments(tx, m.MaterialCourseID)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus materi")
	}

	if strings.HasPrefix(m.MaterialURL, "/uploads/") {
		helper.DeleteLocalFileByURL(m.MaterialURL)
	}

	return helper.JsonDeleted(c, "Materi berhasil dihapus", fiber.Map{"material_id": id})
}
