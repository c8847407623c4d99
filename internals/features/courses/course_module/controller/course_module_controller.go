// internals/features/courses/course_module/controller/course_module_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "belajarku_backend/internals/features/courses/course_module/dto"
	model "belajarku_backend/internals/features/courses/course_module/model"
	materialModel "belajarku_backend/internals/features/courses/material/model"
	progressService "belajarku_backend/internals/features/enrollments/progress/service"
	helper "belajarku_backend/internals/helpers"
	authz "belajarku_backend/internals/helpers/auth"
)

type CourseModuleController struct {
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

// =========================================================
// CREATE - POST /api/a/courses/:courseId/modules
// =========================================================
func (h *CourseModuleController) Create(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("courseId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kursus tidak valid")
	}
	if _, err := authz.EnsureCanManageCourse(c, h.DB, courseID); err != nil {
		return jsonFiberErr(c, err)
	}

	var req dto.CourseModuleCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(courseID)
	if req.CourseModulePosition == nil {
		// default: taruh di urutan paling akhir
		var maxPos *int
		h.DB.Model(&model.CourseModuleModel{}).
			Where("course_module_course_id = ?", courseID).
			Select("MAX(course_module_position)").Scan(&maxPos)
		if maxPos != nil {
			m.CourseModulePosition = *maxPos + 1
		}
	}

	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat module")
	}
	return helper.JsonCreated(c, "Module berhasil dibuat", dto.ToCourseModuleResponse(m))
}

// =========================================================
// LIST - GET /api/a/courses/:courseId/modules
// =========================================================
func (h *CourseModuleController) ListByCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("courseId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kursus tidak valid")
	}
	if _, err := authz.EnsureCanManageCourse(c, h.DB, courseID); err != nil {
		return jsonFiberErr(c, err)
	}

	var modules []model.CourseModuleModel
	if err := h.DB.
		Where("course_module_course_id = ?", courseID).
		Order("course_module_position ASC, course_module_created_at ASC").
		Find(&modules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var materials []materialModel.MaterialModel
	if err := h.DB.
		Where("material_course_id = ?", courseID).
		Order("material_position ASC, material_created_at ASC").
		Find(&materials).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil materi")
	}

	return helper.JsonOK(c, "Daftar module", dto.BuildCurriculum(modules, materials))
}

// =========================================================
// UPDATE - PUT /api/a/modules/:id
// =========================================================
func (h *CourseModuleController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.CourseModuleModel
	if err := h.DB.First(&m, "course_module_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Module tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if _, err := authz.EnsureCanManageCourse(c, h.DB, m.CourseModuleCourseID); err != nil {
		return jsonFiberErr(c, err)
	}

	var req dto.CourseModuleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui module")
	}
	return helper.JsonUpdated(c, "Module berhasil diperbarui", dto.ToCourseModuleResponse(&m))
}

// =========================================================
// REORDER - PATCH /api/a/courses/:courseId/modules/reorder
// =========================================================
func (h *CourseModuleController) Reorder(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("courseId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kursus tidak valid")
	}
	if _, err := authz.EnsureCanManageCourse(c, h.DB, courseID); err != nil {
		return jsonFiberErr(c, err)
	}

	var req dto.CourseModuleReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		for i, moduleID := range req.ModuleIDs {
			res := tx.Model(&model.CourseModuleModel{}).
				Where("course_module_id = ? AND course_module_course_id = ?", moduleID, courseID).
				Update("course_module_position", i)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Module bukan milik kursus ini")
			}
		}
		return nil
	}); err != nil {
		return jsonFiberErr(c, err)
	}
	return helper.JsonUpdated(c, "Urutan module diperbarui", fiber.Map{"module_ids": req.ModuleIDs})
}

// =========================================================
// DELETE - DELETE /api/a/modules/:id
// Materi di dalamnya ikut terhapus, lalu progress peserta di-recompute.
// =========================================================
func (h *CourseModuleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.CourseModuleModel
	if err := h.DB.First(&m, "course_module_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Module tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if _, err := authz.EnsureCanManageCourse(c, h.DB, m.CourseModuleCourseID); err != nil {
		return jsonFiberErr(c, err)
	}

	var fileURLs []string
	h.DB.Model(&materialModel.MaterialModel{}).
		Where("material_module_id = ? AND material_url LIKE '/uploads/%'", id).
		Pluck("material_url", &fileURLs)

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("material_module_id = ?", id).
			Delete(&materialModel.MaterialModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&m).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus module")
	}

	for _, u := range fileURLs {
		helper.DeleteLocalFileByURL(u)
	}
	if err := progressService.RecomputeCourseEnrollments(h.DB, m.CourseModuleCourseID); err != nil {
		// progress akan terkoreksi di update berikutnya; cukup log di layer atas
		return helper.JsonDeleted(c, "Module dihapus; recompute progress tertunda", fiber.Map{"course_module_id": id})
	}
	return helper.JsonDeleted(c, "Module berhasil dihapus", fiber.Map{"course_module_id": id})
}
