// internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "belajarku_backend/internals/features/users/user/dto"
	model "belajarku_backend/internals/features/users/user/model"
	helper "belajarku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

var validate = validator.New()

// =========================================================
// GET /api/u/profile — profil user login
// =========================================================
func (h *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var u model.UserModel
	if err := h.DB.First(&u, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	return helper.JsonOK(c, "Profil berhasil diambil", dto.ToUserResponse(&u))
}

// =========================================================
// PUT /api/u/profile
// =========================================================
func (h *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var u model.UserModel
	if err := h.DB.First(&u, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	req.ApplyToModel(&u)
	if err := h.DB.Save(&u).Error; err != nil {
		if helper.IsDuplicateKeyError(err, "") {
			return helper.JsonError(c, fiber.StatusConflict, "Username sudah digunakan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui profil")
	}
	return helper.JsonUpdated(c, "Profil berhasil diperbarui", dto.ToUserResponse(&u))
}

// =========================================================
// POST /api/u/profile/avatar — upload avatar (multipart)
// =========================================================
func (h *UserController) UploadAvatar(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File avatar wajib diunggah")
	}

	url, err := helper.SaveUploadedFile(fileHeader, "avatars", "image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var u model.UserModel
	if err := h.DB.First(&u, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	oldURL := u.AvatarURL
	u.AvatarURL = &url
	if err := h.DB.Save(&u).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan avatar")
	}
	// hapus avatar lama setelah commit (best-effort)
	if oldURL != nil {
		helper.DeleteLocalFileByURL(*oldURL)
	}

	return helper.JsonUpdated(c, "Avatar berhasil diperbarui", dto.ToUserResponse(&u))
}

// =========================================================
// GET /api/a/users — daftar user (admin, paginated + filter)
// =========================================================
func (h *UserController) List(c *fiber.Ctx) error {
	var q dto.UsersListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ResolvePaging(c, 25, 200)

	tx := h.DB.Model(&model.UserModel{})
	if q.Role != nil && strings.TrimSpace(*q.Role) != "" {
		tx = tx.Where("role = ?", strings.TrimSpace(*q.Role))
	}
	if q.Q != nil && strings.TrimSpace(*q.Q) != "" {
		like := "%" + strings.TrimSpace(*q.Q) + "%"
		tx = tx.Where("user_name ILIKE ? OR full_name ILIKE ? OR email ILIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var users []model.UserModel
	if err := tx.Order("created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar user", dto.ToUserResponses(users),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// =========================================================
// PATCH /api/a/users/:id/active — aktif/nonaktifkan akun
// =========================================================
func (h *UserController) SetActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body struct {
		IsActive *bool `json:"is_active"`
	}
	if err := c.BodyParser(&body); err != nil || body.IsActive == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Field is_active wajib diisi")
	}

	var u model.UserModel
	if err := h.DB.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	updates := map[string]any{"is_active": *body.IsActive}
	if !*body.IsActive {
		// putus sesi aktif sekalian
		updates["active_session_token"] = nil
	}
	if err := h.DB.Model(&u).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui status")
	}
	u.IsActive = *body.IsActive
	return helper.JsonUpdated(c, "Status akun diperbarui", dto.ToUserResponse(&u))
}

// =========================================================
// DELETE /api/a/users/:id — soft delete
// =========================================================
func (h *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.Delete(&model.UserModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonDeleted(c, "User berhasil dihapus", fiber.Map{"id": id})
}
