// internals/features/assignments/assignment/controller/assignment_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "belajarku_backend/internals/features/assignments/assignment/dto"
	model "belajarku_backend/internals/features/assignments/assignment/model"
	submissionModel "belajarku_backend/internals/features/assignments/submission/model"
	enrollmentModel "belajarku_backend/internals/features/enrollments/enrollment/model"
	helper "belajarku_backend/internals/helpers"
	authz "belajarku_backend/internals/helpers/auth"
)

type AssignmentController struct {
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
// CREATE - POST /api/a/courses/:courseId/assignments
// =========================================================
func (h *AssignmentController) Create(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("courseId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kursus tidak valid")
	}
	if _, err := authz.EnsureCanManageCourse(c, h.DB, courseID); err != nil {
		return jsonFiberErr(c, err)
	}

	var req dto.AssignmentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(courseID)
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat tugas")
	}
	return helper.JsonCreated(c, "Tugas berhasil dibuat", dto.ToAssignmentResponse(m))
}

// =========================================================
// LIST (admin) - GET /api/a/courses/:courseId/assignments
// =========================================================
func (h *AssignmentController) ListAdmin(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("courseId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kursus tidak valid")
	}
	if _, err := authz.EnsureCanManageCourse(c, h.DB, courseID); err != nil {
		return jsonFiberErr(c, err)
	}

	type row struct {
		model.AssignmentModel
		SubmissionCount int64 `gorm:"column:submission_count"`
	}
	var rows []row
	if err := h.DB.Table("assignments").
		Select(`assignments.*,
			(SELECT COUNT(*) FROM submissions s
				WHERE s.submission_assignment_id = assignments.assignment_id
				  AND s.submission_deleted_at IS NULL) AS submission_count`).
		Where("assignment_course_id = ? AND assignment_deleted_at IS NULL", courseID).
		Order("assignment_created_at ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]dto.AssignmentResponse, 0, len(rows))
	for i := range rows {
		resp := dto.ToAssignmentResponse(&rows[i].AssignmentModel)
		cnt := rows[i].SubmissionCount
		resp.SubmissionCount = &cnt
		out = append(out, resp)
	}
	return helper.JsonOK(c, "Daftar tugas", out)
}

// =========================================================
// LIST (student) - GET /api/u/courses/:courseId/assignments
// Hanya untuk peserta kursus; submission milik sendiri ikut ditempel.
// =========================================================
func (h *AssignmentController) ListForStudent(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("courseId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kursus tidak valid")
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
		return helper.JsonError(c, fiber.StatusForbidden, "Anda belum terdaftar di kursus ini")
	}

	var assignments []model.AssignmentModel
	if err := h.DB.
		Where("assignment_course_id = ?", courseID).
		Order("assignment_created_at ASC").
		Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	ids := make([]uuid.UUID, 0, len(assignments))
	for i := range assignments {
		ids = append(ids, assignments[i].AssignmentID)
	}
	var subs []submissionModel.SubmissionModel
	if len(ids) > 0 {
		if err := h.DB.
			Where("submission_user_id = ? AND submission_assignment_id IN ?", userID, ids).
			Find(&subs).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil submission")
		}
	}
	subByAssignment := make(map[uuid.UUID]*submissionModel.SubmissionModel, len(subs))
	for i := range subs {
		subByAssignment[subs[i].SubmissionAssignmentID] = &subs[i]
	}

	type item struct {
		dto.AssignmentResponse
		MySubmission *submissionModel.SubmissionModel `json:"my_submission,omitempty"`
	}
	out := make([]item, 0, len(assignments))
	for i := range assignments {
		out = append(out, item{
			AssignmentResponse: dto.ToAssignmentResponse(&assignments[i]),
			MySubmission:       subByAssignment[assignments[i].AssignmentID],
		})
	}
	return helper.JsonOK(c, "Daftar tugas", out)
}

// =========================================================
// UPDATE - PUT /api/a/assignments/:id
// =========================================================
func (h *AssignmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.AssignmentModel
	if err := h.DB.First(&m, "assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tugas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if _, err := authz.EnsureCanManageCourse(c, h.DB, m.AssignmentCourseID); err != nil {
		return jsonFiberErr(c, err)
	}

	var req dto.AssignmentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui tugas")
	}
	return helper.JsonUpdated(c, "Tugas berhasil diperbarui", dto.ToAssignmentResponse(&m))
}

// =========================================================
// DELETE - DELETE /api/a/assignments/:id
// =========================================================
func (h *AssignmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.AssignmentModel
	if err := h.DB.First(&m, "assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tugas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if _, err := authz.EnsureCanManageCourse(c, h.DB, m.AssignmentCourseID); err != nil {
		return jsonFiberErr(c, err)
	}

	var fileURLs []string
	h.DB.Model(&submissionModel.SubmissionModel{}).
		Where("submission_assignment_id = ? AND submission_file_url LIKE '/uploads/%'", id).
		Pluck("submission_file_url", &fileURLs)

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("submission_assignment_id = ?", id).
			Delete(&submissionModel.SubmissionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&m).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus tugas")
	}

	for _, u := range fileURLs {
		helper.DeleteLocalFileByURL(u)
	}
	return helper.JsonDeleted(c, "Tugas berhasil dihapus", fiber.Map{"assignment_id": id})
}
