// internals/features/assignments/submission/controller/submission_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	assignmentModel "belajarku_backend/internals/features/assignments/assignment/model"
	dto "belajarku_backend/internals/features/assignments/submission/dto"
	model "belajarku_backend/internals/features/assignments/submission/model"
	enrollmentModel "belajarku_backend/internals/features/enrollments/enrollment/model"
	helper "belajarku_backend/internals/helpers"
	authz "belajarku_backend/internals/helpers/auth"
)

type SubmissionController struct {
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
// SUBMIT - POST /api/u/assignments/:assignmentId/submissions
// JSON (submission_text) atau multipart (field "file" + submission_text).
// Revisi diperbolehkan selama belum dinilai.
// =========================================================
func (h *SubmissionController) Submit(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	assignmentID, err := uuid.Parse(strings.TrimSpace(c.Params("assignmentId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tugas tidak valid")
	}

	var assignment assignmentModel.AssignmentModel
	if err := h.DB.First(&assignment, "assignment_id = ?", assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tugas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tugas")
	}

	// hanya peserta aktif kursusnya
	var enrolled int64
	if err := h.DB.Model(&enrollmentModel.EnrollmentModel{}).
		Where("enrollment_user_id = ? AND enrollment_course_id = ?", userID, assignment.AssignmentCourseID).
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

	if assignment.AssignmentDueAt != nil && time.Now().After(*assignment.AssignmentDueAt) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Batas waktu pengumpulan sudah lewat")
	}

	// teks bisa datang dari JSON maupun form field
	var text *string
	ct := string(c.Request().Header.ContentType())
	if strings.HasPrefix(ct, fiber.MIMEMultipartForm) {
		if v := strings.TrimSpace(c.FormValue("submission_text")); v != "" {
			text = &v
		}
	} else {
		var req dto.SubmitRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
			}
		}
		req.Normalize()
		if err := validate.Struct(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		text = req.SubmissionText
	}

	var fileURL *string
	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		if fh.Size > helper.MaxUploadSize {
			return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "Ukuran file melebihi batas 25MB")
		}
		url, err := helper.SaveUploadedFile(fh, "submissions", "document")
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		fileURL = &url
	}

	if text == nil && fileURL == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Isi jawaban teks atau lampirkan file")
	}

	var existing model.SubmissionModel
	err = h.DB.
		Where("submission_assignment_id = ? AND submission_user_id = ?", assignmentID, userID).
		First(&existing).Error
	switch {
	case err == nil:
		if existing.IsGraded() {
			if fileURL != nil {
				helper.DeleteLocalFileByURL(*fileURL)
			}
			return helper.JsonError(c, fiber.StatusBadRequest, "Jawaban sudah dinilai dan tidak bisa direvisi")
		}
		oldFile := existing.SubmissionFileURL
		if text != nil {
			existing.SubmissionText = text
		}
		if fileURL != nil {
			existing.SubmissionFileURL = fileURL
		}
		if err := h.DB.Save(&existing).Error; err != nil {
			if fileURL != nil {
				helper.DeleteLocalFileByURL(*fileURL)
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jawaban")
		}
		if fileURL != nil && oldFile != nil && *oldFile != *fileURL {
			helper.DeleteLocalFileByURL(*oldFile)
		}
		return helper.JsonUpdated(c, "Jawaban berhasil diperbarui", dto.ToSubmissionResponse(&existing))

	case errors.Is(err, gorm.ErrRecordNotFound):
		m := &model.SubmissionModel{
			SubmissionAssignmentID: assignmentID,
			SubmissionUserID:       userID,
			SubmissionText:         text,
			SubmissionFileURL:      fileURL,
		}
		if err := h.DB.Create(m).Error; err != nil {
			if fileURL != nil {
				helper.DeleteLocalFileByURL(*fileURL)
			}
			if helper.IsDuplicateKeyError(err, "uq_submissions_assignment_user") {
				return helper.JsonError(c, fiber.StatusBadRequest, "Jawaban sudah pernah dikumpulkan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jawaban")
		}
		return helper.JsonCreated(c, "Jawaban berhasil dikumpulkan", dto.ToSubmissionResponse(m))

	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek jawaban")
	}
}

// =========================================================
// LIST - GET /api/a/assignments/:assignmentId/submissions
// =========================================================
func (h *SubmissionController) ListByAssignment(c *fiber.Ctx) error {
	assignmentID, err := uuid.Parse(strings.TrimSpace(c.Params("assignmentId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tugas tidak valid")
	}

	var assignment assignmentModel.AssignmentModel
	if err := h.DB.First(&assignment, "assignment_id = ?", assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tugas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tugas")
	}
	if _, err := authz.EnsureCanManageCourse(c, h.DB, assignment.AssignmentCourseID); err != nil {
		return jsonFiberErr(c, err)
	}
	p := helper.ResolvePaging(c, 25, 200)

	tx := h.DB.Table("submissions").
		Where("submissions.submission_assignment_id = ? AND submissions.submission_deleted_at IS NULL", assignmentID)
	if c.Query("ungraded") == "true" {
		tx = tx.Where("submissions.submission_graded_at IS NULL")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	type row struct {
		model.SubmissionModel
		UserName string `gorm:"column:user_name" json:"user_name"`
		FullName string `gorm:"column:full_name" json:"full_name"`
	}
	var rows []row
	if err := tx.
		Select("submissions.*, users.user_name, users.full_name").
		Joins("JOIN users ON users.id = submissions.submission_user_id").
		Order("submissions.submission_created_at ASC").
		Limit(p.Limit).Offset(p.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Daftar jawaban", rows,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// =========================================================
// GRADE - PATCH /api/a/submissions/:id/grade
// =========================================================
func (h *SubmissionController) Grade(c *fiber.Ctx) error {
	graderID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.SubmissionModel
	if err := h.DB.First(&m, "submission_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jawaban tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var assignment assignmentModel.AssignmentModel
	if err := h.DB.First(&assignment, "assignment_id = ?", m.SubmissionAssignmentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tugas")
	}
	if _, err := authz.EnsureCanManageCourse(c, h.DB, assignment.AssignmentCourseID); err != nil {
		return jsonFiberErr(c, err)
	}

	var req dto.GradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.SubmissionScore > assignment.AssignmentMaxScore {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nilai melebihi skor maksimal tugas")
	}

	now := time.Now()
	m.SubmissionScore = &req.SubmissionScore
	m.SubmissionFeedback = req.SubmissionFeedback
	m.SubmissionGradedAt = &now
	m.SubmissionGradedBy = &graderID

	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan nilai")
	}
	return helper.JsonUpdated(c, "Jawaban berhasil dinilai", dto.ToSubmissionResponse(&m))
}
