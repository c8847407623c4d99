// internals/features/enrollments/progress/service/progress_service.go
package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	materialModel "belajarku_backend/internals/features/courses/material/model"
	enrollmentModel "belajarku_backend/internals/features/enrollments/enrollment/model"
	progressModel "belajarku_backend/internals/features/enrollments/progress/model"
)

// ComputePercent: persentase bulat 0..100. total == 0 dianggap 0 (bukan div-by-zero).
func ComputePercent(completed, total int64) int {
	if total <= 0 {
		return 0
	}
	p := int((completed*100 + total/2) / total) // round half up
	if p > 100 {
		p = 100
	}
	if p < 0 {
		p = 0
	}
	return p
}

// MarkMaterial meng-upsert progress user pada satu materi lalu me-roll-up
// persentase enrollment-nya dalam SATU transaksi:
//
//	upsert progress → recount completed/total → update enrollment
//
// 100% → status COMPLETED; turun di bawah 100% → balik ACTIVE.
func MarkMaterial(db *gorm.DB, userID, materialID uuid.UUID, completed bool, addTimeSpentSeconds int) (*enrollmentModel.EnrollmentModel, error) {
	var enr enrollmentModel.EnrollmentModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var mat materialModel.MaterialModel
		if err := tx.First(&mat, "material_id = ?", materialID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Materi tidak ditemukan")
			}
			return err
		}

		if err := tx.
			Where("enrollment_user_id = ? AND enrollment_course_id = ?", userID, mat.MaterialCourseID).
			First(&enr).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusForbidden, "Anda belum terdaftar di kursus ini")
			}
			return err
		}
		if enr.EnrollmentStatus == enrollmentModel.EnrollmentStatusPending {
			return fiber.NewError(fiber.StatusForbidden, "Pembayaran kursus belum selesai")
		}
		if enr.EnrollmentStatus == enrollmentModel.EnrollmentStatusDropped {
			return fiber.NewError(fiber.StatusForbidden, "Anda sudah keluar dari kursus ini")
		}

		now := time.Now()
		row := progressModel.ProgressModel{
			ProgressUserID:           userID,
			ProgressMaterialID:       materialID,
			ProgressCourseID:         mat.MaterialCourseID,
			ProgressIsCompleted:      completed,
			ProgressTimeSpentSeconds: addTimeSpentSeconds,
		}
		if completed {
			row.ProgressCompletedAt = &now
		}

		assigns := map[string]any{
			"progress_is_completed": completed,
			"progress_updated_at":   now,
		}
		if completed {
			assigns["progress_completed_at"] = now
		} else {
			assigns["progress_completed_at"] = gorm.Expr("NULL")
		}
		if addTimeSpentSeconds > 0 {
			assigns["progress_time_spent_seconds"] = gorm.Expr("progress.progress_time_spent_seconds + ?", addTimeSpentSeconds)
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "progress_user_id"},
				{Name: "progress_material_id"},
			},
			TargetWhere: clause.Where{Exprs: []clause.Expression{
				clause.Expr{SQL: "progress_deleted_at IS NULL"},
			}},
			DoUpdates: clause.Assignments(assigns),
		}).Create(&row).Error; err != nil {
			return err
		}

		return recomputeEnrollmentTx(tx, &enr)
	})
	if err != nil {
		return nil, err
	}
	return &enr, nil
}

// recomputeEnrollmentTx recount di DB lalu tulis ulang persen + status.
func recomputeEnrollmentTx(tx *gorm.DB, enr *enrollmentModel.EnrollmentModel) error {
	var counts struct {
		Total     int64
		Completed int64
	}
	if err := tx.Raw(`SELECT
		(SELECT COUNT(*) FROM materials
			WHERE material_course_id = ? AND material_deleted_at IS NULL) AS total,
		(SELECT COUNT(*) FROM progress
			WHERE progress_user_id = ? AND progress_course_id = ?
			  AND progress_is_completed AND progress_deleted_at IS NULL) AS completed`,
		enr.EnrollmentCourseID, enr.EnrollmentUserID, enr.EnrollmentCourseID).
		Scan(&counts).Error; err != nil {
		return err
	}

	percent := ComputePercent(counts.Completed, counts.Total)

	updates := map[string]any{
		"enrollment_progress_percent": percent,
	}
	switch {
	case percent >= 100 && enr.EnrollmentStatus != enrollmentModel.EnrollmentStatusCompleted:
		now := time.Now()
		updates["enrollment_status"] = enrollmentModel.EnrollmentStatusCompleted
		updates["enrollment_completed_at"] = now
		enr.EnrollmentStatus = enrollmentModel.EnrollmentStatusCompleted
		enr.EnrollmentCompletedAt = &now
	case percent < 100 && enr.EnrollmentStatus == enrollmentModel.EnrollmentStatusCompleted:
		updates["enrollment_status"] = enrollmentModel.EnrollmentStatusActive
		updates["enrollment_completed_at"] = gorm.Expr("NULL")
		enr.EnrollmentStatus = enrollmentModel.EnrollmentStatusActive
		enr.EnrollmentCompletedAt = nil
	}
	enr.EnrollmentProgressPercent = percent

	return tx.Model(&enrollmentModel.EnrollmentModel{}).
		Where("enrollment_id = ?", enr.EnrollmentID).
		Updates(updates).Error
}

// RecomputeCourseEnrollments dipanggil setelah materi ditambah/dihapus:
// persen semua peserta kursus berubah karena penyebutnya berubah.
func RecomputeCourseEnrollments(db *gorm.DB, courseID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var list []enrollmentModel.EnrollmentModel
		if err := tx.
			Where("enrollment_course_id = ?", courseID).
			Where("enrollment_status IN ?", []string{
				enrollmentModel.EnrollmentStatusActive,
				enrollmentModel.EnrollmentStatusCompleted,
			}).
			Find(&list).Error; err != nil {
			return err
		}
		for i := range list {
			if err := recomputeEnrollmentTx(tx, &list[i]); err != nil {
				return err
			}
		}
		return nil
	})
}
