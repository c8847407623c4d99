package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status enrollment
const (
	EnrollmentStatusPending   = "PENDING" // menunggu pembayaran
	EnrollmentStatusActive    = "ACTIVE"
	EnrollmentStatusCompleted = "COMPLETED"
	EnrollmentStatusDropped   = "DROPPED"
)

// EnrollmentModel: keikutsertaan satu user di satu kursus.
// enrollment_progress_percent disimpan (cache) & di-recompute transaksional
// setiap ada perubahan progress/materi.
type EnrollmentModel struct {
	// PK
	EnrollmentID uuid.UUID `json:"enrollment_id" gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FKs — unik per pasangan user×course (selama belum soft-delete)
	EnrollmentUserID   uuid.UUID `json:"enrollment_user_id" gorm:"column:enrollment_user_id;type:uuid;not null;uniqueIndex:uq_enrollments_user_course,where:enrollment_deleted_at IS NULL;index:idx_enrollments_user"`
	EnrollmentCourseID uuid.UUID `json:"enrollment_course_id" gorm:"column:enrollment_course_id;type:uuid;not null;uniqueIndex:uq_enrollments_user_course,where:enrollment_deleted_at IS NULL;index:idx_enrollments_course"`

	EnrollmentStatus          string     `json:"enrollment_status" gorm:"column:enrollment_status;type:varchar(20);not null;default:'ACTIVE';index:idx_enrollments_status"`
	EnrollmentProgressPercent int        `json:"enrollment_progress_percent" gorm:"column:enrollment_progress_percent;not null;default:0"`
	EnrollmentCompletedAt     *time.Time `json:"enrollment_completed_at,omitempty" gorm:"column:enrollment_completed_at;type:timestamptz"`

	EnrollmentCreatedAt time.Time      `json:"enrollment_created_at" gorm:"column:enrollment_created_at;type:timestamptz;not null;autoCreateTime"`
	EnrollmentUpdatedAt time.Time      `json:"enrollment_updated_at" gorm:"column:enrollment_updated_at;type:timestamptz;not null;autoUpdateTime"`
	EnrollmentDeletedAt gorm.DeletedAt `json:"enrollment_deleted_at,omitempty" gorm:"column:enrollment_deleted_at;index"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

func IsValidEnrollmentStatus(s string) bool {
	switch s {
	case EnrollmentStatusPending, EnrollmentStatusActive, EnrollmentStatusCompleted, EnrollmentStatusDropped:
		return true
	}
	return false
}
