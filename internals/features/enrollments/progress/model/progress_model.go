package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressModel: status belajar satu user pada satu materi.
// progress_course_id denormalisasi — recount per course jadi satu query.
type ProgressModel struct {
	// PK
	ProgressID uuid.UUID `json:"progress_id" gorm:"column:progress_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FKs — satu baris per user×material
	ProgressUserID     uuid.UUID `json:"progress_user_id" gorm:"column:progress_user_id;type:uuid;not null;uniqueIndex:uq_progress_user_material,where:progress_deleted_at IS NULL"`
	ProgressMaterialID uuid.UUID `json:"progress_material_id" gorm:"column:progress_material_id;type:uuid;not null;uniqueIndex:uq_progress_user_material,where:progress_deleted_at IS NULL;index:idx_progress_material"`
	ProgressCourseID   uuid.UUID `json:"progress_course_id" gorm:"column:progress_course_id;type:uuid;not null;index:idx_progress_course"`

	ProgressIsCompleted      bool       `json:"progress_is_completed" gorm:"column:progress_is_completed;not null;default:false"`
	ProgressTimeSpentSeconds int        `json:"progress_time_spent_seconds" gorm:"column:progress_time_spent_seconds;not null;default:0"`
	ProgressCompletedAt      *time.Time `json:"progress_completed_at,omitempty" gorm:"column:progress_completed_at;type:timestamptz"`

	ProgressCreatedAt time.Time      `json:"progress_created_at" gorm:"column:progress_created_at;type:timestamptz;not null;autoCreateTime"`
	ProgressUpdatedAt time.Time      `json:"progress_updated_at" gorm:"column:progress_updated_at;type:timestamptz;not null;autoUpdateTime"`
	ProgressDeletedAt gorm.DeletedAt `json:"progress_deleted_at,omitempty" gorm:"column:progress_deleted_at;index"`
}

func (ProgressModel) TableName() string { return "progress" }
