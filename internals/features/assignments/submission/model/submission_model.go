package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionModel: jawaban satu student untuk satu assignment.
// Boleh direvisi (upsert) selama belum dinilai.
type SubmissionModel struct {
	// PK
	SubmissionID uuid.UUID `json:"submission_id" gorm:"column:submission_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FKs — satu submission per student per assignment
	SubmissionAssignmentID uuid.UUID `json:"submission_assignment_id" gorm:"column:submission_assignment_id;type:uuid;not null;uniqueIndex:uq_submissions_assignment_user,where:submission_deleted_at IS NULL;index:idx_submissions_assignment"`
	SubmissionUserID       uuid.UUID `json:"submission_user_id" gorm:"column:submission_user_id;type:uuid;not null;uniqueIndex:uq_submissions_assignment_user,where:submission_deleted_at IS NULL"`

	SubmissionText    *string `json:"submission_text,omitempty" gorm:"column:submission_text"`
	SubmissionFileURL *string `json:"submission_file_url,omitempty" gorm:"column:submission_file_url;type:varchar(500)"`

	// penilaian
	SubmissionScore    *int       `json:"submission_score,omitempty" gorm:"column:submission_score"`
	SubmissionFeedback *string    `json:"submission_feedback,omitempty" gorm:"column:submission_feedback"`
	SubmissionGradedAt *time.Time `json:"submission_graded_at,omitempty" gorm:"column:submission_graded_at;type:timestamptz"`
	SubmissionGradedBy *uuid.UUID `json:"submission_graded_by,omitempty" gorm:"column:submission_graded_by;type:uuid"`

	SubmissionCreatedAt time.Time      `json:"submission_created_at" gorm:"column:submission_created_at;type:timestamptz;not null;autoCreateTime"`
	SubmissionUpdatedAt time.Time      `json:"submission_updated_at" gorm:"column:submission_updated_at;type:timestamptz;not null;autoUpdateTime"`
	SubmissionDeletedAt gorm.DeletedAt `json:"submission_deleted_at,omitempty" gorm:"column:submission_deleted_at;index"`
}

func (SubmissionModel) TableName() string { return "submissions" }

func (s *SubmissionModel) IsGraded() bool { return s.SubmissionGradedAt != nil }
