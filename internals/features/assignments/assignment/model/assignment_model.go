package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentModel struct {
	// PK
	AssignmentID uuid.UUID `json:"assignment_id" gorm:"column:assignment_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK
	AssignmentCourseID uuid.UUID `json:"assignment_course_id" gorm:"column:assignment_course_id;type:uuid;not null;index:idx_assignments_course"`

	AssignmentTitle string  `json:"assignment_title" gorm:"column:assignment_title;type:varchar(200);not null"`
	AssignmentDesc  *string `json:"assignment_desc,omitempty" gorm:"column:assignment_desc"`

	AssignmentDueAt    *time.Time `json:"assignment_due_at,omitempty" gorm:"column:assignment_due_at;type:timestamptz"`
	AssignmentMaxScore int        `json:"assignment_max_score" gorm:"column:assignment_max_score;not null;default:100"`

	AssignmentCreatedAt time.Time      `json:"assignment_created_at" gorm:"column:assignment_created_at;type:timestamptz;not null;autoCreateTime"`
	AssignmentUpdatedAt time.Time      `json:"assignment_updated_at" gorm:"column:assignment_updated_at;type:timestamptz;not null;autoUpdateTime"`
	AssignmentDeletedAt gorm.DeletedAt `json:"assignment_deleted_at,omitempty" gorm:"column:assignment_deleted_at;index"`
}

func (AssignmentModel) TableName() string { return "assignments" }
