package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseModuleModel: bab/chapter berurutan di dalam kursus
type CourseModuleModel struct {
	// PK
	CourseModuleID uuid.UUID `json:"course_module_id" gorm:"column:course_module_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK
	CourseModuleCourseID uuid.UUID `json:"course_module_course_id" gorm:"column:course_module_course_id;type:uuid;not null;index:idx_course_modules_course"`

	CourseModuleTitle    string  `json:"course_module_title" gorm:"column:course_module_title;type:varchar(200);not null"`
	CourseModuleDesc     *string `json:"course_module_desc,omitempty" gorm:"column:course_module_desc"`
	CourseModulePosition int     `json:"course_module_position" gorm:"column:course_module_position;not null;default:0"`

	CourseModuleCreatedAt time.Time      `json:"course_module_created_at" gorm:"column:course_module_created_at;type:timestamptz;not null;autoCreateTime"`
	CourseModuleUpdatedAt time.Time      `json:"course_module_updated_at" gorm:"column:course_module_updated_at;type:timestamptz;not null;autoUpdateTime"`
	CourseModuleDeletedAt gorm.DeletedAt `json:"course_module_deleted_at,omitempty" gorm:"column:course_module_deleted_at;index"`
}

func (CourseModuleModel) TableName() string { return "course_modules" }
