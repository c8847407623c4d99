package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaterialModel: satu item konten (video/pdf/link, dll) di dalam module.
// material_course_id denormalisasi dari module — mempermudah agregasi progress.
type MaterialModel struct {
	// PK
	MaterialID uuid.UUID `json:"material_id" gorm:"column:material_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FKs
	MaterialModuleID uuid.UUID `json:"material_module_id" gorm:"column:material_module_id;type:uuid;not null;index:idx_materials_module"`
	MaterialCourseID uuid.UUID `json:"material_course_id" gorm:"column:material_course_id;type:uuid;not null;index:idx_materials_course"`

	MaterialTitle string `json:"material_title" gorm:"column:material_title;type:varchar(200);not null"`
	MaterialType  string `json:"material_type" gorm:"column:material_type;type:varchar(20);not null"`

	// file upload (/uploads/...) atau link eksternal (https://...)
	MaterialURL string `json:"material_url" gorm:"column:material_url;type:varchar(500);not null"`

	MaterialPosition        int  `json:"material_position" gorm:"column:material_position;not null;default:0"`
	MaterialDurationSeconds *int `json:"material_duration_seconds,omitempty" gorm:"column:material_duration_seconds"`

	MaterialCreatedAt time.Time      `json:"material_created_at" gorm:"column:material_created_at;type:timestamptz;not null;autoCreateTime"`
	MaterialUpdatedAt time.Time      `json:"material_updated_at" gorm:"column:material_updated_at;type:timestamptz;not null;autoUpdateTime"`
	MaterialDeletedAt gorm.DeletedAt `json:"material_deleted_at,omitempty" gorm:"column:material_deleted_at;index"`
}

func (MaterialModel) TableName() string { return "materials" }
