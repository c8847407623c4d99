package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryModel struct {
	// PK
	CategoryID uuid.UUID `json:"category_id" gorm:"column:category_id;type:uuid;default:gen_random_uuid();primaryKey"`

	CategoryName string  `json:"category_name" gorm:"column:category_name;type:varchar(100);not null"`
	CategorySlug string  `json:"category_slug" gorm:"column:category_slug;type:varchar(160);uniqueIndex:uq_categories_slug,where:category_deleted_at IS NULL;not null"`
	CategoryDesc *string `json:"category_desc,omitempty" gorm:"column:category_desc"`

	CategoryCreatedAt time.Time      `json:"category_created_at" gorm:"column:category_created_at;type:timestamptz;not null;autoCreateTime"`
	CategoryUpdatedAt time.Time      `json:"category_updated_at" gorm:"column:category_updated_at;type:timestamptz;not null;autoUpdateTime"`
	CategoryDeletedAt gorm.DeletedAt `json:"category_deleted_at,omitempty" gorm:"column:category_deleted_at;index"`
}

func (CategoryModel) TableName() string { return "categories" }
