package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status kursus
const (
	CourseStatusDraft     = "DRAFT"
	CourseStatusPublished = "PUBLISHED"
	CourseStatusArchived  = "ARCHIVED"
)

// Level kursus
const (
	CourseLevelBeginner     = "beginner"
	CourseLevelIntermediate = "intermediate"
	CourseLevelAdvanced     = "advanced"
)

type CourseModel struct {
	// PK
	CourseID uuid.UUID `json:"course_id" gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FKs
	CourseCategoryID uuid.UUID `json:"course_category_id" gorm:"column:course_category_id;type:uuid;not null;index:idx_courses_category"`
	CourseCreatedBy  uuid.UUID `json:"course_created_by" gorm:"column:course_created_by;type:uuid;not null;index:idx_courses_created_by"`

	CourseTitle string  `json:"course_title" gorm:"column:course_title;type:varchar(200);not null"`
	CourseSlug  string  `json:"course_slug" gorm:"column:course_slug;type:varchar(160);uniqueIndex:uq_courses_slug,where:course_deleted_at IS NULL;not null"`
	CourseDesc  *string `json:"course_desc,omitempty" gorm:"column:course_desc"`
	CourseLevel string  `json:"course_level" gorm:"column:course_level;type:varchar(20);not null;default:'beginner'"`

	// Harga dalam rupiah; 0 = gratis
	CoursePrice int64 `json:"course_price" gorm:"column:course_price;not null;default:0"`

	CourseThumbnailURL *string `json:"course_thumbnail_url,omitempty" gorm:"column:course_thumbnail_url;type:varchar(255)"`

	CourseStatus string `json:"course_status" gorm:"column:course_status;type:varchar(20);not null;default:'DRAFT';index:idx_courses_status"`

	CourseCreatedAt time.Time      `json:"course_created_at" gorm:"column:course_created_at;type:timestamptz;not null;autoCreateTime"`
	CourseUpdatedAt time.Time      `json:"course_updated_at" gorm:"column:course_updated_at;type:timestamptz;not null;autoUpdateTime"`
	CourseDeletedAt gorm.DeletedAt `json:"course_deleted_at,omitempty" gorm:"column:course_deleted_at;index"`
}

func (CourseModel) TableName() string { return "courses" }

func IsValidCourseStatus(s string) bool {
	return s == CourseStatusDraft || s == CourseStatusPublished || s == CourseStatusArchived
}

func IsValidCourseLevel(s string) bool {
	return s == CourseLevelBeginner || s == CourseLevelIntermediate || s == CourseLevelAdvanced
}
