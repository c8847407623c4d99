package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewModel: satu review per user per kursus (upsert saat review ulang).
type ReviewModel struct {
	// PK
	ReviewID uuid.UUID `json:"review_id" gorm:"column:review_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FKs
	ReviewUserID   uuid.UUID `json:"review_user_id" gorm:"column:review_user_id;type:uuid;not null;uniqueIndex:uq_reviews_user_course,where:review_deleted_at IS NULL"`
	ReviewCourseID uuid.UUID `json:"review_course_id" gorm:"column:review_course_id;type:uuid;not null;uniqueIndex:uq_reviews_user_course,where:review_deleted_at IS NULL;index:idx_reviews_course"`

	// 1..5
	ReviewRating  int     `json:"review_rating" gorm:"column:review_rating;not null"`
	ReviewComment *string `json:"review_comment,omitempty" gorm:"column:review_comment"`

	ReviewCreatedAt time.Time      `json:"review_created_at" gorm:"column:review_created_at;type:timestamptz;not null;autoCreateTime"`
	ReviewUpdatedAt time.Time      `json:"review_updated_at" gorm:"column:review_updated_at;type:timestamptz;not null;autoUpdateTime"`
	ReviewDeletedAt gorm.DeletedAt `json:"review_deleted_at,omitempty" gorm:"column:review_deleted_at;index"`
}

func (ReviewModel) TableName() string { return "reviews" }
