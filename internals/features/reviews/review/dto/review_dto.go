package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "belajarku_backend/internals/features/reviews/review/model"
)

/* =========================
   REQUEST
   ========================= */

type ReviewUpsertRequest struct {
	ReviewRating  int     `json:"review_rating" validate:"required,gte=1,lte=5"`
	ReviewComment *string `json:"review_comment" validate:"omitempty,max=2000"`
}

func (r *ReviewUpsertRequest) Normalize() {
	if r.ReviewComment != nil {
		t := strings.TrimSpace(*r.ReviewComment)
		if t == "" {
			r.ReviewComment = nil
		} else {
			r.ReviewComment = &t
		}
	}
}

/* =========================
   RESPONSE
   ========================= */

type ReviewResponse struct {
	ReviewID        uuid.UUID `json:"review_id"`
	ReviewUserID    uuid.UUID `json:"review_user_id"`
	ReviewCourseID  uuid.UUID `json:"review_course_id"`
	ReviewRating    int       `json:"review_rating"`
	ReviewComment   *string   `json:"review_comment,omitempty"`
	ReviewCreatedAt time.Time `json:"review_created_at"`
	ReviewUpdatedAt time.Time `json:"review_updated_at"`

	// nama penulis review; diisi listing publik
	UserName *string `json:"user_name,omitempty"`
}

func ToReviewResponse(m *model.ReviewModel) ReviewResponse {
	return ReviewResponse{
		ReviewID:        m.ReviewID,
		ReviewUserID:    m.ReviewUserID,
		ReviewCourseID:  m.ReviewCourseID,
		ReviewRating:    m.ReviewRating,
		ReviewComment:   m.ReviewComment,
		ReviewCreatedAt: m.ReviewCreatedAt,
		ReviewUpdatedAt: m.ReviewUpdatedAt,
	}
}

// ringkasan rating untuk header halaman kursus
type ReviewSummary struct {
	AvgRating   *float64 `json:"avg_rating"`
	ReviewCount int64    `json:"review_count"`
	Breakdown   []int64  `json:"breakdown"` // index 0 = bintang 1
}
