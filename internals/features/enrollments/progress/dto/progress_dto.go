package dto

import (
	"time"

	"github.com/google/uuid"

	model "belajarku_backend/internals/features/enrollments/progress/model"
)

type MarkMaterialRequest struct {
	Completed        *bool `json:"completed"` // default true
	TimeSpentSeconds *int  `json:"time_spent_seconds" validate:"omitempty,gte=0,lte=86400"`
}

type ProgressResponse struct {
	ProgressID               uuid.UUID  `json:"progress_id"`
	ProgressMaterialID       uuid.UUID  `json:"progress_material_id"`
	ProgressCourseID         uuid.UUID  `json:"progress_course_id"`
	ProgressIsCompleted      bool       `json:"progress_is_completed"`
	ProgressTimeSpentSeconds int        `json:"progress_time_spent_seconds"`
	ProgressCompletedAt      *time.Time `json:"progress_completed_at,omitempty"`
}

func ToProgressResponse(m *model.ProgressModel) ProgressResponse {
	return ProgressResponse{
		ProgressID:               m.ProgressID,
		ProgressMaterialID:       m.ProgressMaterialID,
		ProgressCourseID:         m.ProgressCourseID,
		ProgressIsCompleted:      m.ProgressIsCompleted,
		ProgressTimeSpentSeconds: m.ProgressTimeSpentSeconds,
		ProgressCompletedAt:      m.ProgressCompletedAt,
	}
}

func ToProgressResponses(list []model.ProgressModel) []ProgressResponse {
	out := make([]ProgressResponse, 0, len(list))
	for i := range list {
		out = append(out, ToProgressResponse(&list[i]))
	}
	return out
}
