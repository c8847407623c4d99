package dto

import (
	"time"

	"github.com/google/uuid"

	model "belajarku_backend/internals/features/enrollments/enrollment/model"
)

/* =========================
   REQUEST
   ========================= */

type EnrollRequest struct {
	CourseID uuid.UUID `json:"course_id" validate:"required"`
}

/* =========================
   RESPONSE
   ========================= */

// ringkasan course yang ditempel di listing enrollment user
type EnrolledCourse struct {
	CourseID           uuid.UUID `json:"course_id"`
	CourseTitle        string    `json:"course_title"`
	CourseSlug         string    `json:"course_slug"`
	CourseLevel        string    `json:"course_level"`
	CoursePrice        int64     `json:"course_price"`
	CourseThumbnailURL *string   `json:"course_thumbnail_url,omitempty"`
}

type EnrollmentResponse struct {
	EnrollmentID              uuid.UUID       `json:"enrollment_id"`
	EnrollmentUserID          uuid.UUID       `json:"enrollment_user_id"`
	EnrollmentCourseID        uuid.UUID       `json:"enrollment_course_id"`
	EnrollmentStatus          string          `json:"enrollment_status"`
	EnrollmentProgressPercent int             `json:"enrollment_progress_percent"`
	EnrollmentCompletedAt     *time.Time      `json:"enrollment_completed_at,omitempty"`
	EnrollmentCreatedAt       time.Time       `json:"enrollment_created_at"`
	Course                    *EnrolledCourse `json:"course,omitempty"`
}

func ToEnrollmentResponse(m *model.EnrollmentModel) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID:              m.EnrollmentID,
		EnrollmentUserID:          m.EnrollmentUserID,
		EnrollmentCourseID:        m.EnrollmentCourseID,
		EnrollmentStatus:          m.EnrollmentStatus,
		EnrollmentProgressPercent: m.EnrollmentProgressPercent,
		EnrollmentCompletedAt:     m.EnrollmentCompletedAt,
		EnrollmentCreatedAt:       m.EnrollmentCreatedAt,
	}
}
