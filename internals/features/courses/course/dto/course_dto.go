package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "belajarku_backend/internals/features/courses/course/model"
)

/* =========================
   REQUEST
   ========================= */

type CourseCreateRequest struct {
	CourseCategoryID uuid.UUID `json:"course_category_id" validate:"required"`
	CourseTitle      string    `json:"course_title" validate:"required,min=3,max=200"`
	CourseSlug       *string   `json:"course_slug" validate:"omitempty,max=160"`
	CourseDesc       *string   `json:"course_desc" validate:"omitempty"`
	CourseLevel      *string   `json:"course_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	CoursePrice      *int64    `json:"course_price" validate:"omitempty,gte=0"`
}

type CourseUpdateRequest struct {
	CourseCategoryID *uuid.UUID `json:"course_category_id"`
	CourseTitle      *string    `json:"course_title" validate:"omitempty,min=3,max=200"`
	CourseSlug       *string    `json:"course_slug" validate:"omitempty,max=160"`
	CourseDesc       *string    `json:"course_desc" validate:"omitempty"`
	CourseLevel      *string    `json:"course_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	CoursePrice      *int64     `json:"course_price" validate:"omitempty,gte=0"`
}

type CoursesListQuery struct {
	Q        *string `query:"q"`        // cari di title/desc
	Category *string `query:"category"` // slug kategori
	Level    *string `query:"level"`
	Status   *string `query:"status"` // hanya dipakai listing admin
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func (r *CourseCreateRequest) Normalize() {
	r.CourseTitle = strings.TrimSpace(r.CourseTitle)
	r.CourseSlug = trimPtr(r.CourseSlug)
	r.CourseDesc = trimPtr(r.CourseDesc)
	r.CourseLevel = trimPtr(r.CourseLevel)
}

func (r *CourseCreateRequest) ToModel(createdBy uuid.UUID) *model.CourseModel {
	m := &model.CourseModel{
		CourseCategoryID: r.CourseCategoryID,
		CourseCreatedBy:  createdBy,
		CourseTitle:      r.CourseTitle,
		CourseDesc:       r.CourseDesc,
		CourseStatus:     model.CourseStatusDraft,
		CourseLevel:      model.CourseLevelBeginner,
	}
	if r.CourseSlug != nil {
		m.CourseSlug = *r.CourseSlug
	}
	if r.CourseLevel != nil {
		m.CourseLevel = *r.CourseLevel
	}
	if r.CoursePrice != nil {
		m.CoursePrice = *r.CoursePrice
	}
	return m
}

func (r *CourseUpdateRequest) Normalize() {
	r.CourseTitle = trimPtr(r.CourseTitle)
	r.CourseSlug = trimPtr(r.CourseSlug)
	r.CourseDesc = trimPtr(r.CourseDesc)
	r.CourseLevel = trimPtr(r.CourseLevel)
}

func (r *CourseUpdateRequest) ApplyToModel(m *model.CourseModel) {
	if r.CourseCategoryID != nil {
		m.CourseCategoryID = *r.CourseCategoryID
	}
	if r.CourseTitle != nil {
		m.CourseTitle = *r.CourseTitle
	}
	if r.CourseSlug != nil {
		m.CourseSlug = *r.CourseSlug
	}
	if r.CourseDesc != nil {
		m.CourseDesc = r.CourseDesc
	}
	if r.CourseLevel != nil {
		m.CourseLevel = *r.CourseLevel
	}
	if r.CoursePrice != nil {
		m.CoursePrice = *r.CoursePrice
	}
}

/* =========================
   RESPONSE
   ========================= */

type CourseResponse struct {
	CourseID           uuid.UUID `json:"course_id"`
	CourseCategoryID   uuid.UUID `json:"course_category_id"`
	CourseCreatedBy    uuid.UUID `json:"course_created_by"`
	CourseTitle        string    `json:"course_title"`
	CourseSlug         string    `json:"course_slug"`
	CourseDesc         *string   `json:"course_desc,omitempty"`
	CourseLevel        string    `json:"course_level"`
	CoursePrice        int64     `json:"course_price"`
	CourseThumbnailURL *string   `json:"course_thumbnail_url,omitempty"`
	CourseStatus       string    `json:"course_status"`
	CourseCreatedAt    time.Time `json:"course_created_at"`

	// agregat opsional (diisi query listing)
	EnrollmentCount *int64   `json:"enrollment_count,omitempty"`
	AvgRating       *float64 `json:"avg_rating,omitempty"`
	ReviewCount     *int64   `json:"review_count,omitempty"`
}

func ToCourseResponse(m *model.CourseModel) CourseResponse {
	return CourseResponse{
		CourseID:           m.CourseID,
		CourseCategoryID:   m.CourseCategoryID,
		CourseCreatedBy:    m.CourseCreatedBy,
		CourseTitle:        m.CourseTitle,
		CourseSlug:         m.CourseSlug,
		CourseDesc:         m.CourseDesc,
		CourseLevel:        m.CourseLevel,
		CoursePrice:        m.CoursePrice,
		CourseThumbnailURL: m.CourseThumbnailURL,
		CourseStatus:       m.CourseStatus,
		CourseCreatedAt:    m.CourseCreatedAt,
	}
}

func ToCourseResponses(list []model.CourseModel) []CourseResponse {
	out := make([]CourseResponse, 0, len(list))
	for i := range list {
		out = append(out, ToCourseResponse(&list[i]))
	}
	return out
}
