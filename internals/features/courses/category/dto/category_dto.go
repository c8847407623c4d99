package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "belajarku_backend/internals/features/courses/category/model"
)

/* =========================
   REQUEST
   ========================= */

type CategoryCreateRequest struct {
	CategoryName string  `json:"category_name" validate:"required,min=2,max=100"`
	CategorySlug *string `json:"category_slug" validate:"omitempty,max=160"`
	CategoryDesc *string `json:"category_desc" validate:"omitempty"`
}

type CategoryUpdateRequest struct {
	CategoryName *string `json:"category_name" validate:"omitempty,min=2,max=100"`
	CategorySlug *string `json:"category_slug" validate:"omitempty,max=160"`
	CategoryDesc *string `json:"category_desc" validate:"omitempty"`
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

func (r *CategoryCreateRequest) Normalize() {
	r.CategoryName = strings.TrimSpace(r.CategoryName)
	r.CategorySlug = trimPtr(r.CategorySlug)
	r.CategoryDesc = trimPtr(r.CategoryDesc)
}

func (r *CategoryCreateRequest) ToModel() *model.CategoryModel {
	m := &model.CategoryModel{
		CategoryName: r.CategoryName,
		CategoryDesc: r.CategoryDesc,
	}
	if r.CategorySlug != nil {
		m.CategorySlug = *r.CategorySlug
	}
	return m
}

func (r *CategoryUpdateRequest) Normalize() {
	r.CategoryName = trimPtr(r.CategoryName)
	r.CategorySlug = trimPtr(r.CategorySlug)
	r.CategoryDesc = trimPtr(r.CategoryDesc)
}

func (r *CategoryUpdateRequest) ApplyToModel(m *model.CategoryModel) {
	if r.CategoryName != nil {
		m.CategoryName = *r.CategoryName
	}
	if r.CategorySlug != nil {
		m.CategorySlug = *r.CategorySlug
	}
	if r.CategoryDesc != nil {
		m.CategoryDesc = r.CategoryDesc
	}
}

/* =========================
   RESPONSE
   ========================= */

type CategoryResponse struct {
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	CategorySlug string    `json:"category_slug"`
	CategoryDesc *string   `json:"category_desc,omitempty"`
	CourseCount  *int64    `json:"course_count,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToCategoryResponse(m *model.CategoryModel) CategoryResponse {
	return CategoryResponse{
		CategoryID:   m.CategoryID,
		CategoryName: m.CategoryName,
		CategorySlug: m.CategorySlug,
		CategoryDesc: m.CategoryDesc,
		CreatedAt:    m.CategoryCreatedAt,
	}
}

func ToCategoryResponses(list []model.CategoryModel) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(list))
	for i := range list {
		out = append(out, ToCategoryResponse(&list[i]))
	}
	return out
}
