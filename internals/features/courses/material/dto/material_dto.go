package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "belajarku_backend/internals/features/courses/material/model"
)

/* =========================
   REQUEST
   ========================= */

// Create via JSON hanya untuk materi bertipe LINK; materi file lewat multipart.
type MaterialCreateLinkRequest struct {
	MaterialTitle           string `json:"material_title" validate:"required,min=3,max=200"`
	MaterialURL             string `json:"material_url" validate:"required,url,max=500"`
	MaterialPosition        *int   `json:"material_position" validate:"omitempty,gte=0"`
	MaterialDurationSeconds *int   `json:"material_duration_seconds" validate:"omitempty,gte=0"`
}

type MaterialUpdateRequest struct {
	MaterialTitle           *string `json:"material_title" validate:"omitempty,min=3,max=200"`
	MaterialURL             *string `json:"material_url" validate:"omitempty,url,max=500"`
	MaterialPosition        *int    `json:"material_position" validate:"omitempty,gte=0"`
	MaterialDurationSeconds *int    `json:"material_duration_seconds" validate:"omitempty,gte=0"`
}

func (r *MaterialCreateLinkRequest) Normalize() {
	r.MaterialTitle = strings.TrimSpace(r.MaterialTitle)
	r.MaterialURL = strings.TrimSpace(r.MaterialURL)
}

func (r *MaterialUpdateRequest) Normalize() {
	if r.MaterialTitle != nil {
		t := strings.TrimSpace(*r.MaterialTitle)
		r.MaterialTitle = &t
	}
	if r.MaterialURL != nil {
		u := strings.TrimSpace(*r.MaterialURL)
		r.MaterialURL = &u
	}
}

func (r *MaterialUpdateRequest) ApplyToModel(m *model.MaterialModel) {
	if r.MaterialTitle != nil {
		m.MaterialTitle = *r.MaterialTitle
	}
	if r.MaterialURL != nil {
		m.MaterialURL = *r.MaterialURL
	}
	if r.MaterialPosition != nil {
		m.MaterialPosition = *r.MaterialPosition
	}
	if r.MaterialDurationSeconds != nil {
		m.MaterialDurationSeconds = r.MaterialDurationSeconds
	}
}

/* =========================
   RESPONSE
   ========================= */

type MaterialResponse struct {
	MaterialID              uuid.UUID `json:"material_id"`
	MaterialModuleID        uuid.UUID `json:"material_module_id"`
	MaterialCourseID        uuid.UUID `json:"material_course_id"`
	MaterialTitle           string    `json:"material_title"`
	MaterialType            string    `json:"material_type"`
	MaterialURL             string    `json:"material_url"`
	MaterialPosition        int       `json:"material_position"`
	MaterialDurationSeconds *int      `json:"material_duration_seconds,omitempty"`
	MaterialCreatedAt       time.Time `json:"material_created_at"`
}

func ToMaterialResponse(m *model.MaterialModel) MaterialResponse {
	return MaterialResponse{
		MaterialID:              m.MaterialID,
		MaterialModuleID:        m.MaterialModuleID,
		MaterialCourseID:        m.MaterialCourseID,
		MaterialTitle:           m.MaterialTitle,
		MaterialType:            m.MaterialType,
		MaterialURL:             m.MaterialURL,
		MaterialPosition:        m.MaterialPosition,
		MaterialDurationSeconds: m.MaterialDurationSeconds,
		MaterialCreatedAt:       m.MaterialCreatedAt,
	}
}
