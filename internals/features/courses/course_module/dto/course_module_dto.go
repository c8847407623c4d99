package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "belajarku_backend/internals/features/courses/course_module/model"
	materialModel "belajarku_backend/internals/features/courses/material/model"
)

/* =========================
   REQUEST
   ========================= */

type CourseModuleCreateRequest struct {
	CourseModuleTitle    string  `json:"course_module_title" validate:"required,min=3,max=200"`
	CourseModuleDesc     *string `json:"course_module_desc" validate:"omitempty"`
	CourseModulePosition *int    `json:"course_module_position" validate:"omitempty,gte=0"`
}

type CourseModuleUpdateRequest struct {
	CourseModuleTitle    *string `json:"course_module_title" validate:"omitempty,min=3,max=200"`
	CourseModuleDesc     *string `json:"course_module_desc" validate:"omitempty"`
	CourseModulePosition *int    `json:"course_module_position" validate:"omitempty,gte=0"`
}

// Reorder: daftar id module dalam urutan baru
type CourseModuleReorderRequest struct {
	ModuleIDs []uuid.UUID `json:"module_ids" validate:"required,min=1,dive,required"`
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

func (r *CourseModuleCreateRequest) Normalize() {
	r.CourseModuleTitle = strings.TrimSpace(r.CourseModuleTitle)
	r.CourseModuleDesc = trimPtr(r.CourseModuleDesc)
}

func (r *CourseModuleCreateRequest) ToModel(courseID uuid.UUID) *model.CourseModuleModel {
	m := &model.CourseModuleModel{
		CourseModuleCourseID: courseID,
		CourseModuleTitle:    r.CourseModuleTitle,
		CourseModuleDesc:     r.CourseModuleDesc,
	}
	if r.CourseModulePosition != nil {
		m.CourseModulePosition = *r.CourseModulePosition
	}
	return m
}

func (r *CourseModuleUpdateRequest) Normalize() {
	r.CourseModuleTitle = trimPtr(r.CourseModuleTitle)
	r.CourseModuleDesc = trimPtr(r.CourseModuleDesc)
}

func (r *CourseModuleUpdateRequest) ApplyToModel(m *model.CourseModuleModel) {
	if r.CourseModuleTitle != nil {
		m.CourseModuleTitle = *r.CourseModuleTitle
	}
	if r.CourseModuleDesc != nil {
		m.CourseModuleDesc = r.CourseModuleDesc
	}
	if r.CourseModulePosition != nil {
		m.CourseModulePosition = *r.CourseModulePosition
	}
}

/* =========================
   RESPONSE
   ========================= */

type MaterialItem struct {
	MaterialID              uuid.UUID `json:"material_id"`
	MaterialTitle           string    `json:"material_title"`
	MaterialType            string    `json:"material_type"`
	MaterialURL             string    `json:"material_url"`
	MaterialPosition        int       `json:"material_position"`
	MaterialDurationSeconds *int      `json:"material_duration_seconds,omitempty"`
}

type CourseModuleResponse struct {
	CourseModuleID        uuid.UUID      `json:"course_module_id"`
	CourseModuleCourseID  uuid.UUID      `json:"course_module_course_id"`
	CourseModuleTitle     string         `json:"course_module_title"`
	CourseModuleDesc      *string        `json:"course_module_desc,omitempty"`
	CourseModulePosition  int            `json:"course_module_position"`
	CourseModuleCreatedAt time.Time      `json:"course_module_created_at"`
	Materials             []MaterialItem `json:"materials,omitempty"`
}

func ToCourseModuleResponse(m *model.CourseModuleModel) CourseModuleResponse {
	return CourseModuleResponse{
		CourseModuleID:        m.CourseModuleID,
		CourseModuleCourseID:  m.CourseModuleCourseID,
		CourseModuleTitle:     m.CourseModuleTitle,
		CourseModuleDesc:      m.CourseModuleDesc,
		CourseModulePosition:  m.CourseModulePosition,
		CourseModuleCreatedAt: m.CourseModuleCreatedAt,
	}
}

func ToCourseModuleResponses(list []model.CourseModuleModel) []CourseModuleResponse {
	out := make([]CourseModuleResponse, 0, len(list))
	for i := range list {
		out = append(out, ToCourseModuleResponse(&list[i]))
	}
	return out
}

// BuildCurriculum menyusun materi ke dalam module-nya masing-masing.
// Input diasumsikan sudah terurut by position.
func BuildCurriculum(modules []model.CourseModuleModel, materials []materialModel.MaterialModel) []CourseModuleResponse {
	byModule := make(map[uuid.UUID][]MaterialItem, len(modules))
	for i := range materials {
		mt := &materials[i]
		byModule[mt.MaterialModuleID] = append(byModule[mt.MaterialModuleID], MaterialItem{
			MaterialID:              mt.MaterialID,
			MaterialTitle:           mt.MaterialTitle,
			MaterialType:            mt.MaterialType,
			MaterialURL:             mt.MaterialURL,
			MaterialPosition:        mt.MaterialPosition,
			MaterialDurationSeconds: mt.MaterialDurationSeconds,
		})
	}

	out := make([]CourseModuleResponse, 0, len(modules))
	for i := range modules {
		resp := ToCourseModuleResponse(&modules[i])
		resp.Materials = byModule[modules[i].CourseModuleID]
		out = append(out, resp)
	}
	return out
}
