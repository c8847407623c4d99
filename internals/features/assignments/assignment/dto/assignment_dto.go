package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "belajarku_backend/internals/features/assignments/assignment/model"
)

/* =========================
   REQUEST
   ========================= */

type AssignmentCreateRequest struct {
	AssignmentTitle    string     `json:"assignment_title" validate:"required,min=3,max=200"`
	AssignmentDesc     *string    `json:"assignment_desc" validate:"omitempty"`
	AssignmentDueAt    *time.Time `json:"assignment_due_at" validate:"omitempty"`
	AssignmentMaxScore *int       `json:"assignment_max_score" validate:"omitempty,gt=0,lte=1000"`
}

type AssignmentUpdateRequest struct {
	AssignmentTitle    *string    `json:"assignment_title" validate:"omitempty,min=3,max=200"`
	AssignmentDesc     *string    `json:"assignment_desc" validate:"omitempty"`
	AssignmentDueAt    *time.Time `json:"assignment_due_at" validate:"omitempty"`
	AssignmentMaxScore *int       `json:"assignment_max_score" validate:"omitempty,gt=0,lte=1000"`
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

func (r *AssignmentCreateRequest) Normalize() {
	r.AssignmentTitle = strings.TrimSpace(r.AssignmentTitle)
	r.AssignmentDesc = trimPtr(r.AssignmentDesc)
}

func (r *AssignmentCreateRequest) ToModel(courseID uuid.UUID) *model.AssignmentModel {
	m := &model.AssignmentModel{
		AssignmentCourseID: courseID,
		AssignmentTitle:    r.AssignmentTitle,
		AssignmentDesc:     r.AssignmentDesc,
		AssignmentDueAt:    r.AssignmentDueAt,
		AssignmentMaxScore: 100,
	}
	if r.AssignmentMaxScore != nil {
		m.AssignmentMaxScore = *r.AssignmentMaxScore
	}
	return m
}

func (r *AssignmentUpdateRequest) Normalize() {
	r.AssignmentTitle = trimPtr(r.AssignmentTitle)
	r.AssignmentDesc = trimPtr(r.AssignmentDesc)
}

func (r *AssignmentUpdateRequest) ApplyToModel(m *model.AssignmentModel) {
	if r.AssignmentTitle != nil {
		m.AssignmentTitle = *r.AssignmentTitle
	}
	if r.AssignmentDesc != nil {
		m.AssignmentDesc = r.AssignmentDesc
	}
	if r.AssignmentDueAt != nil {
		m.AssignmentDueAt = r.AssignmentDueAt
	}
	if r.AssignmentMaxScore != nil {
		m.AssignmentMaxScore = *r.AssignmentMaxScore
	}
}

/* =========================
   RESPONSE
   ========================= */

type AssignmentResponse struct {
	AssignmentID        uuid.UUID  `json:"assignment_id"`
	AssignmentCourseID  uuid.UUID  `json:"assignment_course_id"`
	AssignmentTitle     string     `json:"assignment_title"`
	AssignmentDesc      *string    `json:"assignment_desc,omitempty"`
	AssignmentDueAt     *time.Time `json:"assignment_due_at,omitempty"`
	AssignmentMaxScore  int        `json:"assignment_max_score"`
	AssignmentCreatedAt time.Time  `json:"assignment_created_at"`

	// jumlah submission; diisi listing admin
	SubmissionCount *int64 `json:"submission_count,omitempty"`
}

func ToAssignmentResponse(m *model.AssignmentModel) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID:        m.AssignmentID,
		AssignmentCourseID:  m.AssignmentCourseID,
		AssignmentTitle:     m.AssignmentTitle,
		AssignmentDesc:      m.AssignmentDesc,
		AssignmentDueAt:     m.AssignmentDueAt,
		AssignmentMaxScore:  m.AssignmentMaxScore,
		AssignmentCreatedAt: m.AssignmentCreatedAt,
	}
}

func ToAssignmentResponses(list []model.AssignmentModel) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(list))
	for i := range list {
		out = append(out, ToAssignmentResponse(&list[i]))
	}
	return out
}
