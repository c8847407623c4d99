package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "belajarku_backend/internals/features/assignments/submission/model"
)

/* =========================
   REQUEST
   ========================= */

// Submit via JSON (jawaban teks); file dikirim multipart di endpoint yang sama.
type SubmitRequest struct {
	SubmissionText *string `json:"submission_text" validate:"omitempty,max=20000"`
}

type GradeRequest struct {
	SubmissionScore    int     `json:"submission_score" validate:"gte=0"`
	SubmissionFeedback *string `json:"submission_feedback" validate:"omitempty,max=5000"`
}

func (r *SubmitRequest) Normalize() {
	if r.SubmissionText != nil {
		t := strings.TrimSpace(*r.SubmissionText)
		if t == "" {
			r.SubmissionText = nil
		} else {
			r.SubmissionText = &t
		}
	}
}

func (r *GradeRequest) Normalize() {
	if r.SubmissionFeedback != nil {
		t := strings.TrimSpace(*r.SubmissionFeedback)
		if t == "" {
			r.SubmissionFeedback = nil
		} else {
			r.SubmissionFeedback = &t
		}
	}
}

/* =========================
   RESPONSE
   ========================= */

type SubmissionResponse struct {
	SubmissionID           uuid.UUID  `json:"submission_id"`
	SubmissionAssignmentID uuid.UUID  `json:"submission_assignment_id"`
	SubmissionUserID       uuid.UUID  `json:"submission_user_id"`
	SubmissionText         *string    `json:"submission_text,omitempty"`
	SubmissionFileURL      *string    `json:"submission_file_url,omitempty"`
	SubmissionScore        *int       `json:"submission_score,omitempty"`
	SubmissionFeedback     *string    `json:"submission_feedback,omitempty"`
	SubmissionGradedAt     *time.Time `json:"submission_graded_at,omitempty"`
	SubmissionGradedBy     *uuid.UUID `json:"submission_graded_by,omitempty"`
	SubmissionCreatedAt    time.Time  `json:"submission_created_at"`
	SubmissionUpdatedAt    time.Time  `json:"submission_updated_at"`
}

func ToSubmissionResponse(m *model.SubmissionModel) SubmissionResponse {
	return SubmissionResponse{
		SubmissionID:           m.SubmissionID,
		SubmissionAssignmentID: m.SubmissionAssignmentID,
		SubmissionUserID:       m.SubmissionUserID,
		SubmissionText:         m.SubmissionText,
		SubmissionFileURL:      m.SubmissionFileURL,
		SubmissionScore:        m.SubmissionScore,
		SubmissionFeedback:     m.SubmissionFeedback,
		SubmissionGradedAt:     m.SubmissionGradedAt,
		SubmissionGradedBy:     m.SubmissionGradedBy,
		SubmissionCreatedAt:    m.SubmissionCreatedAt,
		SubmissionUpdatedAt:    m.SubmissionUpdatedAt,
	}
}
