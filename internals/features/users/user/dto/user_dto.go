package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "belajarku_backend/internals/features/users/user/model"
)

/* =========================
   REQUEST
   ========================= */

type UpdateProfileRequest struct {
	UserName *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Bio      *string `json:"bio" validate:"omitempty,max=500"`
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

func (r *UpdateProfileRequest) Normalize() {
	r.UserName = trimPtr(r.UserName)
	r.FullName = trimPtr(r.FullName)
	r.Bio = trimPtr(r.Bio)
}

func (r *UpdateProfileRequest) ApplyToModel(u *model.UserModel) {
	if r.UserName != nil {
		u.UserName = *r.UserName
	}
	if r.FullName != nil {
		u.FullName = r.FullName
	}
	if r.Bio != nil {
		u.Bio = r.Bio
	}
}

type UsersListQuery struct {
	Q    *string `query:"q"`    // cari di user_name/full_name/email
	Role *string `query:"role"` // student|admin
}

/* =========================
   RESPONSE
   ========================= */

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	FullName  *string   `json:"full_name,omitempty"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserResponse(u *model.UserModel) UserResponse {
	return UserResponse{
		ID:        u.ID,
		UserName:  u.UserName,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		AvatarURL: u.AvatarURL,
		Bio:       u.Bio,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func ToUserResponses(list []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for i := range list {
		out = append(out, ToUserResponse(&list[i]))
	}
	return out
}
