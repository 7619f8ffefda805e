// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "schoolku_backend/internals/features/users/auth/model"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (r *LoginRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	UserID       uuid.UUID  `json:"user_id"`
	UserEmail    string     `json:"user_email"`
	UserFullName string     `json:"user_full_name"`
	UserRole     string     `json:"user_role"`
	UserSchoolID *uuid.UUID `json:"user_school_id,omitempty"`
}

func NewUserResponse(src *m.UserModel) UserResponse {
	return UserResponse{
		UserID:       src.UserID,
		UserEmail:    src.UserEmail,
		UserFullName: src.UserFullName,
		UserRole:     src.UserRole,
		UserSchoolID: src.UserSchoolID,
	}
}
