// file: internals/features/school/academics/teachers/dto/teacher_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/academics/teachers/model"
)

func strPtrOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func uuidPtrFromString(s *string) (*uuid.UUID, error) {
	if s == nil {
		return nil, nil
	}
	ss := strings.TrimSpace(*s)
	if ss == "" {
		return nil, nil
	}
	id, err := uuid.Parse(ss)
	if err != nil {
		return nil, fmt.Errorf("invalid uuid: %w", err)
	}
	return &id, nil
}

type CreateTeacherRequest struct {
	TeacherSchoolID string  `json:"teacher_school_id" validate:"required,uuid4"`
	TeacherUserID   *string `json:"teacher_user_id,omitempty" validate:"omitempty,uuid4"`
	TeacherName     string  `json:"teacher_name" validate:"required,min=2"`
	TeacherEmail    *string `json:"teacher_email,omitempty" validate:"omitempty,email"`
	TeacherCode     *string `json:"teacher_code,omitempty" validate:"omitempty,max=20"`
}

func (r *CreateTeacherRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *CreateTeacherRequest) ApplyToModel(dst *m.TeacherModel) error {
	schoolID, err := uuid.Parse(strings.TrimSpace(r.TeacherSchoolID))
	if err != nil {
		return err
	}
	userID, err := uuidPtrFromString(r.TeacherUserID)
	if err != nil {
		return err
	}
	dst.TeacherSchoolID = schoolID
	dst.TeacherUserID = userID
	dst.TeacherName = strings.TrimSpace(r.TeacherName)
	dst.TeacherEmail = strPtrOrNil(r.TeacherEmail)
	dst.TeacherCode = strPtrOrNil(r.TeacherCode)
	return nil
}

type PatchTeacherRequest struct {
	TeacherUserID *string `json:"teacher_user_id,omitempty" validate:"omitempty,uuid4"`
	TeacherName   *string `json:"teacher_name,omitempty" validate:"omitempty,min=2"`
	TeacherEmail  *string `json:"teacher_email,omitempty" validate:"omitempty,email"`
	TeacherCode   *string `json:"teacher_code,omitempty" validate:"omitempty,max=20"`
}

func (p *PatchTeacherRequest) Validate(v *validator.Validate) error { return v.Struct(p) }

func (p *PatchTeacherRequest) ApplyPatch(dst *m.TeacherModel) error {
	if p.TeacherUserID != nil {
		idp, err := uuidPtrFromString(p.TeacherUserID)
		if err != nil {
			return fmt.Errorf("teacher_user_id: %w", err)
		}
		dst.TeacherUserID = idp
	}
	if p.TeacherName != nil {
		dst.TeacherName = strings.TrimSpace(*p.TeacherName)
	}
	if p.TeacherEmail != nil {
		dst.TeacherEmail = strPtrOrNil(p.TeacherEmail)
	}
	if p.TeacherCode != nil {
		dst.TeacherCode = strPtrOrNil(p.TeacherCode)
	}
	return nil
}

type TeacherResponse struct {
	TeacherID        uuid.UUID  `json:"teacher_id"`
	TeacherSchoolID  uuid.UUID  `json:"teacher_school_id"`
	TeacherUserID    *uuid.UUID `json:"teacher_user_id,omitempty"`
	TeacherName      string     `json:"teacher_name"`
	TeacherEmail     *string    `json:"teacher_email,omitempty"`
	TeacherCode      *string    `json:"teacher_code,omitempty"`
	TeacherCreatedAt time.Time  `json:"teacher_created_at"`
	TeacherUpdatedAt time.Time  `json:"teacher_updated_at"`
}

func NewTeacherResponse(src *m.TeacherModel) TeacherResponse {
	return TeacherResponse{
		TeacherID:        src.TeacherID,
		TeacherSchoolID:  src.TeacherSchoolID,
		TeacherUserID:    src.TeacherUserID,
		TeacherName:      src.TeacherName,
		TeacherEmail:     src.TeacherEmail,
		TeacherCode:      src.TeacherCode,
		TeacherCreatedAt: src.TeacherCreatedAt,
		TeacherUpdatedAt: src.TeacherUpdatedAt,
	}
}
