// file: internals/features/school/schools/dto/school_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/schools/model"
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

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateSchoolRequest struct {
	SchoolName    string  `json:"school_name" validate:"required,min=2"`
	SchoolCode    string  `json:"school_code" validate:"required,min=2,max=20"`
	SchoolAddress *string `json:"school_address,omitempty"`
	SchoolPhone   *string `json:"school_phone,omitempty" validate:"omitempty,max=20"`
}

func (r *CreateSchoolRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *CreateSchoolRequest) ApplyToModel(dst *m.SchoolModel) {
	dst.SchoolName = strings.TrimSpace(r.SchoolName)
	dst.SchoolCode = strings.TrimSpace(r.SchoolCode)
	dst.SchoolAddress = strPtrOrNil(r.SchoolAddress)
	dst.SchoolPhone = strPtrOrNil(r.SchoolPhone)
}

type PatchSchoolRequest struct {
	SchoolName    *string `json:"school_name,omitempty" validate:"omitempty,min=2"`
	SchoolCode    *string `json:"school_code,omitempty" validate:"omitempty,min=2,max=20"`
	SchoolAddress *string `json:"school_address,omitempty"`
	SchoolPhone   *string `json:"school_phone,omitempty" validate:"omitempty,max=20"`
}

func (p *PatchSchoolRequest) Validate(v *validator.Validate) error { return v.Struct(p) }

func (p *PatchSchoolRequest) ApplyPatch(dst *m.SchoolModel) {
	if p.SchoolName != nil {
		dst.SchoolName = strings.TrimSpace(*p.SchoolName)
	}
	if p.SchoolCode != nil {
		dst.SchoolCode = strings.TrimSpace(*p.SchoolCode)
	}
	if p.SchoolAddress != nil {
		dst.SchoolAddress = strPtrOrNil(p.SchoolAddress)
	}
	if p.SchoolPhone != nil {
		dst.SchoolPhone = strPtrOrNil(p.SchoolPhone)
	}
}

/* =======================================================
   Response DTO
   ======================================================= */

type SchoolResponse struct {
	SchoolID        uuid.UUID `json:"school_id"`
	SchoolName      string    `json:"school_name"`
	SchoolCode      string    `json:"school_code"`
	SchoolAddress   *string   `json:"school_address,omitempty"`
	SchoolPhone     *string   `json:"school_phone,omitempty"`
	SchoolCreatedAt time.Time `json:"school_created_at"`
	SchoolUpdatedAt time.Time `json:"school_updated_at"`
}

func NewSchoolResponse(src *m.SchoolModel) SchoolResponse {
	return SchoolResponse{
		SchoolID:        src.SchoolID,
		SchoolName:      src.SchoolName,
		SchoolCode:      src.SchoolCode,
		SchoolAddress:   src.SchoolAddress,
		SchoolPhone:     src.SchoolPhone,
		SchoolCreatedAt: src.SchoolCreatedAt,
		SchoolUpdatedAt: src.SchoolUpdatedAt,
	}
}
