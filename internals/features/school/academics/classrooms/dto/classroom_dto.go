// file: internals/features/school/academics/classrooms/dto/classroom_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"

	m "schoolku_backend/internals/features/school/academics/classrooms/model"
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

type CreateClassroomRequest struct {
	ClassroomSchoolID string   `json:"classroom_school_id" validate:"required,uuid4"`
	ClassroomName     string   `json:"classroom_name" validate:"required,min=1"`
	ClassroomCode     *string  `json:"classroom_code,omitempty"`
	ClassroomLocation *string  `json:"classroom_location,omitempty"`
	ClassroomCapacity *int     `json:"classroom_capacity,omitempty" validate:"omitempty,gte=0"`
	ClassroomFeatures []string `json:"classroom_features,omitempty"`
}

func (r *CreateClassroomRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *CreateClassroomRequest) ApplyToModel(dst *m.ClassroomModel) error {
	schoolID, err := uuid.Parse(strings.TrimSpace(r.ClassroomSchoolID))
	if err != nil {
		return err
	}
	dst.ClassroomSchoolID = schoolID
	dst.ClassroomName = strings.TrimSpace(r.ClassroomName)
	dst.ClassroomCode = strPtrOrNil(r.ClassroomCode)
	dst.ClassroomLocation = strPtrOrNil(r.ClassroomLocation)
	dst.ClassroomCapacity = r.ClassroomCapacity
	dst.ClassroomFeatures = pq.StringArray(r.ClassroomFeatures)
	return nil
}

type PatchClassroomRequest struct {
	ClassroomName     *string   `json:"classroom_name,omitempty" validate:"omitempty,min=1"`
	ClassroomCode     *string   `json:"classroom_code,omitempty"`
	ClassroomLocation *string   `json:"classroom_location,omitempty"`
	ClassroomCapacity *int      `json:"classroom_capacity,omitempty" validate:"omitempty,gte=0"`
	ClassroomFeatures *[]string `json:"classroom_features,omitempty"`
}

func (p *PatchClassroomRequest) Validate(v *validator.Validate) error { return v.Struct(p) }

func (p *PatchClassroomRequest) ApplyPatch(dst *m.ClassroomModel) {
	if p.ClassroomName != nil {
		dst.ClassroomName = strings.TrimSpace(*p.ClassroomName)
	}
	if p.ClassroomCode != nil {
		dst.ClassroomCode = strPtrOrNil(p.ClassroomCode)
	}
	if p.ClassroomLocation != nil {
		dst.ClassroomLocation = strPtrOrNil(p.ClassroomLocation)
	}
	if p.ClassroomCapacity != nil {
		dst.ClassroomCapacity = p.ClassroomCapacity
	}
	if p.ClassroomFeatures != nil {
		dst.ClassroomFeatures = pq.StringArray(*p.ClassroomFeatures)
	}
}

/* =======================================================
   Response DTO
   ======================================================= */

type ClassroomResponse struct {
	ClassroomID        uuid.UUID `json:"classroom_id"`
	ClassroomSchoolID  uuid.UUID `json:"classroom_school_id"`
	ClassroomName      string    `json:"classroom_name"`
	ClassroomCode      *string   `json:"classroom_code,omitempty"`
	ClassroomLocation  *string   `json:"classroom_location,omitempty"`
	ClassroomCapacity  *int      `json:"classroom_capacity,omitempty"`
	ClassroomFeatures  []string  `json:"classroom_features"`
	ClassroomCreatedAt time.Time `json:"classroom_created_at"`
	ClassroomUpdatedAt time.Time `json:"classroom_updated_at"`
}

func NewClassroomResponse(src *m.ClassroomModel) ClassroomResponse {
	return ClassroomResponse{
		ClassroomID:        src.ClassroomID,
		ClassroomSchoolID:  src.ClassroomSchoolID,
		ClassroomName:      src.ClassroomName,
		ClassroomCode:      src.ClassroomCode,
		ClassroomLocation:  src.ClassroomLocation,
		ClassroomCapacity:  src.ClassroomCapacity,
		ClassroomFeatures:  []string(src.ClassroomFeatures),
		ClassroomCreatedAt: src.ClassroomCreatedAt,
		ClassroomUpdatedAt: src.ClassroomUpdatedAt,
	}
}
