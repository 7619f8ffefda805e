// file: internals/features/school/academics/subjects/dto/subject_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/academics/subjects/model"
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

type CreateSubjectRequest struct {
	SubjectSchoolID string  `json:"subject_school_id" validate:"required,uuid4"`
	SubjectName     string  `json:"subject_name" validate:"required,min=1"`
	SubjectCode     *string `json:"subject_code,omitempty"`
}

func (r *CreateSubjectRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *CreateSubjectRequest) ApplyToModel(dst *m.SubjectModel) error {
	schoolID, err := uuid.Parse(strings.TrimSpace(r.SubjectSchoolID))
	if err != nil {
		return err
	}
	dst.SubjectSchoolID = schoolID
	dst.SubjectName = strings.TrimSpace(r.SubjectName)
	dst.SubjectCode = strPtrOrNil(r.SubjectCode)
	return nil
}

type PatchSubjectRequest struct {
	SubjectName *string `json:"subject_name,omitempty" validate:"omitempty,min=1"`
	SubjectCode *string `json:"subject_code,omitempty"`
}

func (p *PatchSubjectRequest) Validate(v *validator.Validate) error { return v.Struct(p) }

func (p *PatchSubjectRequest) ApplyPatch(dst *m.SubjectModel) {
	if p.SubjectName != nil {
		dst.SubjectName = strings.TrimSpace(*p.SubjectName)
	}
	if p.SubjectCode != nil {
		dst.SubjectCode = strPtrOrNil(p.SubjectCode)
	}
}

type SubjectResponse struct {
	SubjectID        uuid.UUID `json:"subject_id"`
	SubjectSchoolID  uuid.UUID `json:"subject_school_id"`
	SubjectName      string    `json:"subject_name"`
	SubjectCode      *string   `json:"subject_code,omitempty"`
	SubjectCreatedAt time.Time `json:"subject_created_at"`
	SubjectUpdatedAt time.Time `json:"subject_updated_at"`
}

func NewSubjectResponse(src *m.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:        src.SubjectID,
		SubjectSchoolID:  src.SubjectSchoolID,
		SubjectName:      src.SubjectName,
		SubjectCode:      src.SubjectCode,
		SubjectCreatedAt: src.SubjectCreatedAt,
		SubjectUpdatedAt: src.SubjectUpdatedAt,
	}
}
