// file: internals/features/school/timetable/assignments/dto/assignment_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	classroomDTO "schoolku_backend/internals/features/school/academics/classrooms/dto"
	subjectDTO "schoolku_backend/internals/features/school/academics/subjects/dto"
	teacherDTO "schoolku_backend/internals/features/school/academics/teachers/dto"
	m "schoolku_backend/internals/features/school/timetable/assignments/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateAssignmentRequest struct {
	AssignmentSchoolID    string `json:"assignment_school_id"    validate:"required,uuid4"`
	AssignmentClassroomID string `json:"assignment_classroom_id" validate:"required,uuid4"`
	AssignmentSubjectID   string `json:"assignment_subject_id"   validate:"required,uuid4"`
	AssignmentTeacherID   string `json:"assignment_teacher_id"   validate:"required,uuid4"`

	AssignmentWeeklyQuota    int     `json:"assignment_weekly_quota" validate:"required,gte=1,lte=40"`
	AssignmentColor          *string `json:"assignment_color,omitempty" validate:"omitempty,max=20"`
	AssignmentColorSecondary *string `json:"assignment_color_secondary,omitempty" validate:"omitempty,max=20"`
}

func (r *CreateAssignmentRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *CreateAssignmentRequest) ApplyToModel(dst *m.AssignmentModel) error {
	schoolID, err := uuid.Parse(strings.TrimSpace(r.AssignmentSchoolID))
	if err != nil {
		return err
	}
	classroomID, err := uuid.Parse(strings.TrimSpace(r.AssignmentClassroomID))
	if err != nil {
		return err
	}
	subjectID, err := uuid.Parse(strings.TrimSpace(r.AssignmentSubjectID))
	if err != nil {
		return err
	}
	teacherID, err := uuid.Parse(strings.TrimSpace(r.AssignmentTeacherID))
	if err != nil {
		return err
	}

	dst.AssignmentSchoolID = schoolID
	dst.AssignmentClassroomID = classroomID
	dst.AssignmentSubjectID = subjectID
	dst.AssignmentTeacherID = teacherID
	dst.AssignmentWeeklyQuota = r.AssignmentWeeklyQuota
	if r.AssignmentColor != nil && strings.TrimSpace(*r.AssignmentColor) != "" {
		dst.AssignmentColor = strings.TrimSpace(*r.AssignmentColor)
	}
	if r.AssignmentColorSecondary != nil && strings.TrimSpace(*r.AssignmentColorSecondary) != "" {
		dst.AssignmentColorSecondary = strings.TrimSpace(*r.AssignmentColorSecondary)
	}
	return nil
}

// BulkCreateAssignmentRequest backs the import endpoint: all rows are created
// in one transaction, all-or-nothing.
type BulkCreateAssignmentRequest struct {
	Items []CreateAssignmentRequest `json:"items" validate:"required,min=1,max=500,dive"`
}

func (r *BulkCreateAssignmentRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

type PatchAssignmentRequest struct {
	AssignmentWeeklyQuota    *int    `json:"assignment_weekly_quota,omitempty" validate:"omitempty,gte=1,lte=40"`
	AssignmentColor          *string `json:"assignment_color,omitempty" validate:"omitempty,max=20"`
	AssignmentColorSecondary *string `json:"assignment_color_secondary,omitempty" validate:"omitempty,max=20"`
}

func (p *PatchAssignmentRequest) Validate(v *validator.Validate) error { return v.Struct(p) }

func (p *PatchAssignmentRequest) ApplyPatch(dst *m.AssignmentModel) {
	if p.AssignmentWeeklyQuota != nil {
		dst.AssignmentWeeklyQuota = *p.AssignmentWeeklyQuota
	}
	if p.AssignmentColor != nil {
		dst.AssignmentColor = strings.TrimSpace(*p.AssignmentColor)
	}
	if p.AssignmentColorSecondary != nil {
		dst.AssignmentColorSecondary = strings.TrimSpace(*p.AssignmentColorSecondary)
	}
}

/* =======================================================
   Response DTO
   ======================================================= */

type AssignmentResponse struct {
	AssignmentID          uuid.UUID `json:"assignment_id"`
	AssignmentSchoolID    uuid.UUID `json:"assignment_school_id"`
	AssignmentClassroomID uuid.UUID `json:"assignment_classroom_id"`
	AssignmentSubjectID   uuid.UUID `json:"assignment_subject_id"`
	AssignmentTeacherID   uuid.UUID `json:"assignment_teacher_id"`

	AssignmentWeeklyQuota    int    `json:"assignment_weekly_quota"`
	AssignmentColor          string `json:"assignment_color"`
	AssignmentColorSecondary string `json:"assignment_color_secondary"`

	Classroom *classroomDTO.ClassroomResponse `json:"classroom,omitempty"`
	Subject   *subjectDTO.SubjectResponse     `json:"subject,omitempty"`
	Teacher   *teacherDTO.TeacherResponse     `json:"teacher,omitempty"`

	AssignmentCreatedAt time.Time `json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time `json:"assignment_updated_at"`
}

func NewAssignmentResponse(src *m.AssignmentModel) AssignmentResponse {
	out := AssignmentResponse{
		AssignmentID:             src.AssignmentID,
		AssignmentSchoolID:       src.AssignmentSchoolID,
		AssignmentClassroomID:    src.AssignmentClassroomID,
		AssignmentSubjectID:      src.AssignmentSubjectID,
		AssignmentTeacherID:      src.AssignmentTeacherID,
		AssignmentWeeklyQuota:    src.AssignmentWeeklyQuota,
		AssignmentColor:          src.AssignmentColor,
		AssignmentColorSecondary: src.AssignmentColorSecondary,
		AssignmentCreatedAt:      src.AssignmentCreatedAt,
		AssignmentUpdatedAt:      src.AssignmentUpdatedAt,
	}
	if src.Classroom != nil {
		r := classroomDTO.NewClassroomResponse(src.Classroom)
		out.Classroom = &r
	}
	if src.Subject != nil {
		r := subjectDTO.NewSubjectResponse(src.Subject)
		out.Subject = &r
	}
	if src.Teacher != nil {
		r := teacherDTO.NewTeacherResponse(src.Teacher)
		out.Teacher = &r
	}
	return out
}
