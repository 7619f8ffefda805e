// file: internals/features/school/timetable/schedules/dto/schedule_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	assignmentDTO "schoolku_backend/internals/features/school/timetable/assignments/dto"
	m "schoolku_backend/internals/features/school/timetable/schedules/model"
	"schoolku_backend/internals/features/school/timetable/service"
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
   Schedule copy DTOs
   ======================================================= */

type CreateScheduleCopyRequest struct {
	ScheduleCopySchoolID string `json:"schedule_copy_school_id" validate:"required,uuid4"`
	ScheduleCopyName     string `json:"schedule_copy_name" validate:"required,min=1"`
}

func (r *CreateScheduleCopyRequest) Validate(v *validator.Validate) error { return v.Struct(r) }

func (r *CreateScheduleCopyRequest) ApplyToModel(dst *m.ScheduleCopyModel) error {
	schoolID, err := uuid.Parse(strings.TrimSpace(r.ScheduleCopySchoolID))
	if err != nil {
		return err
	}
	dst.ScheduleCopySchoolID = schoolID
	dst.ScheduleCopyName = strings.TrimSpace(r.ScheduleCopyName)
	return nil
}

type ScheduleCopyResponse struct {
	ScheduleCopyID        uuid.UUID `json:"schedule_copy_id"`
	ScheduleCopySchoolID  uuid.UUID `json:"schedule_copy_school_id"`
	ScheduleCopyName      string    `json:"schedule_copy_name"`
	ScheduleCopyIsActive  bool      `json:"schedule_copy_is_active"`
	ScheduleCopyCreatedAt time.Time `json:"schedule_copy_created_at"`
	ScheduleCopyUpdatedAt time.Time `json:"schedule_copy_updated_at"`
}

func NewScheduleCopyResponse(src *m.ScheduleCopyModel) ScheduleCopyResponse {
	return ScheduleCopyResponse{
		ScheduleCopyID:        src.ScheduleCopyID,
		ScheduleCopySchoolID:  src.ScheduleCopySchoolID,
		ScheduleCopyName:      src.ScheduleCopyName,
		ScheduleCopyIsActive:  src.ScheduleCopyIsActive,
		ScheduleCopyCreatedAt: src.ScheduleCopyCreatedAt,
		ScheduleCopyUpdatedAt: src.ScheduleCopyUpdatedAt,
	}
}

/* =======================================================
   Schedule row DTOs
   ======================================================= */

type CreateScheduleRequest struct {
	ScheduleSchoolID     string  `json:"schedule_school_id"     validate:"required,uuid4"`
	ScheduleCopyID       string  `json:"schedule_copy_id"       validate:"required,uuid4"`
	ScheduleAssignmentID string  `json:"schedule_assignment_id" validate:"required,uuid4"`
	SchedulePeriodCode   string  `json:"schedule_period_code"   validate:"required"`
	SchedulePlace        *string `json:"schedule_place,omitempty"`
}

func (r *CreateScheduleRequest) Validate(v *validator.Validate) error {
	if err := v.Struct(r); err != nil {
		return err
	}
	if _, _, err := service.ParsePeriodCode(r.SchedulePeriodCode); err != nil {
		return err
	}
	return nil
}

func (r *CreateScheduleRequest) ApplyToModel(dst *m.ScheduleModel) error {
	schoolID, err := uuid.Parse(strings.TrimSpace(r.ScheduleSchoolID))
	if err != nil {
		return err
	}
	copyID, err := uuid.Parse(strings.TrimSpace(r.ScheduleCopyID))
	if err != nil {
		return err
	}
	assignmentID, err := uuid.Parse(strings.TrimSpace(r.ScheduleAssignmentID))
	if err != nil {
		return err
	}
	dst.ScheduleSchoolID = schoolID
	dst.ScheduleCopyID = copyID
	dst.ScheduleAssignmentID = assignmentID
	dst.SchedulePeriodCode = strings.TrimSpace(r.SchedulePeriodCode)
	dst.ScheduleIsActive = true
	dst.SchedulePlace = strPtrOrNil(r.SchedulePlace)
	return nil
}

// PatchScheduleRequest moves a row: either a whole new period code, or just
// the day / period number half of the current one.
type PatchScheduleRequest struct {
	SchedulePeriodCode *string `json:"schedule_period_code,omitempty"`
	ScheduleDayCode    *string `json:"schedule_day_code,omitempty"`
	SchedulePeriod     *int    `json:"schedule_period,omitempty" validate:"omitempty,gte=1,lte=20"`
	SchedulePlace      *string `json:"schedule_place,omitempty"`
	ScheduleIsActive   *bool   `json:"schedule_is_active,omitempty"`
}

func (p *PatchScheduleRequest) Validate(v *validator.Validate) error { return v.Struct(p) }

// TargetPeriodCode resolves the slot the row should land in after the patch.
func (p *PatchScheduleRequest) TargetPeriodCode(current string) (string, error) {
	if p.SchedulePeriodCode != nil {
		code := strings.TrimSpace(*p.SchedulePeriodCode)
		if _, _, err := service.ParsePeriodCode(code); err != nil {
			return "", err
		}
		return code, nil
	}

	dayCode, period, err := service.ParsePeriodCode(current)
	if err != nil {
		return "", err
	}
	if p.ScheduleDayCode != nil {
		dc := strings.TrimSpace(*p.ScheduleDayCode)
		if !service.ValidDayCode(dc) {
			return "", &InvalidDayCodeError{Code: dc}
		}
		dayCode = dc
	}
	if p.SchedulePeriod != nil {
		period = *p.SchedulePeriod
	}
	return service.MakePeriodCode(dayCode, period), nil
}

type InvalidDayCodeError struct{ Code string }

func (e *InvalidDayCodeError) Error() string { return "invalid day code " + e.Code }

type ScheduleResponse struct {
	ScheduleID           uuid.UUID `json:"schedule_id"`
	ScheduleSchoolID     uuid.UUID `json:"schedule_school_id"`
	ScheduleCopyID       uuid.UUID `json:"schedule_copy_id"`
	ScheduleAssignmentID uuid.UUID `json:"schedule_assignment_id"`
	SchedulePeriodCode   string    `json:"schedule_period_code"`
	ScheduleIsActive     bool      `json:"schedule_is_active"`
	SchedulePlace        *string   `json:"schedule_place,omitempty"`

	Assignment *assignmentDTO.AssignmentResponse `json:"assignment,omitempty"`

	ScheduleCreatedAt time.Time `json:"schedule_created_at"`
	ScheduleUpdatedAt time.Time `json:"schedule_updated_at"`
}

func NewScheduleResponse(src *m.ScheduleModel) ScheduleResponse {
	out := ScheduleResponse{
		ScheduleID:           src.ScheduleID,
		ScheduleSchoolID:     src.ScheduleSchoolID,
		ScheduleCopyID:       src.ScheduleCopyID,
		ScheduleAssignmentID: src.ScheduleAssignmentID,
		SchedulePeriodCode:   src.SchedulePeriodCode,
		ScheduleIsActive:     src.ScheduleIsActive,
		SchedulePlace:        src.SchedulePlace,
		ScheduleCreatedAt:    src.ScheduleCreatedAt,
		ScheduleUpdatedAt:    src.ScheduleUpdatedAt,
	}
	if src.Assignment != nil {
		r := assignmentDTO.NewAssignmentResponse(src.Assignment)
		out.Assignment = &r
	}
	return out
}
