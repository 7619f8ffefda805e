// file: internals/features/school/timetable/timings/dto/schedule_timing_dto.go
package dto

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/timetable/timings/model"
)

var (
	reDayCode    = regexp.MustCompile(`^d[1-7]$`)
	rePeriodCode = regexp.MustCompile(`^d[1-7]p[0-9]{1,2}$`)
	reClockHHMM  = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

/* =======================================================
   Request DTOs
   ======================================================= */

type TimeSlotRequest struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to"   validate:"required"`
}

type PeriodDefRequest struct {
	PeriodCode string            `json:"period_code" validate:"required"`
	Label      string            `json:"label"       validate:"required,min=1"`
	Kind       *string           `json:"kind,omitempty" validate:"omitempty,oneof=lesson break"`
	TimeSlots  []TimeSlotRequest `json:"timeSlots"   validate:"required,min=1,dive"`
}

// UpsertScheduleTimingRequest replaces the whole week document for a school.
type UpsertScheduleTimingRequest struct {
	ScheduleTimingSchoolID string                        `json:"schedule_timing_school_id" validate:"required,uuid4"`
	Week                   map[string][]PeriodDefRequest `json:"week" validate:"required"`
}

func (r *UpsertScheduleTimingRequest) Validate(v *validator.Validate) error {
	if err := v.Struct(r); err != nil {
		return err
	}
	for dayCode, defs := range r.Week {
		if !reDayCode.MatchString(dayCode) {
			return fmt.Errorf("invalid day code %q (want d1..d7)", dayCode)
		}
		seen := map[string]bool{}
		for _, def := range defs {
			code := strings.TrimSpace(def.PeriodCode)
			if !rePeriodCode.MatchString(code) {
				return fmt.Errorf("invalid period code %q", def.PeriodCode)
			}
			if !strings.HasPrefix(code, dayCode+"p") {
				return fmt.Errorf("period code %q does not belong to day %q", code, dayCode)
			}
			if seen[code] {
				return fmt.Errorf("duplicate period code %q in day %q", code, dayCode)
			}
			seen[code] = true
			for _, ts := range def.TimeSlots {
				if !reClockHHMM.MatchString(ts.From) || !reClockHHMM.MatchString(ts.To) {
					return fmt.Errorf("period %q: time slots must be HH:MM", code)
				}
				// zero-padded 24h times compare correctly as strings
				if ts.From >= ts.To {
					return fmt.Errorf("period %q: from must be before to", code)
				}
			}
		}
	}
	return nil
}

// ToWeek builds the storable document. Definitions without an explicit kind
// get one here (break when the label carries the legacy "Break" marker), so
// the formatter never has to sniff labels for new data.
func (r *UpsertScheduleTimingRequest) ToWeek() m.WeekTimings {
	week := m.WeekTimings{}
	for dayCode, defs := range r.Week {
		out := make([]m.PeriodDef, 0, len(defs))
		for _, def := range defs {
			kind := m.PeriodLesson
			if def.Kind != nil {
				kind = m.PeriodKind(*def.Kind)
			} else if strings.Contains(def.Label, "Break") {
				kind = m.PeriodBreak
			}
			slots := make([]m.TimeSlot, 0, len(def.TimeSlots))
			for _, ts := range def.TimeSlots {
				slots = append(slots, m.TimeSlot{From: ts.From, To: ts.To})
			}
			out = append(out, m.PeriodDef{
				PeriodCode: strings.TrimSpace(def.PeriodCode),
				Label:      strings.TrimSpace(def.Label),
				Kind:       kind,
				TimeSlots:  slots,
			})
		}
		week[dayCode] = out
	}
	return week
}

func (r *UpsertScheduleTimingRequest) SchoolID() (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(r.ScheduleTimingSchoolID))
	if err != nil {
		return uuid.Nil, errors.New("invalid schedule_timing_school_id")
	}
	return id, nil
}

/* =======================================================
   Response DTO
   ======================================================= */

type ScheduleTimingResponse struct {
	ScheduleTimingID        uuid.UUID     `json:"schedule_timing_id"`
	ScheduleTimingSchoolID  uuid.UUID     `json:"schedule_timing_school_id"`
	Week                    m.WeekTimings `json:"week"`
	ScheduleTimingCreatedAt time.Time     `json:"schedule_timing_created_at"`
	ScheduleTimingUpdatedAt time.Time     `json:"schedule_timing_updated_at"`
}

func NewScheduleTimingResponse(src *m.ScheduleTimingModel) (ScheduleTimingResponse, error) {
	week, err := src.DecodeWeek()
	if err != nil {
		return ScheduleTimingResponse{}, err
	}
	return ScheduleTimingResponse{
		ScheduleTimingID:        src.ScheduleTimingID,
		ScheduleTimingSchoolID:  src.ScheduleTimingSchoolID,
		Week:                    week,
		ScheduleTimingCreatedAt: src.ScheduleTimingCreatedAt,
		ScheduleTimingUpdatedAt: src.ScheduleTimingUpdatedAt,
	}, nil
}
