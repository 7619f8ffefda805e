// file: internals/features/school/timetable/timings/model/schedule_timing_model.go
package model

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   Period kind
   ======================================================= */

type PeriodKind string

const (
	PeriodLesson PeriodKind = "lesson"
	PeriodBreak  PeriodKind = "break"
)

/* =======================================================
   Week timing shape (stored as jsonb, keyed by day code)
   ======================================================= */

type TimeSlot struct {
	From string `json:"from"` // HH:MM, zero-padded 24h
	To   string `json:"to"`
}

type PeriodDef struct {
	PeriodCode string     `json:"period_code"` // e.g. "d1p3"
	Label      string     `json:"label"`
	Kind       PeriodKind `json:"kind,omitempty"` // lesson | break; empty = legacy data
	TimeSlots  []TimeSlot `json:"timeSlots"`
}

// IsBreak prefers the explicit kind tag; rows stored before the tag existed
// fall back to the label convention.
func (p PeriodDef) IsBreak() bool {
	if p.Kind != "" {
		return p.Kind == PeriodBreak
	}
	return strings.Contains(p.Label, "Break")
}

// WeekTimings maps day code ("d1".."d7") to that day's ordered periods.
type WeekTimings map[string][]PeriodDef

/* =======================================================
   ScheduleTimingModel: maps the schedule_timings table
   ======================================================= */

type ScheduleTimingModel struct {
	ScheduleTimingID       uuid.UUID `json:"schedule_timing_id" gorm:"type:uuid;primaryKey;column:schedule_timing_id"`
	ScheduleTimingSchoolID uuid.UUID `json:"schedule_timing_school_id" gorm:"type:uuid;not null;uniqueIndex;column:schedule_timing_school_id"`

	// Day-keyed period definitions, one document per school.
	ScheduleTimingWeek datatypes.JSON `json:"schedule_timing_week" gorm:"type:jsonb;not null;default:'{}';column:schedule_timing_week"`

	ScheduleTimingCreatedAt time.Time `json:"schedule_timing_created_at" gorm:"column:schedule_timing_created_at;autoCreateTime"`
	ScheduleTimingUpdatedAt time.Time `json:"schedule_timing_updated_at" gorm:"column:schedule_timing_updated_at;autoUpdateTime"`
}

func (ScheduleTimingModel) TableName() string { return "schedule_timings" }

func (t *ScheduleTimingModel) BeforeCreate(tx *gorm.DB) error {
	if t.ScheduleTimingID == uuid.Nil {
		t.ScheduleTimingID = uuid.New()
	}
	return nil
}

// DecodeWeek unmarshals the jsonb column. An empty column yields an empty map.
func (t *ScheduleTimingModel) DecodeWeek() (WeekTimings, error) {
	week := WeekTimings{}
	if len(t.ScheduleTimingWeek) == 0 {
		return week, nil
	}
	if err := json.Unmarshal(t.ScheduleTimingWeek, &week); err != nil {
		return nil, err
	}
	return week, nil
}

// EncodeWeek marshals back into the jsonb column.
func (t *ScheduleTimingModel) EncodeWeek(week WeekTimings) error {
	raw, err := json.Marshal(week)
	if err != nil {
		return err
	}
	t.ScheduleTimingWeek = datatypes.JSON(raw)
	return nil
}

// DayPeriods returns the ordered definitions for one day; missing day = nil,
// which callers must treat as "no schedule configured", not an error.
func (t *ScheduleTimingModel) DayPeriods(dayCode string) ([]PeriodDef, error) {
	week, err := t.DecodeWeek()
	if err != nil {
		return nil, err
	}
	return week[dayCode], nil
}
