// file: internals/features/school/timetable/service/formatter.go
package service

import (
	"sort"

	"github.com/google/uuid"

	timingModel "schoolku_backend/internals/features/school/timetable/timings/model"
)

/* =======================================================
   Event: the derived timetable entry. Never persisted.
   ======================================================= */

type EventKind string

const (
	EventLesson EventKind = "lesson"
	EventBreak  EventKind = "break"
	EventFree   EventKind = "free"
)

// Fixed palettes for non-lesson events.
const (
	breakColor          = "#F59E0B"
	breakColorSecondary = "#FEF3C7"
	freeColor           = "#9CA3AF"
	freeColorSecondary  = "#F3F4F6"
	freePeriodTitle     = "Free Period"
)

type Event struct {
	// Lesson events carry the schedule row id; break/free events get a
	// deterministic placeholder derived from the period code.
	EventID        string    `json:"event_id"`
	PeriodCode     string    `json:"period_code"`
	Kind           EventKind `json:"kind"`
	Title          string    `json:"title"`
	Classroom      string    `json:"classroom,omitempty"`
	Color          string    `json:"color"`
	ColorSecondary string    `json:"color_secondary"`
	From           string    `json:"from"` // HH:MM
	To             string    `json:"to"`
}

// Lesson is one resolved schedule row, flattened for formatting.
type Lesson struct {
	ScheduleID     uuid.UUID
	PeriodCode     string
	SubjectName    string
	ClassroomName  string
	Color          string
	ColorSecondary string
}

/* =======================================================
   Formatter
   ======================================================= */

// BuildDayEvents merges a day's period definitions with the teacher's
// schedule rows into the ordered event list.
//
// Per definition, in the order supplied by the timing document:
//   - break periods always win, even over a stray schedule row at the
//     same code;
//   - a matching lesson fills the slot with the subject/classroom and the
//     assignment's colors;
//   - everything else is a free period.
//
// Only the first time range of a multi-range period reaches the event; the
// full ranges stay available in the raw timing payload. The result is sorted
// by start time, which is safe as a string compare for zero-padded 24h times.
func BuildDayEvents(defs []timingModel.PeriodDef, lessons []Lesson) []Event {
	byCode := make(map[string]Lesson, len(lessons))
	for _, l := range lessons {
		byCode[l.PeriodCode] = l
	}

	events := make([]Event, 0, len(defs))
	for _, def := range defs {
		if len(def.TimeSlots) == 0 {
			continue
		}
		slot := def.TimeSlots[0]

		switch {
		case def.IsBreak():
			events = append(events, Event{
				EventID:        "break:" + def.PeriodCode,
				PeriodCode:     def.PeriodCode,
				Kind:           EventBreak,
				Title:          def.Label,
				Color:          breakColor,
				ColorSecondary: breakColorSecondary,
				From:           slot.From,
				To:             slot.To,
			})
		default:
			if l, ok := byCode[def.PeriodCode]; ok {
				events = append(events, Event{
					EventID:        l.ScheduleID.String(),
					PeriodCode:     def.PeriodCode,
					Kind:           EventLesson,
					Title:          l.SubjectName,
					Classroom:      l.ClassroomName,
					Color:          l.Color,
					ColorSecondary: l.ColorSecondary,
					From:           slot.From,
					To:             slot.To,
				})
				continue
			}
			events = append(events, Event{
				EventID:        "free:" + def.PeriodCode,
				PeriodCode:     def.PeriodCode,
				Kind:           EventFree,
				Title:          freePeriodTitle,
				Color:          freeColor,
				ColorSecondary: freeColorSecondary,
				From:           slot.From,
				To:             slot.To,
			})
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].From < events[j].From
	})
	return events
}
