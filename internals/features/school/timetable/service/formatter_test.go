// file: internals/features/school/timetable/service/formatter_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	timingModel "schoolku_backend/internals/features/school/timetable/timings/model"
)

func def(code, label string, kind timingModel.PeriodKind, from, to string) timingModel.PeriodDef {
	return timingModel.PeriodDef{
		PeriodCode: code,
		Label:      label,
		Kind:       kind,
		TimeSlots:  []timingModel.TimeSlot{{From: from, To: to}},
	}
}

func TestBuildDayEvents_AllFreeWhenNoLessons(t *testing.T) {
	defs := []timingModel.PeriodDef{
		def("d1p1", "Period 1", timingModel.PeriodLesson, "07:30", "08:15"),
		def("d1p2", "Period 2", timingModel.PeriodLesson, "08:15", "09:00"),
		def("d1p3", "Period 3", timingModel.PeriodLesson, "09:00", "09:45"),
	}

	events := BuildDayEvents(defs, nil)
	require.Len(t, events, 3)
	for i, ev := range events {
		assert.Equal(t, EventFree, ev.Kind)
		assert.Equal(t, defs[i].PeriodCode, ev.PeriodCode)
		assert.Equal(t, "Free Period", ev.Title)
		assert.Equal(t, "free:"+defs[i].PeriodCode, ev.EventID)
		assert.Equal(t, "#9CA3AF", ev.Color)
		assert.Equal(t, "#F3F4F6", ev.ColorSecondary)
	}
}

func TestBuildDayEvents_BreakWinsOverLessonRow(t *testing.T) {
	defs := []timingModel.PeriodDef{
		def("d1p1", "Period 1", timingModel.PeriodLesson, "07:30", "08:15"),
		def("d1p2", "Morning Break", timingModel.PeriodBreak, "08:15", "08:30"),
	}
	// A stray schedule row at the break slot must not surface.
	lessons := []Lesson{
		{ScheduleID: uuid.New(), PeriodCode: "d1p2", SubjectName: "Algebra", ClassroomName: "7A"},
	}

	events := BuildDayEvents(defs, lessons)
	require.Len(t, events, 2)
	assert.Equal(t, EventFree, events[0].Kind)
	assert.Equal(t, EventBreak, events[1].Kind)
	assert.Equal(t, "Morning Break", events[1].Title)
	assert.Equal(t, "break:d1p2", events[1].EventID)
	assert.Equal(t, "#F59E0B", events[1].Color)
	assert.Equal(t, "#FEF3C7", events[1].ColorSecondary)
}

func TestBuildDayEvents_LegacyBreakLabelStillWins(t *testing.T) {
	defs := []timingModel.PeriodDef{
		def("d1p4", "Lunch Break", "", "12:00", "12:45"), // no kind tag, pre-tag data
	}
	lessons := []Lesson{
		{ScheduleID: uuid.New(), PeriodCode: "d1p4", SubjectName: "History", ClassroomName: "8B"},
	}

	events := BuildDayEvents(defs, lessons)
	require.Len(t, events, 1)
	assert.Equal(t, EventBreak, events[0].Kind)
	assert.Equal(t, "Lunch Break", events[0].Title)
}

func TestBuildDayEvents_LessonFillsSlot(t *testing.T) {
	scheduleID := uuid.New()
	defs := []timingModel.PeriodDef{
		def("d1p1", "Period 1", timingModel.PeriodLesson, "07:30", "08:15"),
		def("d1p2", "Period 2", timingModel.PeriodLesson, "08:15", "09:00"),
	}
	lessons := []Lesson{
		{
			ScheduleID:     scheduleID,
			PeriodCode:     "d1p1",
			SubjectName:    "Algebra",
			ClassroomName:  "7A",
			Color:          "#3B82F6",
			ColorSecondary: "#DBEAFE",
		},
	}

	events := BuildDayEvents(defs, lessons)
	require.Len(t, events, 2)

	lesson := events[0]
	assert.Equal(t, EventLesson, lesson.Kind)
	assert.Equal(t, scheduleID.String(), lesson.EventID)
	assert.Equal(t, "Algebra", lesson.Title)
	assert.Equal(t, "7A", lesson.Classroom)
	assert.Equal(t, "#3B82F6", lesson.Color)
	assert.Equal(t, "#DBEAFE", lesson.ColorSecondary)
	assert.Equal(t, "07:30", lesson.From)
	assert.Equal(t, "08:15", lesson.To)

	assert.Equal(t, EventFree, events[1].Kind)
}

func TestBuildDayEvents_SortsByStartTime(t *testing.T) {
	defs := []timingModel.PeriodDef{
		def("d1p3", "Period 3", timingModel.PeriodLesson, "09:00", "09:45"),
		def("d1p1", "Period 1", timingModel.PeriodLesson, "07:30", "08:15"),
		def("d1p2", "Morning Break", timingModel.PeriodBreak, "08:15", "08:30"),
	}

	events := BuildDayEvents(defs, nil)
	require.Len(t, events, 3)
	assert.Equal(t, []string{"07:30", "08:15", "09:00"}, []string{events[0].From, events[1].From, events[2].From})
	assert.Equal(t, []string{"d1p1", "d1p2", "d1p3"}, []string{events[0].PeriodCode, events[1].PeriodCode, events[2].PeriodCode})
}

func TestBuildDayEvents_OnlyFirstTimeSlotProjects(t *testing.T) {
	defs := []timingModel.PeriodDef{
		{
			PeriodCode: "d1p1",
			Label:      "Period 1",
			Kind:       timingModel.PeriodLesson,
			TimeSlots: []timingModel.TimeSlot{
				{From: "07:30", To: "08:15"},
				{From: "10:00", To: "10:45"},
			},
		},
		{PeriodCode: "d1p2", Label: "Period 2", Kind: timingModel.PeriodLesson, TimeSlots: nil},
	}

	events := BuildDayEvents(defs, nil)
	// the slotless definition is skipped entirely
	require.Len(t, events, 1)
	assert.Equal(t, "07:30", events[0].From)
	assert.Equal(t, "08:15", events[0].To)
}
