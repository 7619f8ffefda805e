// file: internals/features/school/timetable/timings/dto/schedule_timing_dto_test.go
package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "schoolku_backend/internals/features/school/timetable/timings/model"
)

func validUpsert() UpsertScheduleTimingRequest {
	return UpsertScheduleTimingRequest{
		ScheduleTimingSchoolID: "7f6bdd2e-55ab-4c92-9f10-3a2d9a9a1d11",
		Week: map[string][]PeriodDefRequest{
			"d1": {
				{PeriodCode: "d1p1", Label: "Period 1", TimeSlots: []TimeSlotRequest{{From: "07:30", To: "08:15"}}},
				{PeriodCode: "d1p2", Label: "Morning Break", TimeSlots: []TimeSlotRequest{{From: "08:15", To: "08:30"}}},
			},
		},
	}
}

func TestUpsertScheduleTimingRequest_Validate(t *testing.T) {
	v := validator.New()

	tests := []struct {
		name    string
		mutate  func(*UpsertScheduleTimingRequest)
		wantErr string
	}{
		{name: "valid", mutate: func(r *UpsertScheduleTimingRequest) {}},
		{
			name:    "bad day key",
			mutate:  func(r *UpsertScheduleTimingRequest) { r.Week["d9"] = r.Week["d1"] },
			wantErr: "invalid day code",
		},
		{
			name: "bad period code",
			mutate: func(r *UpsertScheduleTimingRequest) {
				r.Week["d1"][0].PeriodCode = "p1"
			},
			wantErr: "invalid period code",
		},
		{
			name: "period on wrong day",
			mutate: func(r *UpsertScheduleTimingRequest) {
				r.Week["d1"][0].PeriodCode = "d2p1"
			},
			wantErr: "does not belong to day",
		},
		{
			name: "duplicate period code",
			mutate: func(r *UpsertScheduleTimingRequest) {
				r.Week["d1"][1].PeriodCode = "d1p1"
			},
			wantErr: "duplicate period code",
		},
		{
			name: "bad clock value",
			mutate: func(r *UpsertScheduleTimingRequest) {
				r.Week["d1"][0].TimeSlots[0].From = "7:30"
			},
			wantErr: "must be HH:MM",
		},
		{
			name: "from after to",
			mutate: func(r *UpsertScheduleTimingRequest) {
				r.Week["d1"][0].TimeSlots[0] = TimeSlotRequest{From: "09:00", To: "08:00"}
			},
			wantErr: "from must be before to",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUpsert()
			tt.mutate(&req)
			err := req.Validate(v)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestUpsertScheduleTimingRequest_ToWeek_NormalizesKind(t *testing.T) {
	breakKind := "break"
	req := UpsertScheduleTimingRequest{
		ScheduleTimingSchoolID: "7f6bdd2e-55ab-4c92-9f10-3a2d9a9a1d11",
		Week: map[string][]PeriodDefRequest{
			"d1": {
				{PeriodCode: "d1p1", Label: "Period 1", TimeSlots: []TimeSlotRequest{{From: "07:30", To: "08:15"}}},
				{PeriodCode: "d1p2", Label: "Morning Break", TimeSlots: []TimeSlotRequest{{From: "08:15", To: "08:30"}}},
				{PeriodCode: "d1p3", Label: "Recess", Kind: &breakKind, TimeSlots: []TimeSlotRequest{{From: "10:00", To: "10:15"}}},
			},
		},
	}

	week := req.ToWeek()
	defs := week["d1"]
	require.Len(t, defs, 3)

	assert.Equal(t, m.PeriodLesson, defs[0].Kind)
	// legacy label convention resolved to an explicit tag at write time
	assert.Equal(t, m.PeriodBreak, defs[1].Kind)
	// an explicit kind beats the label
	assert.Equal(t, m.PeriodBreak, defs[2].Kind)

	assert.True(t, defs[1].IsBreak())
	assert.False(t, defs[0].IsBreak())
}
