// file: internals/features/school/timetable/service/period_code_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriodCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantDay string
		wantNum int
		wantErr bool
	}{
		{name: "simple", code: "d1p3", wantDay: "d1", wantNum: 3},
		{name: "two digit period", code: "d5p12", wantDay: "d5", wantNum: 12},
		{name: "sunday", code: "d7p1", wantDay: "d7", wantNum: 1},
		{name: "trims whitespace", code: " d2p4 ", wantDay: "d2", wantNum: 4},
		{name: "empty", code: "", wantErr: true},
		{name: "day zero", code: "d0p1", wantErr: true},
		{name: "day eight", code: "d8p1", wantErr: true},
		{name: "period zero", code: "d1p0", wantErr: true},
		{name: "missing period", code: "d1p", wantErr: true},
		{name: "missing day prefix", code: "1p3", wantErr: true},
		{name: "garbage", code: "monday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, num, err := ParsePeriodCode(tt.code)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDay, day)
			assert.Equal(t, tt.wantNum, num)
		})
	}
}

func TestMakePeriodCode_RoundTrips(t *testing.T) {
	code := MakePeriodCode("d3", 7)
	assert.Equal(t, "d3p7", code)

	day, num, err := ParsePeriodCode(code)
	require.NoError(t, err)
	assert.Equal(t, "d3", day)
	assert.Equal(t, 7, num)
}

func TestValidDayCode(t *testing.T) {
	for _, d := range DayCodes {
		assert.True(t, ValidDayCode(d), d)
	}
	assert.False(t, ValidDayCode("d0"))
	assert.False(t, ValidDayCode("d8"))
	assert.False(t, ValidDayCode(""))
	assert.False(t, ValidDayCode("D1"))
}

func TestTodayDayCode_ISOWeekdays(t *testing.T) {
	// 2026-08-31 is a Monday.
	monday := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "d1", TodayDayCode(monday))
	assert.Equal(t, "d6", TodayDayCode(monday.AddDate(0, 0, 5)))
	assert.Equal(t, "d7", TodayDayCode(monday.AddDate(0, 0, 6)))
}
