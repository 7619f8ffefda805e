// file: internals/features/school/timetable/service/period_code.go
package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period codes pack day and period into one key: "d1p3" = day 1, period 3.
// Day codes run d1 (Monday) through d7 (Sunday), ISO weekday numbering.

var DayCodes = []string{"d1", "d2", "d3", "d4", "d5", "d6", "d7"}

// ParsePeriodCode splits "d1p3" into its day code and period number.
func ParsePeriodCode(code string) (dayCode string, period int, err error) {
	code = strings.TrimSpace(code)
	pIdx := strings.IndexByte(code, 'p')
	if len(code) < 4 || code[0] != 'd' || pIdx < 2 {
		return "", 0, fmt.Errorf("invalid period code %q", code)
	}
	day, err := strconv.Atoi(code[1:pIdx])
	if err != nil || day < 1 || day > 7 {
		return "", 0, fmt.Errorf("invalid period code %q", code)
	}
	period, err = strconv.Atoi(code[pIdx+1:])
	if err != nil || period < 1 {
		return "", 0, fmt.Errorf("invalid period code %q", code)
	}
	return code[:pIdx], period, nil
}

// MakePeriodCode builds the packed key from its parts.
func MakePeriodCode(dayCode string, period int) string {
	return fmt.Sprintf("%sp%d", dayCode, period)
}

// ValidDayCode reports whether s is one of d1..d7.
func ValidDayCode(s string) bool {
	for _, d := range DayCodes {
		if s == d {
			return true
		}
	}
	return false
}

// TodayDayCode maps the local date to its day code (Monday = d1).
func TodayDayCode(now time.Time) string {
	wd := int(now.Weekday())
	if wd == 0 { // time.Sunday
		wd = 7
	}
	return fmt.Sprintf("d%d", wd)
}
