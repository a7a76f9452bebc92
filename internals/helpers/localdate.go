// file: internals/helpers/localdate.go
package helper

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const LocalDateLayout = "2006-01-02"

// ParseLocalDate parses a YYYY-MM-DD string into local midnight.
//
// The components are split by hand on purpose: handing a bare date string to a
// generic parser yields UTC midnight, which renders as the previous day in any
// timezone west of UTC. Every calendar date string in the app goes through here.
func ParseLocalDate(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) != 4 {
		return time.Time{}, fmt.Errorf("invalid year in date %q", s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("invalid month in date %q", s)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid day in date %q", s)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	// time.Date normalizes Feb 30 → Mar 2; reject anything that rolled over.
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return time.Time{}, fmt.Errorf("no such date %q", s)
	}
	return t, nil
}

// FormatLocalDate renders the calendar date of t in its own location.
func FormatLocalDate(t time.Time) string {
	return t.Format(LocalDateLayout)
}

// DateOnly truncates t to local midnight of the same calendar day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
