package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestWeekStart(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"wednesday backs up to monday", localDate(2025, time.June, 11), "2025-06-09"},
		{"monday stays put", localDate(2025, time.June, 9), "2025-06-09"},
		{"sunday belongs to the week before", localDate(2025, time.June, 15), "2025-06-09"},
		{"crosses a month boundary", localDate(2025, time.July, 1), "2025-06-30"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WeekStart(tc.in).Format("2006-01-02"))
		})
	}
}

func TestSummarize(t *testing.T) {
	weekStart := localDate(2025, time.June, 9)

	entries := []SummaryEntry{
		{JobID: "job-a", JobName: "Smith Kitchen", WorkDate: localDate(2025, time.June, 9), Hours: 8},
		{JobID: "job-a", JobName: "Smith Kitchen", WorkDate: localDate(2025, time.June, 10), Hours: 7.5},
		{JobID: "job-b", JobName: "Oak Bath", WorkDate: localDate(2025, time.June, 10), Hours: 2},
		{JobID: "job-b", JobName: "Oak Bath", WorkDate: localDate(2025, time.June, 15), Hours: 4}, // Sunday, still in
		{JobID: "job-c", JobName: "Elm Deck", WorkDate: localDate(2025, time.June, 16), Hours: 9}, // next week, out
	}

	summary := Summarize(weekStart, entries)

	assert.Equal(t, "2025-06-09", summary.WeekStart)
	assert.Equal(t, "2025-06-15", summary.WeekEnd)
	assert.InDelta(t, 21.5, summary.TotalHours, 1e-9)

	require.Len(t, summary.ByJob, 2)
	// sorted by hours descending
	assert.Equal(t, "job-a", summary.ByJob[0].JobID)
	assert.InDelta(t, 15.5, summary.ByJob[0].Hours, 1e-9)
	assert.Equal(t, "job-b", summary.ByJob[1].JobID)
	assert.InDelta(t, 6, summary.ByJob[1].Hours, 1e-9)

	assert.InDelta(t, 8, summary.ByDay["2025-06-09"], 1e-9)
	assert.InDelta(t, 9.5, summary.ByDay["2025-06-10"], 1e-9)
	assert.NotContains(t, summary.ByDay, "2025-06-16")
}

func TestSummarizeEmptyWeek(t *testing.T) {
	summary := Summarize(localDate(2025, time.June, 9), nil)
	assert.Zero(t, summary.TotalHours)
	assert.NotNil(t, summary.ByJob)
	assert.Empty(t, summary.ByJob)
	assert.Empty(t, summary.ByDay)
}
