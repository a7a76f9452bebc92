package service

import (
	"sort"
	"time"

	helper "buildops_backend/internals/helpers"
)

// JobHours is one line of the weekly summary.
type JobHours struct {
	JobID   string  `json:"job_id"`
	JobName string  `json:"job_name"`
	Hours   float64 `json:"hours"`
}

// WeeklySummary totals one user's hours for a Monday-to-Sunday week.
type WeeklySummary struct {
	WeekStart  string             `json:"week_start"`
	WeekEnd    string             `json:"week_end"`
	TotalHours float64            `json:"total_hours"`
	ByJob      []JobHours         `json:"by_job"`
	ByDay      map[string]float64 `json:"by_day"`
}

// WeekStart walks back to the Monday of the week containing d.
func WeekStart(d time.Time) time.Time {
	day := helper.DateOnly(d)
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return day.AddDate(0, 0, -offset)
}

type SummaryEntry struct {
	JobID    string
	JobName  string
	WorkDate time.Time
	Hours    float64
}

// Summarize folds a week's entries into per-job and per-day totals. Entries
// outside [weekStart, weekStart+6d] are ignored so callers can pass a loose
// query result.
func Summarize(weekStart time.Time, entries []SummaryEntry) WeeklySummary {
	start := helper.DateOnly(weekStart)
	end := start.AddDate(0, 0, 6)
	from := helper.FormatLocalDate(start)
	to := helper.FormatLocalDate(end)

	summary := WeeklySummary{
		WeekStart: from,
		WeekEnd:   to,
		ByJob:     make([]JobHours, 0),
		ByDay:     make(map[string]float64),
	}

	byJob := make(map[string]*JobHours)
	for _, e := range entries {
		date := helper.FormatLocalDate(e.WorkDate)
		if date < from || date > to {
			continue
		}
		summary.TotalHours += e.Hours
		summary.ByDay[date] += e.Hours

		if line, ok := byJob[e.JobID]; ok {
			line.Hours += e.Hours
		} else {
			byJob[e.JobID] = &JobHours{JobID: e.JobID, JobName: e.JobName, Hours: e.Hours}
		}
	}

	for _, line := range byJob {
		summary.ByJob = append(summary.ByJob, *line)
	}
	sort.Slice(summary.ByJob, func(a, b int) bool {
		if summary.ByJob[a].Hours != summary.ByJob[b].Hours {
			return summary.ByJob[a].Hours > summary.ByJob[b].Hours
		}
		return summary.ByJob[a].JobID < summary.ByJob[b].JobID
	})
	return summary
}
