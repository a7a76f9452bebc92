package service

import (
	"fmt"
	"strings"
	"time"

	helper "buildops_backend/internals/helpers"
)

// agendaWindowDays is the rolling horizon of the agenda list.
const agendaWindowDays = 30

// GroupByDate buckets events by their exact date string for the month grid.
// Pure over the flat list; no source access.
func GroupByDate(events []UnifiedEvent) map[string][]UnifiedEvent {
	grid := make(map[string][]UnifiedEvent)
	for _, ev := range events {
		grid[ev.Date] = append(grid[ev.Date], ev)
	}
	return grid
}

// MonthGrid narrows the flat list to one calendar month and buckets by date.
func MonthGrid(events []UnifiedEvent, year int, month time.Month) map[string][]UnifiedEvent {
	prefix := fmt.Sprintf("%04d-%02d-", year, int(month))
	grid := make(map[string][]UnifiedEvent)
	for _, ev := range events {
		if strings.HasPrefix(ev.Date, prefix) {
			grid[ev.Date] = append(grid[ev.Date], ev)
		}
	}
	return grid
}

// Agenda filters to the inclusive window [today, today+30d], preserving the
// date-then-id order Collect already established.
func Agenda(events []UnifiedEvent, asOf time.Time) []UnifiedEvent {
	today := helper.DateOnly(asOf)
	from := helper.FormatLocalDate(today)
	to := helper.FormatLocalDate(today.AddDate(0, 0, agendaWindowDays))

	agenda := make([]UnifiedEvent, 0)
	for _, ev := range events {
		if ev.Date >= from && ev.Date <= to {
			agenda = append(agenda, ev)
		}
	}
	return agenda
}
