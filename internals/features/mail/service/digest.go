package service

import (
	"fmt"
	"strings"
	"time"

	calsvc "buildops_backend/internals/features/calendar/aggregator/service"
	helper "buildops_backend/internals/helpers"
)

// DigestSubject is the line the crew sees in their inbox.
func DigestSubject(asOf time.Time, highCount int) string {
	if highCount > 0 {
		return fmt.Sprintf("Daily job digest %s: %d item(s) need attention", helper.FormatLocalDate(asOf), highCount)
	}
	return fmt.Sprintf("Daily job digest %s", helper.FormatLocalDate(asOf))
}

// BuildDigestBody renders a plain-text digest: overdue items first, then the
// upcoming week, then any sources that failed to load. Pure; no clock, no DB.
func BuildDigestBody(asOf time.Time, res calsvc.Result) string {
	today := helper.FormatLocalDate(asOf)

	var overdue, upcoming []calsvc.UnifiedEvent
	for _, ev := range res.Events {
		switch {
		case ev.Priority == calsvc.PriorityHigh:
			overdue = append(overdue, ev)
		case ev.Priority == calsvc.PriorityMedium:
			upcoming = append(upcoming, ev)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Job calendar digest for %s\n\n", today)

	fmt.Fprintf(&b, "NEEDS ATTENTION (%d)\n", len(overdue))
	if len(overdue) == 0 {
		b.WriteString("  nothing overdue\n")
	}
	for _, ev := range overdue {
		writeDigestLine(&b, ev)
	}

	fmt.Fprintf(&b, "\nTHIS WEEK (%d)\n", len(upcoming))
	if len(upcoming) == 0 {
		b.WriteString("  nothing due this week\n")
	}
	for _, ev := range upcoming {
		writeDigestLine(&b, ev)
	}

	if len(res.FailedSources) > 0 {
		fmt.Fprintf(&b, "\nNote: some calendar sources failed to load: %s\n",
			strings.Join(res.FailedSources, ", "))
	}
	return b.String()
}

func writeDigestLine(b *strings.Builder, ev calsvc.UnifiedEvent) {
	line := fmt.Sprintf("  %s  %s", ev.Date, ev.Title)
	if ev.JobName != "" {
		line += fmt.Sprintf(" [%s]", ev.JobName)
	}
	b.WriteString(line + "\n")
}

// CountHigh is what the scheduler checks before deciding to send at all.
func CountHigh(events []calsvc.UnifiedEvent) int {
	n := 0
	for _, ev := range events {
		if ev.Priority == calsvc.PriorityHigh {
			n++
		}
	}
	return n
}
