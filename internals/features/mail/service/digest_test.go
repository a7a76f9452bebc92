package service

import (
	"strings"
	"testing"
	"time"

	calsvc "buildops_backend/internals/features/calendar/aggregator/service"

	"github.com/stretchr/testify/assert"
)

var asOf = time.Date(2025, time.June, 11, 6, 0, 0, 0, time.Local)

func TestDigestSubject(t *testing.T) {
	assert.Equal(t, "Daily job digest 2025-06-11: 3 item(s) need attention", DigestSubject(asOf, 3))
	assert.Equal(t, "Daily job digest 2025-06-11", DigestSubject(asOf, 0))
}

func TestBuildDigestBody(t *testing.T) {
	res := calsvc.Result{
		Events: []calsvc.UnifiedEvent{
			{ID: "order-1", Date: "2025-06-09", Title: "Order: Quartz slab", JobName: "Smith Kitchen", Priority: calsvc.PriorityHigh},
			{ID: "sub-1-2025-06-13", Date: "2025-06-13", Title: "Ace Plumbing on site", JobName: "Oak Bath", Priority: calsvc.PriorityMedium},
			{ID: "task-1", Date: "2025-06-10", Title: "Completed: Upper cabinets", Priority: calsvc.PriorityLow},
		},
		FailedSources: []string{"calendar_entries"},
	}

	body := BuildDigestBody(asOf, res)

	assert.Contains(t, body, "Job calendar digest for 2025-06-11")
	assert.Contains(t, body, "NEEDS ATTENTION (1)")
	assert.Contains(t, body, "2025-06-09  Order: Quartz slab [Smith Kitchen]")
	assert.Contains(t, body, "THIS WEEK (1)")
	assert.Contains(t, body, "2025-06-13  Ace Plumbing on site [Oak Bath]")
	assert.Contains(t, body, "failed to load: calendar_entries")
	// low-priority noise stays out of the digest
	assert.NotContains(t, body, "Completed: Upper cabinets")

	// overdue section comes before the upcoming section
	assert.Less(t,
		strings.Index(body, "NEEDS ATTENTION"),
		strings.Index(body, "THIS WEEK"))
}

func TestBuildDigestBodyEmpty(t *testing.T) {
	body := BuildDigestBody(asOf, calsvc.Result{})
	assert.Contains(t, body, "nothing overdue")
	assert.Contains(t, body, "nothing due this week")
	assert.NotContains(t, body, "failed to load")
}

func TestCountHigh(t *testing.T) {
	events := []calsvc.UnifiedEvent{
		{Priority: calsvc.PriorityHigh},
		{Priority: calsvc.PriorityLow},
		{Priority: calsvc.PriorityHigh},
	}
	assert.Equal(t, 2, CountHigh(events))
	assert.Equal(t, 0, CountHigh(nil))
}
