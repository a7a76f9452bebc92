package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Fixed reference instant for the whole package: Wed 2025-06-11, mid-morning.
var asOf = time.Date(2025, time.June, 11, 10, 30, 0, 0, time.Local)

func TestClassifyPriority(t *testing.T) {
	cases := []struct {
		name   string
		date   string
		typ    EventType
		status string
		want   Priority
	}{
		{"yesterday is high", "2025-06-10", EventMaterialOrder, "not_ordered", PriorityHigh},
		{"long past is high", "2025-01-02", EventTaskDeadline, "", PriorityHigh},
		{"today is medium", "2025-06-11", EventMaterialDelivery, "ordered", PriorityMedium},
		{"window edge day 7 is medium", "2025-06-18", EventMaterialPull, "at_shop", PriorityMedium},
		{"day 8 is low", "2025-06-19", EventMaterialPull, "at_shop", PriorityLow},
		{"far future is low", "2025-09-01", EventTaskDeadline, "", PriorityLow},
		{"completed task yesterday stays low", "2025-06-10", EventTaskCompleted, "", PriorityLow},
		{"completed task long past stays low", "2024-12-01", EventTaskCompleted, "", PriorityLow},
		{"cancelled sub in the past stays low", "2025-06-01", EventSubcontractor, "cancelled", PriorityLow},
		{"confirmed sub in the past is high", "2025-06-01", EventSubcontractor, "confirmed", PriorityHigh},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyPriority(asOf, tc.date, tc.typ, tc.status))
		})
	}
}

func TestClassifyPriorityIgnoresTimeOfDay(t *testing.T) {
	// Late evening and early morning of the same day must classify alike.
	lateAsOf := time.Date(2025, time.June, 11, 23, 59, 0, 0, time.Local)
	earlyAsOf := time.Date(2025, time.June, 11, 0, 1, 0, 0, time.Local)
	assert.Equal(t, PriorityMedium, ClassifyPriority(lateAsOf, "2025-06-11", EventTaskDeadline, ""))
	assert.Equal(t, PriorityMedium, ClassifyPriority(earlyAsOf, "2025-06-11", EventTaskDeadline, ""))
	assert.Equal(t, PriorityMedium, ClassifyPriority(lateAsOf, "2025-06-18", EventTaskDeadline, ""))
	assert.Equal(t, PriorityLow, ClassifyPriority(earlyAsOf, "2025-06-19", EventTaskDeadline, ""))
}
