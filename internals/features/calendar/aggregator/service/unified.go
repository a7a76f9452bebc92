package service

import (
	"time"

	helper "buildops_backend/internals/helpers"
)

// EventType is the closed set of unified calendar event kinds.
type EventType string

const (
	EventMaterialOrder    EventType = "material_order"
	EventMaterialDelivery EventType = "material_delivery"
	EventMaterialPull     EventType = "material_pull"
	EventMaterialPickup   EventType = "material_pickup"
	EventTaskCompleted    EventType = "task_completed"
	EventTaskDeadline     EventType = "task_deadline"
	EventSubcontractor    EventType = "subcontractor"
)

// Priority is derived at read time relative to asOf; it is never stored.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// UnifiedEvent is the single shape every calendar source is normalized into.
// Multi-day schedules are expanded into one event per day before this point,
// so Date is always exactly one calendar date.
type UnifiedEvent struct {
	ID          string    `json:"id"`
	Type        EventType `json:"type"`
	Date        string    `json:"date"` // YYYY-MM-DD, local calendar date
	JobID       string    `json:"job_id,omitempty"`
	JobName     string    `json:"job_name,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status,omitempty"`
	Priority    Priority  `json:"priority"`

	// Subcontractor events only
	ContractorName  string `json:"contractor_name,omitempty"`
	ContractorPhone string `json:"contractor_phone,omitempty"`
}

// upcomingWindowDays is the horizon for the "medium" band: anything due
// within the next 7 days (inclusive) needs attention soon.
const upcomingWindowDays = 7

// ClassifyPriority derives the urgency band for an event date relative to asOf.
//
//   - task_completed is never overdue: finished work stays low.
//   - a cancelled subcontractor booking stays low no matter how old.
//   - strictly before today      → high
//   - today .. today+7 inclusive → medium
//   - further out                → low
//
// Subcontractor schedules have one extra rule handled by the schedule builder:
// a still-"scheduled" booking whose start date has passed is high on every
// expanded day, because the work never started.
func ClassifyPriority(asOf time.Time, date string, typ EventType, status string) Priority {
	if typ == EventTaskCompleted {
		return PriorityLow
	}
	if typ == EventSubcontractor && status == "cancelled" {
		return PriorityLow
	}

	d, err := helper.ParseLocalDate(date)
	if err != nil {
		// builders drop malformed dates before classification
		return PriorityLow
	}

	today := helper.DateOnly(asOf)
	switch {
	case d.Before(today):
		return PriorityHigh
	case !d.After(today.AddDate(0, 0, upcomingWindowDays)):
		return PriorityMedium
	default:
		return PriorityLow
	}
}
