package service

import (
	"fmt"
	"log"
	"time"

	entryModel "buildops_backend/internals/features/calendar/entries/model"
	matModel "buildops_backend/internals/features/jobs/materials/model"
	schedModel "buildops_backend/internals/features/subcontractors/schedules/model"
	helper "buildops_backend/internals/helpers"

	"github.com/google/uuid"
)

// Safety cap on schedule expansion; nobody books a sub for a year straight,
// so anything past this is bad data, not a booking.
const maxScheduleDays = 366

/* ===============================
   Scan rows (one per source)
=================================*/

type MaterialRow struct {
	MaterialID     uuid.UUID  `gorm:"column:material_id"`
	MaterialName   string     `gorm:"column:material_name"`
	MaterialStatus string     `gorm:"column:material_status"`
	OrderByDate    *time.Time `gorm:"column:order_by_date"`
	DeliveryDate   *time.Time `gorm:"column:delivery_date"`
	PullByDate     *time.Time `gorm:"column:pull_by_date"`
	JobID          uuid.UUID  `gorm:"column:job_id"`
	JobName        string     `gorm:"column:job_name"`
}

type TaskRow struct {
	TaskID        uuid.UUID `gorm:"column:task_id"`
	TaskComponent string    `gorm:"column:task_component"`
	TaskNotes     string    `gorm:"column:task_notes"`
	CompletedDate time.Time `gorm:"column:completed_date"`
	JobID         uuid.UUID `gorm:"column:job_id"`
	JobName       string    `gorm:"column:job_name"`
}

type ScheduleRow struct {
	ScheduleID      uuid.UUID  `gorm:"column:schedule_id"`
	StartDate       time.Time  `gorm:"column:start_date"`
	EndDate         *time.Time `gorm:"column:end_date"`
	WorkDescription string     `gorm:"column:work_description"`
	Status          string     `gorm:"column:status"`
	ContractorName  string     `gorm:"column:contractor_name"`
	ContractorPhone string     `gorm:"column:contractor_phone"`
	JobID           uuid.UUID  `gorm:"column:job_id"`
	JobName         string     `gorm:"column:job_name"`
}

type UserEventRow struct {
	EventID     uuid.UUID  `gorm:"column:event_id"`
	Title       string     `gorm:"column:event_title"`
	Description string     `gorm:"column:event_description"`
	EventType   string     `gorm:"column:event_type"`
	EventDate   time.Time  `gorm:"column:event_date"`
	CompletedAt *time.Time `gorm:"column:event_completed_at"`
	JobID       *uuid.UUID `gorm:"column:job_id"`
	JobName     string     `gorm:"column:job_name"`
}

type EntryRow struct {
	EntryID     uuid.UUID  `gorm:"column:entry_id"`
	Title       string     `gorm:"column:entry_title"`
	Description string     `gorm:"column:entry_description"`
	EntryType   string     `gorm:"column:entry_type"`
	EntryDate   time.Time  `gorm:"column:entry_date"`
	JobID       *uuid.UUID `gorm:"column:job_id"`
	JobName     string     `gorm:"column:job_name"`
}

/* ===============================
   Pure builders (rows → events)
=================================*/

// BuildMaterialEvents applies the status gate to each of the three deadline
// dates independently. A date only produces an event while the material still
// sits in the status that deadline belongs to; once the status advances, the
// stale date goes quiet on the calendar.
func BuildMaterialEvents(asOf time.Time, rows []MaterialRow) []UnifiedEvent {
	events := make([]UnifiedEvent, 0, len(rows))
	for _, r := range rows {
		type gate struct {
			prefix     string
			typ        EventType
			wantStatus string
			date       *time.Time
			verb       string
		}
		gates := []gate{
			{"order", EventMaterialOrder, matModel.MaterialStatusNotOrdered, r.OrderByDate, "Order"},
			{"delivery", EventMaterialDelivery, matModel.MaterialStatusOrdered, r.DeliveryDate, "Delivery"},
			{"pull", EventMaterialPull, matModel.MaterialStatusAtShop, r.PullByDate, "Pull"},
		}
		for _, g := range gates {
			if g.date == nil || r.MaterialStatus != g.wantStatus {
				continue
			}
			if g.date.IsZero() {
				log.Printf("[CALENDAR] skipping material %s: zero %s date", r.MaterialID, g.prefix)
				continue
			}
			date := helper.FormatLocalDate(*g.date)
			events = append(events, UnifiedEvent{
				ID:       fmt.Sprintf("%s-%s", g.prefix, r.MaterialID),
				Type:     g.typ,
				Date:     date,
				JobID:    r.JobID.String(),
				JobName:  r.JobName,
				Title:    fmt.Sprintf("%s: %s", g.verb, r.MaterialName),
				Status:   r.MaterialStatus,
				Priority: ClassifyPriority(asOf, date, g.typ, r.MaterialStatus),
			})
		}
	}
	return events
}

// BuildTaskEvents: every completed task is one low-urgency event on its
// completion date.
func BuildTaskEvents(asOf time.Time, rows []TaskRow) []UnifiedEvent {
	events := make([]UnifiedEvent, 0, len(rows))
	for _, r := range rows {
		if r.CompletedDate.IsZero() {
			log.Printf("[CALENDAR] skipping completed task %s: zero date", r.TaskID)
			continue
		}
		date := helper.FormatLocalDate(r.CompletedDate)
		events = append(events, UnifiedEvent{
			ID:          fmt.Sprintf("task-%s", r.TaskID),
			Type:        EventTaskCompleted,
			Date:        date,
			JobID:       r.JobID.String(),
			JobName:     r.JobName,
			Title:       fmt.Sprintf("Completed: %s", r.TaskComponent),
			Description: r.TaskNotes,
			Priority:    ClassifyPriority(asOf, date, EventTaskCompleted, ""),
		})
	}
	return events
}

// BuildScheduleEvents expands each booking into one event per calendar day of
// the inclusive start→end range. The month grid is keyed by single dates, so
// the sub shows up on every day they're on site without the grid knowing
// anything about ranges.
func BuildScheduleEvents(asOf time.Time, rows []ScheduleRow) []UnifiedEvent {
	today := helper.DateOnly(asOf)
	events := make([]UnifiedEvent, 0, len(rows))
	for _, r := range rows {
		if r.StartDate.IsZero() {
			log.Printf("[CALENDAR] skipping schedule %s: zero start date", r.ScheduleID)
			continue
		}
		start := helper.DateOnly(r.StartDate)
		end := start
		if r.EndDate != nil && !r.EndDate.IsZero() {
			end = helper.DateOnly(*r.EndDate)
		}
		if end.Before(start) {
			log.Printf("[CALENDAR] skipping schedule %s: end before start", r.ScheduleID)
			continue
		}

		// A booking still marked "scheduled" whose start already passed means
		// the work never began; every expanded day inherits high urgency.
		neverStarted := r.Status == schedModel.ScheduleStatusScheduled && start.Before(today)

		days := 0
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if days >= maxScheduleDays {
				log.Printf("[CALENDAR] schedule %s truncated at %d days", r.ScheduleID, maxScheduleDays)
				break
			}
			days++
			date := helper.FormatLocalDate(d)
			prio := ClassifyPriority(asOf, date, EventSubcontractor, r.Status)
			if neverStarted {
				prio = PriorityHigh
			}
			events = append(events, UnifiedEvent{
				ID:              fmt.Sprintf("sub-%s-%s", r.ScheduleID, date),
				Type:            EventSubcontractor,
				Date:            date,
				JobID:           r.JobID.String(),
				JobName:         r.JobName,
				Title:           fmt.Sprintf("%s on site", r.ContractorName),
				Description:     r.WorkDescription,
				Status:          r.Status,
				Priority:        prio,
				ContractorName:  r.ContractorName,
				ContractorPhone: r.ContractorPhone,
			})
		}
	}
	return events
}

// mapUserEventType keeps user-chosen types inside the closed enum;
// anything unrecognized lands on task_deadline.
func mapUserEventType(s string) EventType {
	switch EventType(s) {
	case EventMaterialOrder, EventMaterialDelivery, EventMaterialPull,
		EventMaterialPickup, EventTaskCompleted, EventTaskDeadline, EventSubcontractor:
		return EventType(s)
	}
	return EventTaskDeadline
}

func BuildUserEventEvents(asOf time.Time, rows []UserEventRow) []UnifiedEvent {
	events := make([]UnifiedEvent, 0, len(rows))
	for _, r := range rows {
		if r.EventDate.IsZero() {
			log.Printf("[CALENDAR] skipping user event %s: zero date", r.EventID)
			continue
		}
		date := helper.FormatLocalDate(r.EventDate)
		typ := mapUserEventType(r.EventType)

		ev := UnifiedEvent{
			ID:          fmt.Sprintf("calendar-%s", r.EventID),
			Type:        typ,
			Date:        date,
			JobName:     r.JobName,
			Title:       r.Title,
			Description: r.Description,
			Priority:    ClassifyPriority(asOf, date, typ, ""),
		}
		if r.JobID != nil {
			ev.JobID = r.JobID.String()
		}
		// A checked-off user event behaves like finished work: never overdue.
		if r.CompletedAt != nil {
			ev.Status = "completed"
			ev.Priority = PriorityLow
		}
		events = append(events, ev)
	}
	return events
}

// mapEntryType folds the ad-hoc entry types onto the material categories.
func mapEntryType(s string) EventType {
	switch s {
	case entryModel.EntryTypePickup:
		return EventMaterialPickup
	case entryModel.EntryTypeDelivery:
		return EventMaterialDelivery
	case entryModel.EntryTypeOrderReminder:
		return EventMaterialOrder
	}
	return EventTaskDeadline
}

func BuildEntryEvents(asOf time.Time, rows []EntryRow) []UnifiedEvent {
	events := make([]UnifiedEvent, 0, len(rows))
	for _, r := range rows {
		if r.EntryDate.IsZero() {
			log.Printf("[CALENDAR] skipping calendar entry %s: zero date", r.EntryID)
			continue
		}
		date := helper.FormatLocalDate(r.EntryDate)
		typ := mapEntryType(r.EntryType)
		ev := UnifiedEvent{
			ID:          fmt.Sprintf("entry-%s", r.EntryID),
			Type:        typ,
			Date:        date,
			JobName:     r.JobName,
			Title:       r.Title,
			Description: r.Description,
			Priority:    ClassifyPriority(asOf, date, typ, ""),
		}
		if r.JobID != nil {
			ev.JobID = r.JobID.String()
		}
		events = append(events, ev)
	}
	return events
}
