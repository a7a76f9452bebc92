package service

import (
	"fmt"
	"testing"
	"time"

	entryModel "buildops_backend/internals/features/calendar/entries/model"
	matModel "buildops_backend/internals/features/jobs/materials/model"
	schedModel "buildops_backend/internals/features/subcontractors/schedules/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := localDate(y, m, d)
	return &t
}

func TestBuildMaterialEvents(t *testing.T) {
	jobID := uuid.New()
	matID := uuid.New()

	base := MaterialRow{
		MaterialID:   matID,
		MaterialName: "Quartz slab",
		OrderByDate:  datePtr(2025, time.June, 12),
		DeliveryDate: datePtr(2025, time.June, 16),
		PullByDate:   datePtr(2025, time.June, 20),
		JobID:        jobID,
		JobName:      "Smith Kitchen",
	}

	t.Run("only the date matching the current status fires", func(t *testing.T) {
		cases := []struct {
			status   string
			wantType EventType
			wantDate string
		}{
			{matModel.MaterialStatusNotOrdered, EventMaterialOrder, "2025-06-12"},
			{matModel.MaterialStatusOrdered, EventMaterialDelivery, "2025-06-16"},
			{matModel.MaterialStatusAtShop, EventMaterialPull, "2025-06-20"},
		}
		for _, tc := range cases {
			row := base
			row.MaterialStatus = tc.status
			events := BuildMaterialEvents(asOf, []MaterialRow{row})
			require.Len(t, events, 1, "status %s", tc.status)
			assert.Equal(t, tc.wantType, events[0].Type)
			assert.Equal(t, tc.wantDate, events[0].Date)
			assert.Equal(t, tc.status, events[0].Status)
			assert.Equal(t, "Smith Kitchen", events[0].JobName)
		}
	})

	t.Run("terminal statuses produce nothing", func(t *testing.T) {
		for _, status := range []string{matModel.MaterialStatusPulled, matModel.MaterialStatusInstalled} {
			row := base
			row.MaterialStatus = status
			assert.Empty(t, BuildMaterialEvents(asOf, []MaterialRow{row}))
		}
	})

	t.Run("stale deadline goes quiet once the status advances", func(t *testing.T) {
		// Order-by long past, but the material is already ordered: the old
		// deadline must not surface as overdue.
		row := base
		row.MaterialStatus = matModel.MaterialStatusOrdered
		row.OrderByDate = datePtr(2025, time.May, 1)
		events := BuildMaterialEvents(asOf, []MaterialRow{row})
		require.Len(t, events, 1)
		assert.Equal(t, EventMaterialDelivery, events[0].Type)
	})

	t.Run("nil dates are skipped", func(t *testing.T) {
		row := base
		row.MaterialStatus = matModel.MaterialStatusNotOrdered
		row.OrderByDate = nil
		assert.Empty(t, BuildMaterialEvents(asOf, []MaterialRow{row}))
	})

	t.Run("id and title carry the gate prefix", func(t *testing.T) {
		row := base
		row.MaterialStatus = matModel.MaterialStatusNotOrdered
		events := BuildMaterialEvents(asOf, []MaterialRow{row})
		require.Len(t, events, 1)
		assert.Equal(t, fmt.Sprintf("order-%s", matID), events[0].ID)
		assert.Equal(t, "Order: Quartz slab", events[0].Title)
	})

	t.Run("past deadline in the matching status is high", func(t *testing.T) {
		row := base
		row.MaterialStatus = matModel.MaterialStatusNotOrdered
		row.OrderByDate = datePtr(2025, time.June, 9)
		events := BuildMaterialEvents(asOf, []MaterialRow{row})
		require.Len(t, events, 1)
		assert.Equal(t, PriorityHigh, events[0].Priority)
	})
}

func TestBuildTaskEvents(t *testing.T) {
	row := TaskRow{
		TaskID:        uuid.New(),
		TaskComponent: "Upper cabinets",
		TaskNotes:     "north wall done",
		CompletedDate: localDate(2025, time.June, 10),
		JobID:         uuid.New(),
		JobName:       "Smith Kitchen",
	}
	events := BuildTaskEvents(asOf, []TaskRow{row})
	require.Len(t, events, 1)
	assert.Equal(t, EventTaskCompleted, events[0].Type)
	assert.Equal(t, "2025-06-10", events[0].Date)
	assert.Equal(t, "Completed: Upper cabinets", events[0].Title)
	// yesterday, but finished work is never overdue
	assert.Equal(t, PriorityLow, events[0].Priority)
}

func TestBuildScheduleEvents(t *testing.T) {
	scheduleID := uuid.New()
	base := ScheduleRow{
		ScheduleID:      scheduleID,
		StartDate:       localDate(2025, time.June, 16),
		EndDate:         datePtr(2025, time.June, 18),
		WorkDescription: "rough-in plumbing",
		Status:          schedModel.ScheduleStatusConfirmed,
		ContractorName:  "Ace Plumbing",
		ContractorPhone: "555-0101",
		JobID:           uuid.New(),
		JobName:         "Smith Kitchen",
	}

	t.Run("three day range expands to three events", func(t *testing.T) {
		events := BuildScheduleEvents(asOf, []ScheduleRow{base})
		require.Len(t, events, 3)
		assert.Equal(t, "2025-06-16", events[0].Date)
		assert.Equal(t, "2025-06-17", events[1].Date)
		assert.Equal(t, "2025-06-18", events[2].Date)

		seen := map[string]bool{}
		for _, ev := range events {
			assert.False(t, seen[ev.ID], "duplicate id %s", ev.ID)
			seen[ev.ID] = true
			assert.Equal(t, fmt.Sprintf("sub-%s-%s", scheduleID, ev.Date), ev.ID)
			assert.Equal(t, EventSubcontractor, ev.Type)
			assert.Equal(t, "Ace Plumbing on site", ev.Title)
			assert.Equal(t, "Ace Plumbing", ev.ContractorName)
			assert.Equal(t, "555-0101", ev.ContractorPhone)
		}
	})

	t.Run("nil end date is a single day booking", func(t *testing.T) {
		row := base
		row.EndDate = nil
		events := BuildScheduleEvents(asOf, []ScheduleRow{row})
		require.Len(t, events, 1)
		assert.Equal(t, "2025-06-16", events[0].Date)
	})

	t.Run("scheduled booking with a passed start is high on every day", func(t *testing.T) {
		row := base
		row.Status = schedModel.ScheduleStatusScheduled
		row.StartDate = localDate(2025, time.June, 9)
		row.EndDate = datePtr(2025, time.June, 13)
		events := BuildScheduleEvents(asOf, []ScheduleRow{row})
		require.Len(t, events, 5)
		for _, ev := range events {
			assert.Equal(t, PriorityHigh, ev.Priority, "date %s", ev.Date)
		}
	})

	t.Run("confirmed booking only the past days are high", func(t *testing.T) {
		row := base
		row.StartDate = localDate(2025, time.June, 10)
		row.EndDate = datePtr(2025, time.June, 12)
		events := BuildScheduleEvents(asOf, []ScheduleRow{row})
		require.Len(t, events, 3)
		assert.Equal(t, PriorityHigh, events[0].Priority)   // 06-10
		assert.Equal(t, PriorityMedium, events[1].Priority) // 06-11
		assert.Equal(t, PriorityMedium, events[2].Priority) // 06-12
	})

	t.Run("cancelled booking is low everywhere", func(t *testing.T) {
		row := base
		row.Status = schedModel.ScheduleStatusCancelled
		row.StartDate = localDate(2025, time.June, 2)
		row.EndDate = datePtr(2025, time.June, 4)
		events := BuildScheduleEvents(asOf, []ScheduleRow{row})
		require.Len(t, events, 3)
		for _, ev := range events {
			assert.Equal(t, PriorityLow, ev.Priority)
		}
	})

	t.Run("end before start is skipped", func(t *testing.T) {
		row := base
		row.EndDate = datePtr(2025, time.June, 10)
		assert.Empty(t, BuildScheduleEvents(asOf, []ScheduleRow{row}))
	})

	t.Run("runaway range is truncated", func(t *testing.T) {
		row := base
		row.EndDate = datePtr(2030, time.June, 16)
		events := BuildScheduleEvents(asOf, []ScheduleRow{row})
		assert.Len(t, events, maxScheduleDays)
	})
}

func TestBuildUserEventEvents(t *testing.T) {
	jobID := uuid.New()

	t.Run("open event classifies by date", func(t *testing.T) {
		row := UserEventRow{
			EventID:   uuid.New(),
			Title:     "Final walkthrough",
			EventType: "task_deadline",
			EventDate: localDate(2025, time.June, 13),
			JobID:     &jobID,
			JobName:   "Smith Kitchen",
		}
		events := BuildUserEventEvents(asOf, []UserEventRow{row})
		require.Len(t, events, 1)
		assert.Equal(t, EventTaskDeadline, events[0].Type)
		assert.Equal(t, PriorityMedium, events[0].Priority)
		assert.Equal(t, jobID.String(), events[0].JobID)
	})

	t.Run("completed event stays low even when overdue", func(t *testing.T) {
		done := time.Date(2025, time.June, 9, 16, 0, 0, 0, time.Local)
		row := UserEventRow{
			EventID:     uuid.New(),
			Title:       "Order hinges",
			EventType:   "material_order",
			EventDate:   localDate(2025, time.June, 8),
			CompletedAt: &done,
		}
		events := BuildUserEventEvents(asOf, []UserEventRow{row})
		require.Len(t, events, 1)
		assert.Equal(t, PriorityLow, events[0].Priority)
		assert.Equal(t, "completed", events[0].Status)
	})

	t.Run("unknown type falls back to task_deadline", func(t *testing.T) {
		row := UserEventRow{
			EventID:   uuid.New(),
			Title:     "Mystery",
			EventType: "birthday_party",
			EventDate: localDate(2025, time.July, 1),
		}
		events := BuildUserEventEvents(asOf, []UserEventRow{row})
		require.Len(t, events, 1)
		assert.Equal(t, EventTaskDeadline, events[0].Type)
	})

	t.Run("no job leaves job fields empty", func(t *testing.T) {
		row := UserEventRow{
			EventID:   uuid.New(),
			Title:     "Truck inspection",
			EventType: "task_deadline",
			EventDate: localDate(2025, time.July, 1),
		}
		events := BuildUserEventEvents(asOf, []UserEventRow{row})
		require.Len(t, events, 1)
		assert.Empty(t, events[0].JobID)
	})
}

func TestBuildEntryEvents(t *testing.T) {
	t.Run("entry types map onto material categories", func(t *testing.T) {
		cases := []struct {
			entryType string
			want      EventType
		}{
			{entryModel.EntryTypePickup, EventMaterialPickup},
			{entryModel.EntryTypeDelivery, EventMaterialDelivery},
			{entryModel.EntryTypeOrderReminder, EventMaterialOrder},
		}
		for _, tc := range cases {
			row := EntryRow{
				EntryID:   uuid.New(),
				Title:     "Lumber run",
				EntryType: tc.entryType,
				EntryDate: localDate(2025, time.June, 12),
			}
			events := BuildEntryEvents(asOf, []EntryRow{row})
			require.Len(t, events, 1, "type %s", tc.entryType)
			assert.Equal(t, tc.want, events[0].Type)
		}
	})

	t.Run("id carries the entry prefix", func(t *testing.T) {
		id := uuid.New()
		row := EntryRow{
			EntryID:   id,
			Title:     "Pick up tile",
			EntryType: entryModel.EntryTypePickup,
			EntryDate: localDate(2025, time.June, 12),
		}
		events := BuildEntryEvents(asOf, []EntryRow{row})
		require.Len(t, events, 1)
		assert.Equal(t, fmt.Sprintf("entry-%s", id), events[0].ID)
	})
}

func TestBuilderIDsNeverCollideAcrossSources(t *testing.T) {
	matID := uuid.New()
	taskID := uuid.New()
	schedID := uuid.New()
	eventID := uuid.New()
	entryID := uuid.New()
	jobID := uuid.New()

	all := []UnifiedEvent{}
	all = append(all, BuildMaterialEvents(asOf, []MaterialRow{{
		MaterialID: matID, MaterialName: "Slab", MaterialStatus: matModel.MaterialStatusNotOrdered,
		OrderByDate: datePtr(2025, time.June, 12), JobID: jobID, JobName: "J",
	}})...)
	all = append(all, BuildTaskEvents(asOf, []TaskRow{{
		TaskID: taskID, TaskComponent: "Trim", CompletedDate: localDate(2025, time.June, 10), JobID: jobID, JobName: "J",
	}})...)
	all = append(all, BuildScheduleEvents(asOf, []ScheduleRow{{
		ScheduleID: schedID, StartDate: localDate(2025, time.June, 12), EndDate: datePtr(2025, time.June, 13),
		Status: schedModel.ScheduleStatusConfirmed, ContractorName: "Ace", JobID: jobID, JobName: "J",
	}})...)
	all = append(all, BuildUserEventEvents(asOf, []UserEventRow{{
		EventID: eventID, Title: "Walkthrough", EventType: "task_deadline", EventDate: localDate(2025, time.June, 12),
	}})...)
	all = append(all, BuildEntryEvents(asOf, []EntryRow{{
		EntryID: entryID, Title: "Pickup", EntryType: entryModel.EntryTypePickup, EntryDate: localDate(2025, time.June, 12),
	}})...)

	seen := map[string]bool{}
	for _, ev := range all {
		assert.False(t, seen[ev.ID], "duplicate id %s", ev.ID)
		seen[ev.ID] = true
	}
	assert.Len(t, all, 6)
}
