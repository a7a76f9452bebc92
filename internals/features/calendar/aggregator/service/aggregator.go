package service

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	entryModel "buildops_backend/internals/features/calendar/entries/model"
	jobModel "buildops_backend/internals/features/jobs/jobs/model"

	"gorm.io/gorm"
)

// Source is one strategy feeding the unified calendar: a name for failure
// reporting and a fetch that returns already-normalized events.
type Source struct {
	Name  string
	Fetch func(ctx context.Context) ([]UnifiedEvent, error)
}

// Result is the aggregate the UI consumes. FailedSources lists any source
// that errored; its events are simply absent rather than failing the load.
type Result struct {
	Events        []UnifiedEvent `json:"events"`
	FailedSources []string       `json:"failed_sources,omitempty"`
}

// Collect runs every source concurrently and merges the successes. A failing
// source is logged and reported, never fatal: a flaky schedule query must not
// blank out material deadlines. The merged list is sorted by date then id so
// two runs over the same data come back in the same order.
func Collect(ctx context.Context, sources []Source) Result {
	perSource := make([][]UnifiedEvent, len(sources))
	errs := make([]error, len(sources))

	var wg sync.WaitGroup
	for i := range sources {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			perSource[i], errs[i] = sources[i].Fetch(ctx)
		}(i)
	}
	wg.Wait()

	res := Result{Events: make([]UnifiedEvent, 0)}
	for i := range sources {
		if errs[i] != nil {
			log.Printf("[CALENDAR] source %q failed: %v", sources[i].Name, errs[i])
			res.FailedSources = append(res.FailedSources, sources[i].Name)
			continue
		}
		res.Events = append(res.Events, perSource[i]...)
	}

	sort.Slice(res.Events, func(a, b int) bool {
		if res.Events[a].Date != res.Events[b].Date {
			return res.Events[a].Date < res.Events[b].Date
		}
		return res.Events[a].ID < res.Events[b].ID
	})
	return res
}

// Aggregator owns the five DB-backed sources.
type Aggregator struct {
	DB *gorm.DB
}

func NewAggregator(db *gorm.DB) *Aggregator {
	return &Aggregator{DB: db}
}

// Aggregate rebuilds the full unified event list. It is a pure read: every
// call re-derives everything (including priorities) from the rows as they
// are right now, relative to asOf.
func (a *Aggregator) Aggregate(ctx context.Context, asOf time.Time) Result {
	return Collect(ctx, a.Sources(asOf))
}

// Sources builds the five read strategies. Materials are scoped to active,
// non-internal jobs; tasks and schedules span all jobs; entries are
// pre-filtered to the three types the calendar understands.
func (a *Aggregator) Sources(asOf time.Time) []Source {
	return []Source{
		{
			Name: "materials",
			Fetch: func(ctx context.Context) ([]UnifiedEvent, error) {
				var rows []MaterialRow
				err := a.DB.WithContext(ctx).Table("materials").
					Select(`materials.material_id,
						materials.material_name,
						materials.material_status,
						materials.material_order_by_date AS order_by_date,
						materials.material_delivery_date AS delivery_date,
						materials.material_pull_by_date  AS pull_by_date,
						jobs.job_id,
						jobs.job_name`).
					Joins("JOIN jobs ON jobs.job_id = materials.material_job_id").
					Where("materials.material_deleted_at IS NULL").
					Where("jobs.job_deleted_at IS NULL").
					Where("jobs.job_status = ? AND jobs.job_is_internal = FALSE", jobModel.JobStatusActive).
					Where(`materials.material_order_by_date IS NOT NULL
						OR materials.material_delivery_date IS NOT NULL
						OR materials.material_pull_by_date IS NOT NULL`).
					Scan(&rows).Error
				if err != nil {
					return nil, err
				}
				return BuildMaterialEvents(asOf, rows), nil
			},
		},
		{
			Name: "completed_tasks",
			Fetch: func(ctx context.Context) ([]UnifiedEvent, error) {
				var rows []TaskRow
				err := a.DB.WithContext(ctx).Table("completed_tasks").
					Select(`completed_tasks.task_id,
						completed_tasks.task_component,
						completed_tasks.task_notes,
						completed_tasks.task_completed_date AS completed_date,
						jobs.job_id,
						jobs.job_name`).
					Joins("JOIN jobs ON jobs.job_id = completed_tasks.task_job_id").
					Where("completed_tasks.task_deleted_at IS NULL").
					Where("jobs.job_deleted_at IS NULL").
					Scan(&rows).Error
				if err != nil {
					return nil, err
				}
				return BuildTaskEvents(asOf, rows), nil
			},
		},
		{
			Name: "subcontractor_schedules",
			Fetch: func(ctx context.Context) ([]UnifiedEvent, error) {
				var rows []ScheduleRow
				err := a.DB.WithContext(ctx).Table("subcontractor_schedules").
					Select(`subcontractor_schedules.schedule_id,
						subcontractor_schedules.schedule_start_date AS start_date,
						subcontractor_schedules.schedule_end_date   AS end_date,
						subcontractor_schedules.schedule_work_description AS work_description,
						subcontractor_schedules.schedule_status AS status,
						subcontractors.subcontractor_name  AS contractor_name,
						subcontractors.subcontractor_phone AS contractor_phone,
						jobs.job_id,
						jobs.job_name`).
					Joins("JOIN subcontractors ON subcontractors.subcontractor_id = subcontractor_schedules.schedule_subcontractor_id").
					Joins("JOIN jobs ON jobs.job_id = subcontractor_schedules.schedule_job_id").
					Where("subcontractor_schedules.schedule_deleted_at IS NULL").
					Where("subcontractors.subcontractor_deleted_at IS NULL").
					Where("jobs.job_deleted_at IS NULL").
					Scan(&rows).Error
				if err != nil {
					return nil, err
				}
				return BuildScheduleEvents(asOf, rows), nil
			},
		},
		{
			Name: "calendar_events",
			Fetch: func(ctx context.Context) ([]UnifiedEvent, error) {
				var rows []UserEventRow
				err := a.DB.WithContext(ctx).Table("calendar_events").
					Select(`calendar_events.event_id,
						calendar_events.event_title,
						calendar_events.event_description,
						calendar_events.event_type,
						calendar_events.event_date,
						calendar_events.event_completed_at,
						jobs.job_id,
						jobs.job_name`).
					Joins("LEFT JOIN jobs ON jobs.job_id = calendar_events.event_job_id AND jobs.job_deleted_at IS NULL").
					Where("calendar_events.event_deleted_at IS NULL").
					Scan(&rows).Error
				if err != nil {
					return nil, err
				}
				return BuildUserEventEvents(asOf, rows), nil
			},
		},
		{
			Name: "calendar_entries",
			Fetch: func(ctx context.Context) ([]UnifiedEvent, error) {
				var rows []EntryRow
				err := a.DB.WithContext(ctx).Table("calendar_entries").
					Select(`calendar_entries.entry_id,
						calendar_entries.entry_title,
						calendar_entries.entry_description,
						calendar_entries.entry_type,
						calendar_entries.entry_date,
						jobs.job_id,
						jobs.job_name`).
					Joins("LEFT JOIN jobs ON jobs.job_id = calendar_entries.entry_job_id AND jobs.job_deleted_at IS NULL").
					Where("calendar_entries.entry_deleted_at IS NULL").
					Where("calendar_entries.entry_type IN ?", []string{
						entryModel.EntryTypePickup,
						entryModel.EntryTypeDelivery,
						entryModel.EntryTypeOrderReminder,
					}).
					Scan(&rows).Error
				if err != nil {
					return nil, err
				}
				return BuildEntryEvents(asOf, rows), nil
			},
		},
	}
}
