package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticSource(name string, events ...UnifiedEvent) Source {
	return Source{
		Name: name,
		Fetch: func(ctx context.Context) ([]UnifiedEvent, error) {
			return events, nil
		},
	}
}

func failingSource(name string) Source {
	return Source{
		Name: name,
		Fetch: func(ctx context.Context) ([]UnifiedEvent, error) {
			return nil, errors.New("connection refused")
		},
	}
}

func TestCollect(t *testing.T) {
	ctx := context.Background()

	t.Run("merges and sorts by date then id", func(t *testing.T) {
		res := Collect(ctx, []Source{
			staticSource("a",
				UnifiedEvent{ID: "task-2", Date: "2025-06-14"},
				UnifiedEvent{ID: "task-1", Date: "2025-06-12"},
			),
			staticSource("b",
				UnifiedEvent{ID: "entry-9", Date: "2025-06-12"},
			),
		})
		require.Len(t, res.Events, 3)
		assert.Equal(t, "entry-9", res.Events[0].ID)
		assert.Equal(t, "task-1", res.Events[1].ID)
		assert.Equal(t, "task-2", res.Events[2].ID)
		assert.Empty(t, res.FailedSources)
	})

	t.Run("one failing source degrades, never aborts", func(t *testing.T) {
		res := Collect(ctx, []Source{
			staticSource("materials", UnifiedEvent{ID: "order-1", Date: "2025-06-12"}),
			failingSource("subcontractor_schedules"),
			staticSource("calendar_entries", UnifiedEvent{ID: "entry-1", Date: "2025-06-13"}),
		})
		require.Len(t, res.Events, 2)
		assert.Equal(t, []string{"subcontractor_schedules"}, res.FailedSources)
	})

	t.Run("all sources failing still yields an empty list", func(t *testing.T) {
		res := Collect(ctx, []Source{failingSource("a"), failingSource("b")})
		assert.NotNil(t, res.Events)
		assert.Empty(t, res.Events)
		assert.Len(t, res.FailedSources, 2)
	})

	t.Run("no sources yields an empty non-nil list", func(t *testing.T) {
		res := Collect(ctx, nil)
		assert.NotNil(t, res.Events)
		assert.Empty(t, res.Events)
	})

	t.Run("same inputs give the same output", func(t *testing.T) {
		sources := []Source{
			staticSource("a",
				UnifiedEvent{ID: "sub-x-2025-06-12", Date: "2025-06-12"},
				UnifiedEvent{ID: "order-1", Date: "2025-06-10"},
			),
			staticSource("b", UnifiedEvent{ID: "task-5", Date: "2025-06-10"}),
		}
		first := Collect(ctx, sources)
		second := Collect(ctx, sources)
		assert.Equal(t, first, second)
	})
}
