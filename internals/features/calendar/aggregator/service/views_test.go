package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByDate(t *testing.T) {
	events := []UnifiedEvent{
		{ID: "a", Date: "2025-06-12"},
		{ID: "b", Date: "2025-06-12"},
		{ID: "c", Date: "2025-06-14"},
	}
	grid := GroupByDate(events)
	require.Len(t, grid, 2)
	assert.Len(t, grid["2025-06-12"], 2)
	assert.Len(t, grid["2025-06-14"], 1)
}

func TestMonthGrid(t *testing.T) {
	events := []UnifiedEvent{
		{ID: "may", Date: "2025-05-31"},
		{ID: "first", Date: "2025-06-01"},
		{ID: "mid", Date: "2025-06-15"},
		{ID: "last", Date: "2025-06-30"},
		{ID: "july", Date: "2025-07-01"},
	}
	grid := MonthGrid(events, 2025, time.June)
	require.Len(t, grid, 3)
	assert.Contains(t, grid, "2025-06-01")
	assert.Contains(t, grid, "2025-06-15")
	assert.Contains(t, grid, "2025-06-30")
	assert.NotContains(t, grid, "2025-05-31")
	assert.NotContains(t, grid, "2025-07-01")
}

func TestAgenda(t *testing.T) {
	t.Run("keeps the inclusive 30 day window", func(t *testing.T) {
		events := []UnifiedEvent{
			{ID: "past", Date: "2025-06-10"},
			{ID: "today", Date: "2025-06-11"},
			{ID: "edge", Date: "2025-07-11"}, // asOf + 30 exactly
			{ID: "beyond", Date: "2025-07-12"},
		}
		agenda := Agenda(events, asOf)
		require.Len(t, agenda, 2)
		assert.Equal(t, "today", agenda[0].ID)
		assert.Equal(t, "edge", agenda[1].ID)
	})

	t.Run("preserves ascending order", func(t *testing.T) {
		events := []UnifiedEvent{
			{ID: "a", Date: "2025-06-12"},
			{ID: "b", Date: "2025-06-20"},
			{ID: "c", Date: "2025-07-05"},
		}
		agenda := Agenda(events, asOf)
		require.Len(t, agenda, 3)
		for i := 1; i < len(agenda); i++ {
			assert.LessOrEqual(t, agenda[i-1].Date, agenda[i].Date)
		}
	})

	t.Run("empty input gives empty non-nil slice", func(t *testing.T) {
		agenda := Agenda(nil, asOf)
		assert.NotNil(t, agenda)
		assert.Empty(t, agenda)
	})
}
