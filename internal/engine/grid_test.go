package engine

import (
	"testing"
	"time"

	"github.com/shiftwise-dev/rota-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	nightShift = &domain.Shift{ID: 7, Name: "Night", StartTime: "22:00", EndTime: "06:00", DurationHours: 8, IsOvernight: true}
	dayShift   = &domain.Shift{ID: 3, Name: "Day", StartTime: "09:00", EndTime: "17:00", DurationHours: 8}
)

func TestWeekGridAssign(t *testing.T) {
	t.Run("same-day shift takes one slot", func(t *testing.T) {
		grid := NewWeekGrid()
		require.NoError(t, grid.Assign(dayShift, time.Monday))

		slots := grid.Slots(time.Monday)
		require.Len(t, slots, 1)
		assert.Equal(t, GridSlot{ShiftID: 3, Start: "09:00", End: "17:00"}, slots[0])
		assert.Empty(t, grid.Slots(time.Tuesday))
	})

	t.Run("overnight shift splits into a linked pair", func(t *testing.T) {
		grid := NewWeekGrid()
		require.NoError(t, grid.Assign(nightShift, time.Monday))

		heads := grid.Slots(time.Monday)
		tails := grid.Slots(time.Tuesday)
		require.Len(t, heads, 1)
		require.Len(t, tails, 1)

		assert.Equal(t, "22:00", heads[0].Start)
		assert.Equal(t, "23:59", heads[0].End)
		assert.Equal(t, "00:00", tails[0].Start)
		assert.Equal(t, "06:00", tails[0].End)
		assert.NotEmpty(t, heads[0].PairKey)
		assert.Equal(t, heads[0].PairKey, tails[0].PairKey)
	})

	t.Run("saturday tail wraps to sunday", func(t *testing.T) {
		grid := NewWeekGrid()
		require.NoError(t, grid.Assign(nightShift, time.Saturday))

		require.Len(t, grid.Slots(time.Saturday), 1)
		require.Len(t, grid.Slots(time.Sunday), 1)
		assert.Equal(t, "00:00", grid.Slots(time.Sunday)[0].Start)
	})

	t.Run("nil shift is rejected", func(t *testing.T) {
		grid := NewWeekGrid()
		assert.Error(t, grid.Assign(nil, time.Monday))
	})
}

func TestWeekGridRemove(t *testing.T) {
	t.Run("removing the head removes the tail", func(t *testing.T) {
		grid := NewWeekGrid()
		require.NoError(t, grid.Assign(nightShift, time.Monday))

		require.NoError(t, grid.Remove(time.Monday, 0))
		assert.Empty(t, grid.Slots(time.Monday))
		assert.Empty(t, grid.Slots(time.Tuesday))
	})

	t.Run("removing the tail removes the head", func(t *testing.T) {
		grid := NewWeekGrid()
		require.NoError(t, grid.Assign(nightShift, time.Monday))

		require.NoError(t, grid.Remove(time.Tuesday, 0))
		assert.Empty(t, grid.Slots(time.Monday))
		assert.Empty(t, grid.Slots(time.Tuesday))
	})

	t.Run("same-day removal leaves neighbours alone", func(t *testing.T) {
		grid := NewWeekGrid()
		require.NoError(t, grid.Assign(dayShift, time.Monday))
		require.NoError(t, grid.Assign(nightShift, time.Monday))

		require.NoError(t, grid.Remove(time.Monday, 0))
		require.Len(t, grid.Slots(time.Monday), 1)
		assert.Equal(t, nightShift.ID, grid.Slots(time.Monday)[0].ShiftID)
		require.Len(t, grid.Slots(time.Tuesday), 1)
	})

	t.Run("sunday wrap removal", func(t *testing.T) {
		grid := NewWeekGrid()
		require.NoError(t, grid.Assign(nightShift, time.Saturday))

		require.NoError(t, grid.Remove(time.Sunday, 0))
		assert.Empty(t, grid.Slots(time.Saturday))
		assert.Empty(t, grid.Slots(time.Sunday))
	})

	t.Run("out of range index", func(t *testing.T) {
		grid := NewWeekGrid()
		assert.Error(t, grid.Remove(time.Monday, 0))
	})
}

func TestWeekGridDayHours(t *testing.T) {
	catalog := map[int64]*domain.Shift{
		nightShift.ID: nightShift,
		dayShift.ID:   dayShift,
	}

	grid := NewWeekGrid()
	require.NoError(t, grid.Assign(dayShift, time.Monday))
	require.NoError(t, grid.Assign(nightShift, time.Monday))

	// Monday carries the day shift's declared 8 hours plus the overnight
	// head's 24 - 22 = 2 hours; Tuesday carries the tail's 6 hours.
	assert.Equal(t, 10.0, grid.DayHours(time.Monday, catalog))
	assert.Equal(t, 6.0, grid.DayHours(time.Tuesday, catalog))
	assert.Equal(t, 0.0, grid.DayHours(time.Friday, catalog))
}
