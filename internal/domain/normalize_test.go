package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmployee(t *testing.T) {
	t.Run("fills window defaults", func(t *testing.T) {
		e := &Employee{
			Availability: Availability{
				time.Monday: {},
			},
		}
		require.NoError(t, NormalizeEmployee(e))
		assert.Equal(t, "00:00", e.Availability[time.Monday].Start)
		assert.Equal(t, "23:59", e.Availability[time.Monday].End)
	})

	t.Run("closed days stay untouched", func(t *testing.T) {
		e := &Employee{
			Availability: Availability{
				time.Tuesday: {IsClosed: true},
			},
		}
		require.NoError(t, NormalizeEmployee(e))
		assert.Empty(t, e.Availability[time.Tuesday].Start)
	})

	t.Run("rejects windows crossing midnight", func(t *testing.T) {
		e := &Employee{
			Availability: Availability{
				time.Monday: {Start: "22:00", End: "06:00"},
			},
		}
		assert.Error(t, NormalizeEmployee(e))
	})

	t.Run("rejects bad clock strings", func(t *testing.T) {
		e := &Employee{
			Availability: Availability{
				time.Monday: {Start: "9am", End: "17:00"},
			},
		}
		assert.Error(t, NormalizeEmployee(e))
	})
}

func TestNormalizeShift(t *testing.T) {
	t.Run("derives overnight flag", func(t *testing.T) {
		night := &Shift{StartTime: "22:00", EndTime: "06:00", DurationHours: 8}
		require.NoError(t, NormalizeShift(night))
		assert.True(t, night.IsOvernight)

		day := &Shift{StartTime: "09:00", EndTime: "17:00", DurationHours: 8}
		require.NoError(t, NormalizeShift(day))
		assert.False(t, day.IsOvernight)
	})

	t.Run("rejects negative duration", func(t *testing.T) {
		s := &Shift{StartTime: "09:00", EndTime: "17:00", DurationHours: -1}
		assert.Error(t, NormalizeShift(s))
	})
}

func TestNormalizeAssignment(t *testing.T) {
	shift := &Shift{ID: 7, StartTime: "22:00", EndTime: "06:00", IsOvernight: true}

	t.Run("stamps shift times and defaults status", func(t *testing.T) {
		a := &ShiftAssignment{Date: "2026-01-05", EmployeeID: 1}
		require.NoError(t, NormalizeAssignment(a, shift))
		assert.Equal(t, int64(7), a.ShiftID)
		assert.Equal(t, "22:00", a.StartTime)
		assert.True(t, a.IsOvernight)
		assert.Equal(t, AssignmentPending, a.Status)
	})

	t.Run("rejects bad dates", func(t *testing.T) {
		a := &ShiftAssignment{Date: "05/01/2026"}
		assert.Error(t, NormalizeAssignment(a, shift))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		a := &ShiftAssignment{Date: "2026-01-05", Status: "paused"}
		assert.Error(t, NormalizeAssignment(a, shift))
	})
}
