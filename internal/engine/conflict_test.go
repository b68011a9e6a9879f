package engine

import (
	"testing"

	"github.com/shiftwise-dev/rota-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestHasConflict(t *testing.T) {
	catalog := map[int64]*domain.Shift{
		1: {ID: 1, Name: "Morning", StartTime: "10:00", EndTime: "12:00", DurationHours: 2},
	}
	existing := []*domain.ShiftAssignment{
		{ID: 10, ShiftID: 1, EmployeeID: 1, Date: "2026-01-05", StartTime: "10:00", EndTime: "12:00", Status: domain.AssignmentConfirmed},
	}

	t.Run("overlapping candidate conflicts", func(t *testing.T) {
		assert.True(t, HasConflict(existing, 1, dayAt(t, "2026-01-05", "11:00"), dayAt(t, "2026-01-05", "13:00"), catalog))
	})

	t.Run("back-to-back does not conflict", func(t *testing.T) {
		assert.False(t, HasConflict(existing, 1, dayAt(t, "2026-01-05", "12:00"), dayAt(t, "2026-01-05", "14:00"), catalog))
	})

	t.Run("other employee is free", func(t *testing.T) {
		assert.False(t, HasConflict(existing, 2, dayAt(t, "2026-01-05", "11:00"), dayAt(t, "2026-01-05", "13:00"), catalog))
	})

	t.Run("other date is free", func(t *testing.T) {
		assert.False(t, HasConflict(existing, 1, dayAt(t, "2026-01-06", "11:00"), dayAt(t, "2026-01-06", "13:00"), catalog))
	})

	t.Run("cancelled assignment never blocks", func(t *testing.T) {
		cancelled := []*domain.ShiftAssignment{
			{ID: 11, ShiftID: 1, EmployeeID: 1, Date: "2026-01-05", StartTime: "10:00", EndTime: "12:00", Status: domain.AssignmentCancelled},
		}
		assert.False(t, HasConflict(cancelled, 1, dayAt(t, "2026-01-05", "11:00"), dayAt(t, "2026-01-05", "13:00"), catalog))
	})

	t.Run("dangling shift reference is skipped", func(t *testing.T) {
		dangling := []*domain.ShiftAssignment{
			{ID: 12, ShiftID: 99, EmployeeID: 1, Date: "2026-01-05", StartTime: "10:00", EndTime: "12:00", Status: domain.AssignmentConfirmed},
		}
		assert.False(t, HasConflict(dangling, 1, dayAt(t, "2026-01-05", "11:00"), dayAt(t, "2026-01-05", "13:00"), catalog))
	})

	t.Run("record times win over catalog times", func(t *testing.T) {
		// The tail of an overnight pair carries its own day-scoped times.
		tail := []*domain.ShiftAssignment{
			{ID: 13, ShiftID: 1, EmployeeID: 1, Date: "2026-01-06", StartTime: "00:00", EndTime: "06:00", IsOvernight: true, Status: domain.AssignmentConfirmed},
		}
		assert.True(t, HasConflict(tail, 1, dayAt(t, "2026-01-06", "05:00"), dayAt(t, "2026-01-06", "07:00"), catalog))
		assert.False(t, HasConflict(tail, 1, dayAt(t, "2026-01-06", "10:00"), dayAt(t, "2026-01-06", "12:00"), catalog))
	})

	t.Run("unparsable assignment date is skipped", func(t *testing.T) {
		broken := []*domain.ShiftAssignment{
			{ID: 14, ShiftID: 1, EmployeeID: 1, Date: "not-a-date", StartTime: "10:00", EndTime: "12:00", Status: domain.AssignmentConfirmed},
		}
		assert.False(t, HasConflict(broken, 1, dayAt(t, "2026-01-05", "11:00"), dayAt(t, "2026-01-05", "13:00"), catalog))
	})
}
