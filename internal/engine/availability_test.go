package engine

import (
	"testing"
	"time"

	"github.com/shiftwise-dev/rota-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestIsAvailable(t *testing.T) {
	// 2026-01-05 is a Monday.
	employee := &domain.Employee{
		ID:   1,
		Name: "Dana",
		Availability: domain.Availability{
			time.Monday:  {Start: "09:00", End: "17:00"},
			time.Tuesday: {IsClosed: true},
		},
	}

	t.Run("inside the window", func(t *testing.T) {
		assert.True(t, IsAvailable(employee, dayAt(t, "2026-01-05", "10:00"), dayAt(t, "2026-01-05", "12:00")))
	})

	t.Run("outside the window", func(t *testing.T) {
		assert.False(t, IsAvailable(employee, dayAt(t, "2026-01-05", "18:00"), dayAt(t, "2026-01-05", "20:00")))
	})

	t.Run("partial overlap is enough", func(t *testing.T) {
		assert.True(t, IsAvailable(employee, dayAt(t, "2026-01-05", "08:00"), dayAt(t, "2026-01-05", "10:00")))
		assert.True(t, IsAvailable(employee, dayAt(t, "2026-01-05", "16:00"), dayAt(t, "2026-01-05", "19:00")))
	})

	t.Run("touching the window is not overlap", func(t *testing.T) {
		assert.False(t, IsAvailable(employee, dayAt(t, "2026-01-05", "17:00"), dayAt(t, "2026-01-05", "18:00")))
	})

	t.Run("closed day", func(t *testing.T) {
		assert.False(t, IsAvailable(employee, dayAt(t, "2026-01-06", "10:00"), dayAt(t, "2026-01-06", "12:00")))
	})

	t.Run("weekday with no entry", func(t *testing.T) {
		// 2026-01-07 is a Wednesday; the employee declared nothing for it.
		assert.False(t, IsAvailable(employee, dayAt(t, "2026-01-07", "10:00"), dayAt(t, "2026-01-07", "12:00")))
	})

	t.Run("no availability map means unrestricted", func(t *testing.T) {
		unrestricted := &domain.Employee{ID: 2, Name: "Robin"}
		assert.True(t, IsAvailable(unrestricted, dayAt(t, "2026-01-04", "03:00"), dayAt(t, "2026-01-04", "04:00")))
	})

	t.Run("missing start and end default to the whole day", func(t *testing.T) {
		allDay := &domain.Employee{
			ID:   3,
			Name: "Sam",
			Availability: domain.Availability{
				time.Monday: {},
			},
		}
		assert.True(t, IsAvailable(allDay, dayAt(t, "2026-01-05", "00:00"), dayAt(t, "2026-01-05", "01:00")))
		assert.True(t, IsAvailable(allDay, dayAt(t, "2026-01-05", "22:00"), dayAt(t, "2026-01-05", "23:30")))
	})
}
