package engine

import (
	"testing"
	"time"

	"github.com/shiftwise-dev/rota-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestComputeEmployeeStats(t *testing.T) {
	employee := &domain.Employee{
		ID:   1,
		Name: "Dana",
		Availability: domain.Availability{
			time.Monday:    {Start: "09:00", End: "17:00"},
			time.Tuesday:   {Start: "09:00", End: "17:00"},
			time.Wednesday: {IsClosed: true},
			time.Thursday:  {Start: "09:00", End: "17:00"},
		},
	}
	catalog := map[int64]*domain.Shift{
		1: {ID: 1, DurationHours: 8},
	}
	assignments := []*domain.ShiftAssignment{
		{ShiftID: 1, EmployeeID: 1, Date: "2026-01-05", Status: domain.AssignmentCompleted},
		{ShiftID: 1, EmployeeID: 1, Date: "2026-01-07", Status: domain.AssignmentConfirmed},
		{ShiftID: 1, EmployeeID: 1, Date: "2026-01-09", Status: domain.AssignmentPending},
		{ShiftID: 99, EmployeeID: 1, Date: "2026-01-08", Status: domain.AssignmentPending},
		{ShiftID: 1, EmployeeID: 2, Date: "2026-01-05", Status: domain.AssignmentConfirmed},
		{ShiftID: 1, EmployeeID: 1, Date: "2026-02-01", Status: domain.AssignmentPending},
	}

	now := dayAt(t, "2026-01-07", "12:00")
	windowStart := dayAt(t, "2026-01-05", "00:00")
	windowEnd := dayAt(t, "2026-01-11", "00:00")

	stats := ComputeEmployeeStats(employee, assignments, catalog, windowStart, windowEnd, now)

	assert.Equal(t, 4, stats.TotalAssignments)
	assert.Equal(t, 1, stats.Completed)
	// Today's assignment is excluded from both buckets.
	assert.Equal(t, 2, stats.Upcoming)
	// The dangling shift 99 counts but contributes no hours.
	assert.Equal(t, 24.0, stats.TotalHours)
	assert.InDelta(t, 3.0/7*100, stats.AvailabilityPercent, 0.001)
}

func TestComputeEmployeeStatsUnrestricted(t *testing.T) {
	employee := &domain.Employee{ID: 5, Name: "Robin"}
	stats := ComputeEmployeeStats(employee, nil, nil, dayAt(t, "2026-01-05", "00:00"), dayAt(t, "2026-01-11", "00:00"), dayAt(t, "2026-01-07", "12:00"))
	assert.Equal(t, 100.0, stats.AvailabilityPercent)
	assert.Zero(t, stats.TotalAssignments)
}

func TestComputeShiftStats(t *testing.T) {
	shift := &domain.Shift{ID: 4, RequiredEmployees: 2}

	t.Run("fill rate exceeds 100 when overbooked", func(t *testing.T) {
		assignments := []*domain.ShiftAssignment{
			{ShiftID: 4, EmployeeID: 1, Date: "2026-01-05", Status: domain.AssignmentConfirmed},
			{ShiftID: 4, EmployeeID: 2, Date: "2026-01-05", Status: domain.AssignmentConfirmed},
			{ShiftID: 4, EmployeeID: 3, Date: "2026-01-05", Status: domain.AssignmentPending},
		}
		stats := ComputeShiftStats(shift, assignments)
		assert.Equal(t, 3, stats.AssignmentCount)
		assert.Equal(t, 150.0, stats.FillRate)
	})

	t.Run("cancelled assignments do not fill", func(t *testing.T) {
		assignments := []*domain.ShiftAssignment{
			{ShiftID: 4, EmployeeID: 1, Date: "2026-01-05", Status: domain.AssignmentCancelled},
			{ShiftID: 4, EmployeeID: 2, Date: "2026-01-05", Status: domain.AssignmentConfirmed},
		}
		stats := ComputeShiftStats(shift, assignments)
		assert.Equal(t, 1, stats.AssignmentCount)
		assert.Equal(t, 50.0, stats.FillRate)
	})

	t.Run("zero required headcount yields zero rate", func(t *testing.T) {
		stats := ComputeShiftStats(&domain.Shift{ID: 6}, nil)
		assert.Equal(t, 0.0, stats.FillRate)
	})
}

func TestWeeklyCoverage(t *testing.T) {
	catalog := map[int64]*domain.Shift{
		1: {ID: 1, DurationHours: 8},
	}
	businessHours := []*domain.BusinessHours{
		{Weekday: time.Monday, Open: "09:00", Close: "17:00"},
		{Weekday: time.Tuesday, Open: "09:00", Close: "17:00"},
		{Weekday: time.Sunday, IsClosed: true},
	}

	t.Run("historical formula", func(t *testing.T) {
		assignments := []*domain.ShiftAssignment{
			{ShiftID: 1, EmployeeID: 1, Date: "2026-01-05", Status: domain.AssignmentConfirmed},
			{ShiftID: 1, EmployeeID: 2, Date: "2026-01-06", Status: domain.AssignmentConfirmed},
		}
		// 16 hours over a denominator of (8 + 8) * 7.
		coverage := WeeklyCoverage(assignments, catalog, businessHours)
		assert.InDelta(t, 16.0/(16*7)*100, coverage, 0.001)
	})

	t.Run("cancelled hours do not count", func(t *testing.T) {
		assignments := []*domain.ShiftAssignment{
			{ShiftID: 1, EmployeeID: 1, Date: "2026-01-05", Status: domain.AssignmentCancelled},
		}
		assert.Equal(t, 0.0, WeeklyCoverage(assignments, catalog, businessHours))
	})

	t.Run("no business hours yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, WeeklyCoverage(nil, catalog, nil))
	})
}
