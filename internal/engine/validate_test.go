package engine

import (
	"testing"
	"time"

	"github.com/shiftwise-dev/rota-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCandidate(t *testing.T) {
	employee := &domain.Employee{
		ID:   1,
		Name: "Dana",
		Availability: domain.Availability{
			time.Monday: {Start: "09:00", End: "17:00"},
		},
	}
	catalog := map[int64]*domain.Shift{
		1: {ID: 1, Name: "Morning", StartTime: "10:00", EndTime: "12:00", DurationHours: 2},
	}
	existing := []*domain.ShiftAssignment{
		{ID: 10, ShiftID: 1, EmployeeID: 1, Date: "2026-01-05", StartTime: "10:00", EndTime: "12:00", Status: domain.AssignmentConfirmed},
	}

	t.Run("clean candidate passes", func(t *testing.T) {
		errs := ValidateCandidate(Candidate{
			Employee: employee,
			Start:    dayAt(t, "2026-01-05", "13:00"),
			End:      dayAt(t, "2026-01-05", "15:00"),
		}, existing, catalog)
		assert.Empty(t, errs)
	})

	t.Run("conflict is reported with a field tag", func(t *testing.T) {
		errs := ValidateCandidate(Candidate{
			Employee: employee,
			Start:    dayAt(t, "2026-01-05", "11:00"),
			End:      dayAt(t, "2026-01-05", "13:00"),
		}, existing, catalog)
		require.Len(t, errs, 1)
		assert.Equal(t, "conflict", errs[0].Field)
	})

	t.Run("unavailable day is reported", func(t *testing.T) {
		errs := ValidateCandidate(Candidate{
			Employee: employee,
			Start:    dayAt(t, "2026-01-06", "10:00"),
			End:      dayAt(t, "2026-01-06", "12:00"),
		}, existing, catalog)
		require.Len(t, errs, 1)
		assert.Equal(t, "availability", errs[0].Field)
	})

	t.Run("multiple objections accumulate", func(t *testing.T) {
		blocked := []*domain.ShiftAssignment{
			{ID: 11, ShiftID: 1, EmployeeID: 1, Date: "2026-01-06", StartTime: "10:00", EndTime: "12:00", Status: domain.AssignmentConfirmed},
		}
		errs := ValidateCandidate(Candidate{
			Employee: employee,
			Start:    dayAt(t, "2026-01-06", "11:00"),
			End:      dayAt(t, "2026-01-06", "13:00"),
		}, blocked, catalog)
		require.Len(t, errs, 2)
		assert.Equal(t, "availability", errs[0].Field)
		assert.Equal(t, "conflict", errs[1].Field)
	})

	t.Run("missing employee", func(t *testing.T) {
		errs := ValidateCandidate(Candidate{
			Start: dayAt(t, "2026-01-05", "10:00"),
			End:   dayAt(t, "2026-01-05", "12:00"),
		}, nil, catalog)
		require.Len(t, errs, 1)
		assert.Equal(t, "employee", errs[0].Field)
	})

	t.Run("inverted interval", func(t *testing.T) {
		errs := ValidateCandidate(Candidate{
			Employee: employee,
			Start:    dayAt(t, "2026-01-05", "12:00"),
			End:      dayAt(t, "2026-01-05", "10:00"),
		}, nil, catalog)
		require.Len(t, errs, 1)
		assert.Equal(t, "time", errs[0].Field)
	})
}

func TestSplitCandidate(t *testing.T) {
	t.Run("same-day shift is one interval", func(t *testing.T) {
		shift := &domain.Shift{ID: 3, StartTime: "09:00", EndTime: "17:00"}
		intervals, err := SplitCandidate(shift, dayAt(t, "2026-01-05", "00:00"))
		require.NoError(t, err)
		require.Len(t, intervals, 1)
		assert.Equal(t, dayAt(t, "2026-01-05", "09:00"), intervals[0][0])
		assert.Equal(t, dayAt(t, "2026-01-05", "17:00"), intervals[0][1])
	})

	t.Run("overnight shift splits across midnight", func(t *testing.T) {
		shift := &domain.Shift{ID: 7, StartTime: "22:00", EndTime: "06:00", IsOvernight: true}
		intervals, err := SplitCandidate(shift, dayAt(t, "2026-01-05", "00:00"))
		require.NoError(t, err)
		require.Len(t, intervals, 2)
		assert.Equal(t, dayAt(t, "2026-01-05", "22:00"), intervals[0][0])
		assert.Equal(t, dayAt(t, "2026-01-05", "23:59"), intervals[0][1])
		assert.Equal(t, dayAt(t, "2026-01-06", "00:00"), intervals[1][0])
		assert.Equal(t, dayAt(t, "2026-01-06", "06:00"), intervals[1][1])
	})

	t.Run("bad clock string", func(t *testing.T) {
		shift := &domain.Shift{ID: 9, StartTime: "nope", EndTime: "17:00"}
		_, err := SplitCandidate(shift, dayAt(t, "2026-01-05", "00:00"))
		assert.Error(t, err)
	})
}
