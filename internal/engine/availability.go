package engine

import (
	"time"

	"github.com/shiftwise-dev/rota-manager/backend/internal/domain"
)

// IsAvailable reports whether the employee's declared weekly availability
// admits the candidate interval.
//
// An employee with no availability map at all is unrestricted. Otherwise
// the weekday of candidateStart must have an open entry, and the candidate
// interval must overlap that day's window. Overlap, not containment: a
// shift partially outside the window is still accepted as long as any part
// of it falls inside. That permissive policy is inherited product
// behaviour and is kept as-is.
func IsAvailable(employee *domain.Employee, candidateStart, candidateEnd time.Time) bool {
	if employee == nil || employee.Availability == nil {
		return true
	}

	window, ok := employee.Availability[candidateStart.Weekday()]
	if !ok || window.IsClosed {
		return false
	}

	start := window.Start
	if start == "" {
		start = "00:00"
	}
	end := window.End
	if end == "" {
		end = "23:59"
	}

	// The window is anchored to the candidate's own calendar days, so an
	// overnight candidate still compares its tail against the right day.
	windowStart, err := OnDate(candidateStart, start)
	if err != nil {
		return false
	}
	windowEnd, err := OnDate(candidateEnd, end)
	if err != nil {
		return false
	}

	return Overlaps(candidateStart, candidateEnd, windowStart, windowEnd)
}
