package domain

import (
	"fmt"
	"time"
)

const (
	ClockLayout = "15:04"
	DateLayout  = "2006-01-02"
)

// NormalizeEmployee fills availability defaults once, at the data-model
// boundary, so the engine can assume fully populated records. Open days
// default a missing start to 00:00 and a missing end to 23:59. A window
// declared with end <= start would cross midnight, which availability is
// not allowed to do, so it is rejected here instead of being misread
// downstream.
func NormalizeEmployee(e *Employee) error {
	for day, window := range e.Availability {
		if day < time.Sunday || day > time.Saturday {
			return fmt.Errorf("availability weekday %d is out of range", day)
		}
		if window.IsClosed {
			continue
		}
		if window.Start == "" {
			window.Start = "00:00"
		}
		if window.End == "" {
			window.End = "23:59"
		}
		if _, err := time.Parse(ClockLayout, window.Start); err != nil {
			return fmt.Errorf("availability start for %s is not a valid HH:MM time", day)
		}
		if _, err := time.Parse(ClockLayout, window.End); err != nil {
			return fmt.Errorf("availability end for %s is not a valid HH:MM time", day)
		}
		if window.End <= window.Start {
			return fmt.Errorf("availability for %s ends before it starts", day)
		}
		e.Availability[day] = window
	}
	return nil
}

// NormalizeShift validates the clock strings and derives IsOvernight: a
// shift whose end time is lexically earlier than its start time crosses
// midnight.
func NormalizeShift(s *Shift) error {
	if _, err := time.Parse(ClockLayout, s.StartTime); err != nil {
		return fmt.Errorf("shift start time %q is not a valid HH:MM time", s.StartTime)
	}
	if _, err := time.Parse(ClockLayout, s.EndTime); err != nil {
		return fmt.Errorf("shift end time %q is not a valid HH:MM time", s.EndTime)
	}
	if s.DurationHours < 0 {
		return fmt.Errorf("shift duration cannot be negative")
	}
	s.IsOvernight = s.EndTime < s.StartTime
	return nil
}

// NormalizeAssignment stamps the shift's times onto a fresh assignment and
// validates its calendar date.
func NormalizeAssignment(a *ShiftAssignment, shift *Shift) error {
	if _, err := time.Parse(DateLayout, a.Date); err != nil {
		return fmt.Errorf("assignment date %q is not a valid ISO date", a.Date)
	}
	a.ShiftID = shift.ID
	a.StartTime = shift.StartTime
	a.EndTime = shift.EndTime
	a.IsOvernight = shift.IsOvernight
	if a.Status == "" {
		a.Status = AssignmentPending
	}
	if !ValidStatus(a.Status) {
		return fmt.Errorf("unknown assignment status %q", a.Status)
	}
	return nil
}
