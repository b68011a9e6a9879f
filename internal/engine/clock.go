// Package engine is the scheduling validation and conflict core. Every
// function is pure: callers pass in a consistent snapshot of employees,
// shifts and assignments and get verdicts or derived numbers back. The
// engine owns no state, performs no I/O and never panics on bad input.
package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/shiftwise-dev/rota-manager/backend/internal/domain"
)

// Overlaps reports whether the half-open intervals [startA, endA) and
// [startB, endB) intersect. Touching endpoints do not overlap, so a shift
// ending at 17:00 does not collide with one starting at 17:00.
func Overlaps(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && startB.Before(endA)
}

// DurationHours returns end - start in hours, rounded to one decimal
// place. end before start is a caller error and is reported, never
// silently wrapped around midnight.
func DurationHours(start, end time.Time) (float64, error) {
	if end.Before(start) {
		return 0, fmt.Errorf("interval ends before it starts")
	}
	hours := end.Sub(start).Hours()
	return math.Round(hours*10) / 10, nil
}

// WeekBounds returns the inclusive 7-day window containing date, starting
// on weekStartsOn. Schedule views use Monday weeks and the dashboard uses
// Sunday weeks; the two conventions coexist, so the start day is always an
// explicit parameter.
func WeekBounds(date time.Time, weekStartsOn time.Weekday) (time.Time, time.Time) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	offset := (int(day.Weekday()) - int(weekStartsOn) + 7) % 7
	weekStart := day.AddDate(0, 0, -offset)
	weekEnd := weekStart.AddDate(0, 0, 6)
	return weekStart, weekEnd
}

// ParseClock parses an "HH:MM" clock string into hour and minute.
func ParseClock(clock string) (int, int, error) {
	t, err := time.Parse(domain.ClockLayout, clock)
	if err != nil {
		return 0, 0, fmt.Errorf("%q is not a valid HH:MM time", clock)
	}
	return t.Hour(), t.Minute(), nil
}

// OnDate places an "HH:MM" clock string onto the calendar day of date.
func OnDate(date time.Time, clock string) (time.Time, error) {
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), nil
}

// SameDate reports whether a and b fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// NextWeekday and PrevWeekday step circularly over the 7 weekdays, so the
// tail of a Saturday overnight shift lands on Sunday and vice versa.
func NextWeekday(d time.Weekday) time.Weekday {
	return (d + 1) % 7
}

func PrevWeekday(d time.Weekday) time.Weekday {
	return (d + 6) % 7
}
