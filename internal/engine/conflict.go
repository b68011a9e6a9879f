package engine

import (
	"time"

	"github.com/shiftwise-dev/rota-manager/backend/internal/domain"
)

// HasConflict reports whether the candidate interval collides with any of
// the employee's existing assignments on the same calendar date as
// candidateStart.
//
// Cancelled assignments never block. An assignment whose shift is missing
// from the catalog is skipped: a dangling reference left behind by a
// deleted shift must degrade the check, not crash it.
func HasConflict(existing []*domain.ShiftAssignment, employeeID int64, candidateStart, candidateEnd time.Time, catalog map[int64]*domain.Shift) bool {
	for _, assignment := range existing {
		if assignment.EmployeeID != employeeID {
			continue
		}
		if assignment.Status == domain.AssignmentCancelled {
			continue
		}

		date, err := time.Parse(domain.DateLayout, assignment.Date)
		if err != nil {
			continue
		}
		if !SameDate(date, candidateStart) {
			continue
		}

		shift, ok := catalog[assignment.ShiftID]
		if !ok {
			continue
		}

		// Overnight halves are already day-scoped, so a record's own times
		// win; only records without them fall back to the catalog shift.
		startClock, endClock := assignment.StartTime, assignment.EndTime
		if startClock == "" || endClock == "" {
			startClock, endClock = shift.StartTime, shift.EndTime
		}

		start, err := OnDate(date, startClock)
		if err != nil {
			continue
		}
		end, err := OnDate(date, endClock)
		if err != nil {
			continue
		}

		if Overlaps(candidateStart, candidateEnd, start, end) {
			return true
		}
	}

	return false
}
