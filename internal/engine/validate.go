package engine

import (
	"fmt"
	"time"

	"github.com/shiftwise-dev/rota-manager/backend/internal/domain"
)

// ValidationError is a user-correctable objection to a candidate
// assignment. Policy violations come back as values with a field tag, not
// as errors, so the caller can always render a corrected-input prompt.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Candidate is a proposed placement of one employee on one shift on one
// calendar date, in engine terms: the interval has already been resolved
// to absolute timestamps by the caller.
type Candidate struct {
	Employee *domain.Employee
	Start    time.Time
	End      time.Time
}

// ValidateCandidate runs the availability check and the conflict check
// over one candidate interval and returns every objection found. An empty
// slice is a pass. Referential gaps in existing assignments never fail
// the candidate; they are skipped inside HasConflict.
func ValidateCandidate(candidate Candidate, existing []*domain.ShiftAssignment, catalog map[int64]*domain.Shift) []ValidationError {
	var errs []ValidationError

	if candidate.Employee == nil {
		return append(errs, ValidationError{Field: "employee", Message: "employee does not exist"})
	}
	if !candidate.End.After(candidate.Start) {
		return append(errs, ValidationError{Field: "time", Message: "shift interval is empty or inverted"})
	}

	if !IsAvailable(candidate.Employee, candidate.Start, candidate.End) {
		errs = append(errs, ValidationError{
			Field:   "availability",
			Message: fmt.Sprintf("%s is not available on %s at this time", candidate.Employee.Name, candidate.Start.Weekday()),
		})
	}

	if HasConflict(existing, candidate.Employee.ID, candidate.Start, candidate.End, catalog) {
		errs = append(errs, ValidationError{
			Field:   "conflict",
			Message: fmt.Sprintf("%s already has an overlapping assignment on %s", candidate.Employee.Name, candidate.Start.Format(domain.DateLayout)),
		})
	}

	return errs
}

// SplitCandidate resolves a shift placed on date into its absolute
// validation intervals: one for a same-day shift, head and tail for an
// overnight shift (the tail on the following calendar date). Each
// interval is validated independently against its own day.
func SplitCandidate(shift *domain.Shift, date time.Time) ([][2]time.Time, error) {
	start, err := OnDate(date, shift.StartTime)
	if err != nil {
		return nil, err
	}

	if !shift.IsOvernight {
		end, err := OnDate(date, shift.EndTime)
		if err != nil {
			return nil, err
		}
		return [][2]time.Time{{start, end}}, nil
	}

	headEnd, err := OnDate(date, "23:59")
	if err != nil {
		return nil, err
	}
	nextDay := date.AddDate(0, 0, 1)
	tailStart, err := OnDate(nextDay, "00:00")
	if err != nil {
		return nil, err
	}
	tailEnd, err := OnDate(nextDay, shift.EndTime)
	if err != nil {
		return nil, err
	}

	return [][2]time.Time{{start, headEnd}, {tailStart, tailEnd}}, nil
}
