package engine

import (
	"time"

	"github.com/shiftwise-dev/rota-manager/backend/internal/domain"
)

type EmployeeStats struct {
	EmployeeID          int64   `json:"employeeId"`
	TotalAssignments    int     `json:"totalAssignments"`
	Completed           int     `json:"completed"`
	Upcoming            int     `json:"upcoming"`
	TotalHours          float64 `json:"totalHours"`
	AvailabilityPercent float64 `json:"availabilityPercent"`
}

type ShiftStats struct {
	ShiftID         int64   `json:"shiftId"`
	AssignmentCount int     `json:"assignmentCount"`
	FillRate        float64 `json:"fillRate"`
}

// ComputeEmployeeStats rolls up one employee's assignments inside
// [windowStart, windowEnd]. Completed means the assignment date is before
// now's calendar date, upcoming means after it; an assignment dated
// exactly today lands in neither bucket. Hours come from the matched
// shift's declared duration, so an assignment whose shift has been
// deleted contributes its count but no hours. The availability percentage
// is the coarse open-days measure: open weekday entries over seven.
func ComputeEmployeeStats(employee *domain.Employee, assignments []*domain.ShiftAssignment, catalog map[int64]*domain.Shift, windowStart, windowEnd time.Time, now time.Time) EmployeeStats {
	stats := EmployeeStats{EmployeeID: employee.ID}

	today := now.Format(domain.DateLayout)
	startDate := windowStart.Format(domain.DateLayout)
	endDate := windowEnd.Format(domain.DateLayout)

	for _, assignment := range assignments {
		if assignment.EmployeeID != employee.ID {
			continue
		}
		if assignment.Date < startDate || assignment.Date > endDate {
			continue
		}
		if assignment.IsTail() {
			// The tail row is the second half of an already-counted shift.
			continue
		}

		stats.TotalAssignments++
		if assignment.Date < today {
			stats.Completed++
		} else if assignment.Date > today {
			stats.Upcoming++
		}

		if shift, ok := catalog[assignment.ShiftID]; ok {
			stats.TotalHours += shift.DurationHours
		}
	}

	if employee.Availability == nil {
		// Unrestricted employees are treated as open all week.
		stats.AvailabilityPercent = 100
		return stats
	}

	openDays := 0
	for _, window := range employee.Availability {
		if !window.IsClosed {
			openDays++
		}
	}
	stats.AvailabilityPercent = float64(openDays) / 7 * 100

	return stats
}

// ComputeShiftStats counts the non-cancelled assignments of one shift and
// derives its fill rate against the required headcount. The rate is
// deliberately unclamped: overbooking past 100% is a signal worth
// surfacing, not an error.
func ComputeShiftStats(shift *domain.Shift, assignments []*domain.ShiftAssignment) ShiftStats {
	stats := ShiftStats{ShiftID: shift.ID}

	for _, assignment := range assignments {
		if assignment.ShiftID != shift.ID {
			continue
		}
		if assignment.Status == domain.AssignmentCancelled {
			continue
		}
		if assignment.IsTail() {
			continue
		}
		stats.AssignmentCount++
	}

	if shift.RequiredEmployees > 0 {
		stats.FillRate = float64(stats.AssignmentCount) / float64(shift.RequiredEmployees) * 100
	}

	return stats
}

// WeeklyCoverage is scheduled hours over theoretically available business
// hours, as a percentage. The denominator multiplies the summed per-day
// business hours by seven, matching the historical reporting formula even
// though the sum already spans the week.
func WeeklyCoverage(assignments []*domain.ShiftAssignment, catalog map[int64]*domain.Shift, businessHours []*domain.BusinessHours) float64 {
	totalHours := 0.0
	for _, assignment := range assignments {
		if assignment.Status == domain.AssignmentCancelled {
			continue
		}
		if assignment.IsTail() {
			continue
		}
		if shift, ok := catalog[assignment.ShiftID]; ok {
			totalHours += shift.DurationHours
		}
	}

	totalPossible := 0.0
	for _, day := range businessHours {
		if day.IsClosed {
			continue
		}
		openHour, _, err := ParseClock(day.Open)
		if err != nil {
			continue
		}
		closeHour, _, err := ParseClock(day.Close)
		if err != nil {
			continue
		}
		totalPossible += float64(closeHour - openHour)
	}

	if totalPossible <= 0 {
		return 0
	}

	return totalHours / (totalPossible * 7) * 100
}
