package domain

import "time"

type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentConfirmed AssignmentStatus = "confirmed"
	AssignmentDeclined  AssignmentStatus = "declined"
	AssignmentCancelled AssignmentStatus = "cancelled"
	AssignmentCompleted AssignmentStatus = "completed"
)

// ShiftAssignment binds one employee to one shift on one calendar date
// (ISO date string). StartTime/EndTime are copied from the shift at
// assignment time so the record stays meaningful if the shift is later
// edited. An overnight shift produces two rows sharing a PairKey: the
// head on day D ending at 23:59 and the tail on D+1 starting at 00:00;
// the pair is created and deleted together.
type ShiftAssignment struct {
	ID          int64            `json:"id"`
	ShiftID     int64            `json:"shiftId"`
	EmployeeID  int64            `json:"employeeId"`
	Date        string           `json:"date"`
	StartTime   string           `json:"startTime"`
	EndTime     string           `json:"endTime"`
	IsOvernight bool             `json:"isOvernight"`
	PairKey     string           `json:"pairKey,omitempty"`
	Status      AssignmentStatus `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
	Version     int32            `json:"-"`
}

// IsTail reports whether this row is the post-midnight half of an
// overnight pair.
func (a *ShiftAssignment) IsTail() bool {
	return a.IsOvernight && a.StartTime == "00:00"
}

// ValidStatus reports whether s is one of the known assignment statuses.
func ValidStatus(s AssignmentStatus) bool {
	switch s {
	case AssignmentPending, AssignmentConfirmed, AssignmentDeclined, AssignmentCancelled, AssignmentCompleted:
		return true
	}
	return false
}
