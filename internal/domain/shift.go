package domain

import "time"

// ShiftRole declares a per-role headcount inside a shift, for shifts that
// staff more than one role at once.
type ShiftRole struct {
	Role          string  `json:"role"`
	Count         int32   `json:"count"`
	DurationHours float64 `json:"durationHours,omitempty"`
}

// Shift is a reusable template describing a work period, not a specific
// day's occurrence. DurationHours is declared independently and is not
// derived from the start/end clock strings.
type Shift struct {
	ID                int64       `json:"id"`
	Name              string      `json:"name"`
	StartTime         string      `json:"startTime"`
	EndTime           string      `json:"endTime"`
	DurationHours     float64     `json:"durationHours"`
	RequiredEmployees int32       `json:"requiredEmployees"`
	IsOvernight       bool        `json:"isOvernight"`
	Roles             []ShiftRole `json:"roles,omitempty"`
	CreatedAt         time.Time   `json:"createdAt"`
	Version           int32       `json:"-"`
}
