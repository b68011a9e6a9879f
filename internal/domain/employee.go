package domain

import (
	"time"
)

// DayAvailability is one weekday entry of an employee's declared weekly
// availability. When IsClosed is false both Start and End are clock strings
// ("HH:MM") on the same day; availability windows never span midnight.
type DayAvailability struct {
	IsClosed bool   `json:"isClosed"`
	Start    string `json:"start,omitempty"`
	End      string `json:"end,omitempty"`
}

// Availability maps a weekday (time.Weekday, 0 = Sunday) to that day's window.
// A nil map means the employee is unrestricted.
type Availability map[time.Weekday]DayAvailability

type Employee struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Roles        []string     `json:"roles"`
	Availability Availability `json:"availability,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	Version      int32        `json:"-"`
}
