package domain

import "time"

// BusinessHours is the open/close window for one weekday. It only feeds
// coverage denominators and is never conflict-checked itself.
type BusinessHours struct {
	Weekday  time.Weekday `json:"weekday"`
	IsClosed bool         `json:"isClosed"`
	Open     string       `json:"open,omitempty"`
	Close    string       `json:"close,omitempty"`
	Version  int32        `json:"-"`
}
