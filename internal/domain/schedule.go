package domain

// WeeklySchedule is a week-bounded view over assignments. WeekEnd is always
// WeekStart + 6 days and every key of Days falls inside that window.
type WeeklySchedule struct {
	WeekStart string                        `json:"weekStart"`
	WeekEnd   string                        `json:"weekEnd"`
	Days      map[string][]*ShiftAssignment `json:"days"`
}
