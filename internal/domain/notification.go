package domain

type NotificationMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type AssignmentCreatedMailData struct {
	EmployeeName string `json:"employeeName"`
	ShiftName    string `json:"shiftName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

type AssignmentCancelledMailData struct {
	EmployeeName string `json:"employeeName"`
	ShiftName    string `json:"shiftName"`
	Date         string `json:"date"`
}
