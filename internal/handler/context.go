package handler

type ContextKey string

var (
	EmployeeCtx   ContextKey = "employee"
	ShiftCtx      ContextKey = "shift"
	AssignmentCtx ContextKey = "assignment"
)
