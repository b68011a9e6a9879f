package handler

import (
	"net/http"
	"time"

	"github.com/shiftwise-dev/rota-manager/backend/internal/domain"
	"github.com/shiftwise-dev/rota-manager/backend/internal/engine"
)

// GetWeeklySchedule returns the Monday-based week containing ?date=
// (default today) as a WeeklySchedule container.
func (h *Handler) GetWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if param := r.URL.Query().Get("date"); param != "" {
		parsed, err := time.Parse(domain.DateLayout, param)
		if err != nil {
			h.errorResponse(w, r, "date must be an ISO date (YYYY-MM-DD)")
			return
		}
		date = parsed
	}

	weekStart, weekEnd := engine.WeekBounds(date, time.Monday)
	startDate := weekStart.Format(domain.DateLayout)
	endDate := weekEnd.Format(domain.DateLayout)

	assignments, err := h.repository.GetAssignmentsBetween(startDate, endDate)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	schedule := &domain.WeeklySchedule{
		WeekStart: startDate,
		WeekEnd:   endDate,
		Days:      make(map[string][]*domain.ShiftAssignment, 7),
	}
	for d := 0; d < 7; d++ {
		day := weekStart.AddDate(0, 0, d).Format(domain.DateLayout)
		schedule.Days[day] = make([]*domain.ShiftAssignment, 0)
	}
	for _, assignment := range assignments {
		schedule.Days[assignment.Date] = append(schedule.Days[assignment.Date], assignment)
	}

	h.successResponse(w, r, "weekly schedule fetched", schedule)
}
