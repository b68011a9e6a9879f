package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shiftwise-dev/rota-manager/backend/internal/domain"
	"github.com/shiftwise-dev/rota-manager/backend/internal/engine"
)

func (h *Handler) GetEmployeeStats(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeCtx).(*domain.Employee)

	// Default window: the Monday-based week around today.
	windowStart, windowEnd := engine.WeekBounds(time.Now(), time.Monday)
	if param := r.URL.Query().Get("start"); param != "" {
		parsed, err := time.Parse(domain.DateLayout, param)
		if err != nil {
			h.errorResponse(w, r, "start must be an ISO date (YYYY-MM-DD)")
			return
		}
		windowStart = parsed
	}
	if param := r.URL.Query().Get("end"); param != "" {
		parsed, err := time.Parse(domain.DateLayout, param)
		if err != nil {
			h.errorResponse(w, r, "end must be an ISO date (YYYY-MM-DD)")
			return
		}
		windowEnd = parsed
	}

	assignments, err := h.repository.GetAssignmentsByEmployee(employee.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	catalog, err := h.shiftCatalog()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	stats := engine.ComputeEmployeeStats(employee, assignments, catalog, windowStart, windowEnd, time.Now())

	h.successResponse(w, r, "employee stats computed", stats)
}

func (h *Handler) GetShiftStats(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	assignments, err := h.repository.GetAssignmentsByShift(shift.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	stats := engine.ComputeShiftStats(shift, assignments)

	h.successResponse(w, r, "shift stats computed", stats)
}

type dashboardStats struct {
	WeekStart      string              `json:"weekStart"`
	WeekEnd        string              `json:"weekEnd"`
	EmployeeCount  int                 `json:"employeeCount"`
	ShiftCount     int                 `json:"shiftCount"`
	Assignments    int                 `json:"assignments"`
	WeeklyCoverage float64             `json:"weeklyCoverage"`
	Shifts         []engine.ShiftStats `json:"shifts"`
}

// GetDashboardStats aggregates the Sunday-based current week. The
// dashboard has always used Sunday weeks while schedule views use Monday
// weeks; the two conventions are kept deliberately distinct. The snapshot
// is cached in redis until the next write invalidates it.
func (h *Handler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	cached, err := h.redisClient.Get(r.Context(), dashboardStatsKey).Result()
	if err == nil {
		stats := dashboardStats{}
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			h.successResponse(w, r, "dashboard stats computed", stats)
			return
		}
	} else if !errors.Is(err, redis.Nil) {
		h.internalServerError(w, r, err)
		return
	}

	weekStart, weekEnd := engine.WeekBounds(time.Now(), time.Sunday)
	startDate := weekStart.Format(domain.DateLayout)
	endDate := weekEnd.Format(domain.DateLayout)

	employees, err := h.repository.GetAllEmployees()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	shifts, err := h.repository.GetAllShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	catalog := make(map[int64]*domain.Shift, len(shifts))
	for _, s := range shifts {
		catalog[s.ID] = s
	}

	assignments, err := h.repository.GetAssignmentsBetween(startDate, endDate)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	businessHours, err := h.repository.GetBusinessHours()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	stats := dashboardStats{
		WeekStart:      startDate,
		WeekEnd:        endDate,
		EmployeeCount:  len(employees),
		ShiftCount:     len(shifts),
		Assignments:    len(assignments),
		WeeklyCoverage: engine.WeeklyCoverage(assignments, catalog, businessHours),
		Shifts:         make([]engine.ShiftStats, 0, len(shifts)),
	}
	for _, shift := range shifts {
		stats.Shifts = append(stats.Shifts, engine.ComputeShiftStats(shift, assignments))
	}

	if encoded, err := json.Marshal(stats); err == nil {
		expiration := time.Duration(h.config.Stats.CacheExpiration) * time.Second
		if err := h.redisClient.Set(r.Context(), dashboardStatsKey, encoded, expiration).Err(); err != nil {
			h.logInternalServerError(r, err)
		}
	}

	h.successResponse(w, r, "dashboard stats computed", stats)
}

func (h *Handler) shiftCatalog() (map[int64]*domain.Shift, error) {
	shifts, err := h.repository.GetAllShifts()
	if err != nil {
		return nil, err
	}
	catalog := make(map[int64]*domain.Shift, len(shifts))
	for _, shift := range shifts {
		catalog[shift.ID] = shift
	}
	return catalog, nil
}
