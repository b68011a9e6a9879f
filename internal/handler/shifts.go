package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shiftwise-dev/rota-manager/backend/internal/domain"
)

func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name              string  `json:"name" validate:"required"`
		StartTime         string  `json:"startTime" validate:"required"`
		EndTime           string  `json:"endTime" validate:"required"`
		DurationHours     float64 `json:"durationHours" validate:"required,gt=0"`
		RequiredEmployees int32   `json:"requiredEmployees" validate:"required,gte=1"`
		Roles             []struct {
			Role          string  `json:"role" validate:"required"`
			Count         int32   `json:"count" validate:"required,gte=1"`
			DurationHours float64 `json:"durationHours" validate:"omitempty,gt=0"`
		} `json:"roles" validate:"omitempty,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shift := &domain.Shift{
		Name:              req.Name,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		DurationHours:     req.DurationHours,
		RequiredEmployees: req.RequiredEmployees,
		Roles:             make([]domain.ShiftRole, 0, len(req.Roles)),
	}
	for _, role := range req.Roles {
		shift.Roles = append(shift.Roles, domain.ShiftRole{
			Role:          role.Role,
			Count:         role.Count,
			DurationHours: role.DurationHours,
		})
	}

	// Normalization derives the overnight flag from the clock strings.
	if err := domain.NormalizeShift(shift); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.CreateShift(shift); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "shifts_name_key":
				h.errorResponse(w, r, "a shift with this name already exists")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "shift created", shift)
}

func (h *Handler) GetAllShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.repository.GetAllShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shifts fetched", shifts)
}

func (h *Handler) GetShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	h.successResponse(w, r, "shift fetched", shift)
}

func (h *Handler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	var req struct {
		Name              *string  `json:"name"`
		StartTime         *string  `json:"startTime"`
		EndTime           *string  `json:"endTime"`
		DurationHours     *float64 `json:"durationHours" validate:"omitempty,gt=0"`
		RequiredEmployees *int32   `json:"requiredEmployees" validate:"omitempty,gte=1"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		shift.Name = *req.Name
	}
	if req.StartTime != nil {
		shift.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		shift.EndTime = *req.EndTime
	}
	if req.DurationHours != nil {
		shift.DurationHours = *req.DurationHours
	}
	if req.RequiredEmployees != nil {
		shift.RequiredEmployees = *req.RequiredEmployees
	}

	if err := domain.NormalizeShift(shift); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpdateShift(shift); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.invalidateStatsCache(r)
	h.successResponse(w, r, "shift updated", shift)
}

func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	if err := h.repository.DeleteShift(shift.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.invalidateStatsCache(r)
	h.successResponse(w, r, "shift deleted", nil)
}
