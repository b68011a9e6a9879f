package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shiftwise-dev/rota-manager/backend/internal/domain"
)

type availabilityRequest map[int]struct {
	IsClosed bool   `json:"isClosed"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

func (req availabilityRequest) toDomain() domain.Availability {
	if req == nil {
		return nil
	}
	availability := domain.Availability{}
	for weekday, window := range req {
		availability[time.Weekday(weekday)] = domain.DayAvailability{
			IsClosed: window.IsClosed,
			Start:    window.Start,
			End:      window.End,
		}
	}
	return availability
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string              `json:"name" validate:"required"`
		Email        string              `json:"email" validate:"required,email"`
		Roles        []string            `json:"roles"`
		Availability availabilityRequest `json:"availability"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employee := &domain.Employee{
		Name:         req.Name,
		Email:        req.Email,
		Roles:        req.Roles,
		Availability: req.Availability.toDomain(),
	}
	if err := domain.NormalizeEmployee(employee); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.CreateEmployee(employee); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "employees_email_key":
				h.errorResponse(w, r, "an employee with this email already exists")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "employee created", employee)
}

func (h *Handler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.repository.GetAllEmployees()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "employees fetched", employees)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeCtx).(*domain.Employee)

	h.successResponse(w, r, "employee fetched", employee)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeCtx).(*domain.Employee)

	var req struct {
		Name         *string             `json:"name"`
		Email        *string             `json:"email" validate:"omitempty,email"`
		Roles        []string            `json:"roles"`
		Availability availabilityRequest `json:"availability"`
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
		employee.Name = *req.Name
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Roles != nil {
		employee.Roles = req.Roles
	}
	if req.Availability != nil {
		employee.Availability = req.Availability.toDomain()
	}
	if err := domain.NormalizeEmployee(employee); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpdateEmployee(employee); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.invalidateStatsCache(r)
	h.successResponse(w, r, "employee updated", employee)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeCtx).(*domain.Employee)

	if err := h.repository.DeleteEmployee(employee.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.invalidateStatsCache(r)
	h.successResponse(w, r, "employee deleted", nil)
}
