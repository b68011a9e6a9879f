package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/shiftwise-dev/rota-manager/backend/internal/domain"
	"github.com/shiftwise-dev/rota-manager/backend/internal/engine"
)

// PreviewWeekGrid replays a sequence of design operations against an
// empty weekly grid and returns the resulting buckets with per-day hour
// totals. This backs the shift design view: the client sends the whole
// operation list each time and renders what comes back.
func (h *Handler) PreviewWeekGrid(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Operations []struct {
			Action  string `json:"action" validate:"required,oneof=assign remove"`
			Day     int    `json:"day" validate:"gte=0,lte=6"`
			ShiftID int64  `json:"shiftId"`
			Index   int    `json:"index"`
		} `json:"operations" validate:"required,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
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

	grid := engine.NewWeekGrid()
	for _, op := range req.Operations {
		day := time.Weekday(op.Day)
		switch op.Action {
		case "assign":
			shift, exists := catalog[op.ShiftID]
			if !exists {
				h.errorResponse(w, r, "operation references a shift that does not exist")
				return
			}
			if err := grid.Assign(shift, day); err != nil {
				h.badRequest(w, r, err)
				return
			}
		case "remove":
			if err := grid.Remove(day, op.Index); err != nil {
				// A dangling overnight half is defensive-only: the slot is
				// gone either way, so log it and keep replaying.
				slog.Error("grid removal left a dangling half", "day", day, "index", op.Index, "error", err)
			}
		}
	}

	type dayView struct {
		Day   string            `json:"day"`
		Slots []engine.GridSlot `json:"slots"`
		Hours float64           `json:"hours"`
	}

	days := make([]dayView, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		days = append(days, dayView{
			Day:   d.String(),
			Slots: grid.Slots(d),
			Hours: grid.DayHours(d, catalog),
		})
	}

	h.successResponse(w, r, "grid preview computed", days)
}
