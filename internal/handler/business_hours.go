package handler

import (
	"net/http"
	"time"

	"github.com/shiftwise-dev/rota-manager/backend/internal/domain"
)

func (h *Handler) GetBusinessHours(w http.ResponseWriter, r *http.Request) {
	hours, err := h.repository.GetBusinessHours()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "business hours fetched", hours)
}

func (h *Handler) PutBusinessHours(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Days []struct {
			Weekday  int    `json:"weekday" validate:"gte=0,lte=6"`
			IsClosed bool   `json:"isClosed"`
			Open     string `json:"open"`
			Close    string `json:"close"`
		} `json:"days" validate:"required,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	updated := make([]*domain.BusinessHours, 0, len(req.Days))
	for _, dayReq := range req.Days {
		day := &domain.BusinessHours{
			Weekday:  time.Weekday(dayReq.Weekday),
			IsClosed: dayReq.IsClosed,
			Open:     dayReq.Open,
			Close:    dayReq.Close,
		}
		if !day.IsClosed {
			if day.Open == "" {
				day.Open = "00:00"
			}
			if day.Close == "" {
				day.Close = "23:59"
			}
			if day.Close <= day.Open {
				h.errorResponse(w, r, "close time must be after open time")
				return
			}
		}
		updated = append(updated, day)
	}

	for _, day := range updated {
		if err := h.repository.UpsertBusinessHours(day); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.invalidateStatsCache(r)
	h.successResponse(w, r, "business hours updated", updated)
}
