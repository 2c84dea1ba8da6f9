package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/melihkochan/personelplanlama/backend/internal/domain"
)

func (h *Handler) GetAllShiftPeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := h.repository.GetAllShiftPeriods()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "fetched periods", periods)
}

func (h *Handler) CreateShiftPeriod(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string    `json:"name" validate:"required"`
		WeekStart time.Time `json:"weekStart" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	period := &domain.ShiftPeriod{
		Name:      req.Name,
		WeekStart: req.WeekStart,
	}

	if err := h.repository.CreateShiftPeriod(period); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "shift_periods_week_start_key":
			h.badRequest(w, r, errors.New("a period for that week already exists"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "period created", period)
}

func (h *Handler) GetShiftPeriod(w http.ResponseWriter, r *http.Request) {
	period := r.Context().Value(ShiftPeriodCtx).(*domain.ShiftPeriod)
	h.successResponse(w, r, "fetched period", period)
}

func (h *Handler) DeleteShiftPeriod(w http.ResponseWriter, r *http.Request) {
	period := r.Context().Value(ShiftPeriodCtx).(*domain.ShiftPeriod)

	if err := h.repository.DeleteShiftPeriod(period.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "period deleted", nil)
}

func (h *Handler) UploadShiftStatuses(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Statuses []struct {
			EmployeeCode string `json:"employeeCode" validate:"required"`
			Status       string `json:"status" validate:"required"`
		} `json:"statuses" validate:"required,min=1,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	period := r.Context().Value(ShiftPeriodCtx).(*domain.ShiftPeriod)

	entries := make([]domain.ShiftStatusEntry, 0, len(req.Statuses))
	for _, s := range req.Statuses {
		entries = append(entries, domain.ShiftStatusEntry{
			EmployeeCode: s.EmployeeCode,
			Status:       domain.ParseShiftStatus(s.Status),
		})
	}

	if err := h.repository.UpsertShiftStatuses(period.ID, entries); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "statuses saved", nil)
}

func (h *Handler) GetShiftStatuses(w http.ResponseWriter, r *http.Request) {
	period := r.Context().Value(ShiftPeriodCtx).(*domain.ShiftPeriod)

	statuses, err := h.repository.GetShiftStatuses(period.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "fetched statuses", statuses)
}
