package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/melihkochan/personelplanlama/backend/internal/domain"
)

func (h *Handler) GetAllVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.repository.GetAllVehicles()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "fetched vehicles", vehicles)
}

func (h *Handler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Plate                string  `json:"plate" validate:"required"`
		Type                 string  `json:"type" validate:"required,oneof=TRUCK PICKUP VAN"`
		Region               string  `json:"region"`
		FixedPrimaryDriver   *string `json:"fixedPrimaryDriver"`
		FixedSecondaryDriver *string `json:"fixedSecondaryDriver"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	v := &domain.Vehicle{
		Plate:                req.Plate,
		Type:                 domain.VehicleType(req.Type),
		Region:               req.Region,
		FixedPrimaryDriver:   req.FixedPrimaryDriver,
		FixedSecondaryDriver: req.FixedSecondaryDriver,
	}

	if err := h.repository.CreateVehicle(v); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "vehicles_plate_key":
			h.badRequest(w, r, errors.New("plate already registered"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "vehicle created", v)
}

func (h *Handler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	v := r.Context().Value(VehicleCtx).(*domain.Vehicle)
	h.successResponse(w, r, "fetched vehicle", v)
}

func (h *Handler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type                 *string `json:"type" validate:"omitempty,oneof=TRUCK PICKUP VAN"`
		Region               *string `json:"region"`
		FixedPrimaryDriver   *string `json:"fixedPrimaryDriver"`
		FixedSecondaryDriver *string `json:"fixedSecondaryDriver"`
		ClearFixedDrivers    bool    `json:"clearFixedDrivers"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	v := r.Context().Value(VehicleCtx).(*domain.Vehicle)

	if req.Type != nil {
		v.Type = domain.VehicleType(*req.Type)
	}
	if req.Region != nil {
		v.Region = *req.Region
	}
	if req.ClearFixedDrivers {
		v.FixedPrimaryDriver = nil
		v.FixedSecondaryDriver = nil
	}
	if req.FixedPrimaryDriver != nil {
		v.FixedPrimaryDriver = req.FixedPrimaryDriver
	}
	if req.FixedSecondaryDriver != nil {
		v.FixedSecondaryDriver = req.FixedSecondaryDriver
	}

	if err := h.repository.UpdateVehicle(v); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "vehicle update failed, please try again")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "vehicle updated", v)
}

func (h *Handler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	v := r.Context().Value(VehicleCtx).(*domain.Vehicle)

	if err := h.repository.DeleteVehicle(v.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "vehicle deleted", nil)
}
