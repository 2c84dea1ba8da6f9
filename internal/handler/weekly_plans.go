package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"math/rand"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/melihkochan/personelplanlama/backend/internal/domain"
	"github.com/melihkochan/personelplanlama/backend/internal/planner"
	"github.com/melihkochan/personelplanlama/backend/internal/utils"
)

// GenerateWeeklyPlan runs the assignment engine for the period in context and
// stores the resulting plan, replacing any previous plan for the same week.
// Toggles from the request body override the configured defaults; liveJitter
// swaps the fixed tie-break seed for a time-based one.
func (h *Handler) GenerateWeeklyPlan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ExcludeOnLeave          *bool `json:"excludeOnLeave"`
		ConsiderRotationRules   *bool `json:"considerRotationRules"`
		EnableWorkloadBalancing *bool `json:"enableWorkloadBalancing"`
		LiveJitter              bool  `json:"liveJitter"`
	}

	// The body is optional, an empty request uses the configured defaults
	if err := h.readJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.badRequest(w, r, err)
		return
	}

	period := r.Context().Value(ShiftPeriodCtx).(*domain.ShiftPeriod)

	employees, err := h.repository.GetAllEmployees()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	statuses, err := h.repository.GetShiftStatuses(period.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	vehicles, err := h.repository.GetAllVehicles()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	opts := h.plannerOptions()
	if req.ExcludeOnLeave != nil {
		opts.ExcludeOnLeave = *req.ExcludeOnLeave
	}
	if req.ConsiderRotationRules != nil {
		opts.ConsiderRotationRules = *req.ConsiderRotationRules
	}
	if req.EnableWorkloadBalancing != nil {
		opts.EnableWorkloadBalancing = *req.EnableWorkloadBalancing
	}
	if req.LiveJitter {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	gen, err := planner.New(opts, employees, statuses, vehicles)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	plan, err := gen.Generate()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	plan.ShiftPeriodID = period.ID

	if err := utils.ValidateWeeklyPlanShape(plan); err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if err := utils.ValidateNoDuplicateAssignments(plan); err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if err := utils.ValidatePlanAgainstStatuses(plan, statuses); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	stats := planner.ReplayStats(plan)
	pools := gen.Pools()
	shortage := planner.Shortage(domain.FleetSize, len(pools.Drivers), len(pools.Staff))

	if err := h.repository.InsertWeeklyPlan(plan, stats, shortage); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.publishPlanMail(period, shortage); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "weekly plan generated", struct {
		Plan     *domain.WeeklyPlan     `json:"plan"`
		Stats    []domain.PersonnelStat `json:"stats"`
		Shortage domain.ShortageReport  `json:"shortage"`
	}{
		Plan:     plan,
		Stats:    stats,
		Shortage: shortage,
	})
}

func (h *Handler) GetWeeklyPlan(w http.ResponseWriter, r *http.Request) {
	period := r.Context().Value(ShiftPeriodCtx).(*domain.ShiftPeriod)

	plan, err := h.repository.GetWeeklyPlanByPeriodID(period.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "no plan has been generated for this period")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	stats, err := h.repository.GetPersonnelStatsByPlanID(plan.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	shortage, err := h.repository.GetShortageByPlanID(plan.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "fetched weekly plan", struct {
		Plan     *domain.WeeklyPlan     `json:"plan"`
		Stats    []domain.PersonnelStat `json:"stats"`
		Shortage *domain.ShortageReport `json:"shortage"`
	}{
		Plan:     plan,
		Stats:    stats,
		Shortage: shortage,
	})
}

func (h *Handler) plannerOptions() *planner.Options {
	return &planner.Options{
		ExcludeOnLeave:          h.config.Planner.ExcludeOnLeave,
		ConsiderRotationRules:   h.config.Planner.ConsiderRotationRules,
		EnableWorkloadBalancing: h.config.Planner.EnableWorkloadBalancing,
		TypeWeights: map[domain.VehicleType]float64{
			domain.VehicleTypeTruck:  h.config.Planner.TruckWeight,
			domain.VehicleTypePickup: h.config.Planner.PickupWeight,
			domain.VehicleTypeVan:    h.config.Planner.VanWeight,
		},
		Rand: rand.New(rand.NewSource(h.config.Planner.JitterSeed)),
	}
}

func (h *Handler) publishPlanMail(period *domain.ShiftPeriod, shortage domain.ShortageReport) error {
	mailMessage := domain.MailMessage{
		Type: "plan_published",
		To:   h.config.InitialAdmin.Email,
		Data: domain.PlanPublishedMailData{
			PeriodName:     period.Name,
			DriverShortage: shortage.DriverShortage,
			StaffShortage:  shortage.StaffShortage,
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	)
}
