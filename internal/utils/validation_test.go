package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/melihkochan/personelplanlama/backend/internal/domain"
)

func fullPlan() *domain.WeeklyPlan {
	plan := &domain.WeeklyPlan{Days: make([]domain.PlanDay, domain.PlanDays)}
	for d := range plan.Days {
		slots := make([]domain.PlanSlot, domain.FleetSize)
		for i := range slots {
			slots[i] = domain.PlanSlot{VehiclePlate: string(rune('A' + i)), VehicleType: domain.VehicleTypeVan}
		}
		plan.Days[d] = domain.PlanDay{Day: int32(d), Slots: slots}
	}
	return plan
}

func TestValidateWeeklyPlanShape(t *testing.T) {
	plan := fullPlan()
	assert.NoError(t, ValidateWeeklyPlanShape(plan))

	truncated := fullPlan()
	truncated.Days = truncated.Days[:4]
	assert.Error(t, ValidateWeeklyPlanShape(truncated))

	missing := fullPlan()
	missing.Days[2].Slots = missing.Days[2].Slots[:7]
	assert.Error(t, ValidateWeeklyPlanShape(missing))

	overstaffed := fullPlan()
	overstaffed.Days[0].Slots[0].Staff = []string{"S01", "S02", "S03"}
	assert.Error(t, ValidateWeeklyPlanShape(overstaffed))
}

func TestValidateNoDuplicateAssignments(t *testing.T) {
	plan := fullPlan()
	driver := "D01"
	plan.Days[0].Slots[0].Driver = &driver
	plan.Days[0].Slots[1].Staff = []string{"S01"}
	assert.NoError(t, ValidateNoDuplicateAssignments(plan))

	// Same employee as driver on one vehicle and staff on another, same day.
	plan.Days[0].Slots[2].Staff = []string{"D01"}
	assert.Error(t, ValidateNoDuplicateAssignments(plan))
}

func TestValidatePlanAgainstStatuses(t *testing.T) {
	plan := fullPlan()
	driver := "D01"
	plan.Days[0].Slots[0].Driver = &driver
	plan.Days[0].Slots[0].Staff = []string{"S01", "S02"}

	statuses := map[string]domain.ShiftStatus{
		"D01": domain.ShiftStatusNight,
		"S01": domain.ShiftStatusNight,
		"S02": domain.ShiftStatusNight,
	}
	assert.NoError(t, ValidatePlanAgainstStatuses(plan, statuses))

	statuses["S02"] = domain.ShiftStatusSick
	assert.Error(t, ValidatePlanAgainstStatuses(plan, statuses))
}
