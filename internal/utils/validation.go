package utils

import (
	"fmt"

	"github.com/melihkochan/personelplanlama/backend/internal/domain"
)

// ValidateWeeklyPlanShape checks the structural invariants every finished plan
// must hold: the full day-by-vehicle grid exists even when slots are unfilled,
// and no staff list exceeds the per-vehicle requirement.
func ValidateWeeklyPlanShape(plan *domain.WeeklyPlan) error {
	if len(plan.Days) != domain.PlanDays {
		return fmt.Errorf("plan covers %d days, expected %d", len(plan.Days), domain.PlanDays)
	}

	for _, day := range plan.Days {
		if len(day.Slots) != domain.FleetSize {
			return fmt.Errorf("day %d has %d slots, expected %d", day.Day, len(day.Slots), domain.FleetSize)
		}
		for _, slot := range day.Slots {
			if len(slot.Staff) > domain.StaffPerVehicle {
				return fmt.Errorf("day %d vehicle %s has %d staff, maximum is %d", day.Day, slot.VehiclePlate, len(slot.Staff), domain.StaffPerVehicle)
			}
		}
	}

	return nil
}

// ValidateNoDuplicateAssignments checks that no employee is placed on more
// than one vehicle within the same day, across driver and staff slots alike.
func ValidateNoDuplicateAssignments(plan *domain.WeeklyPlan) error {
	for _, day := range plan.Days {
		seen := make(map[string]string) // employee code -> plate
		for _, slot := range day.Slots {
			if slot.Driver != nil {
				if other, dup := seen[*slot.Driver]; dup {
					return fmt.Errorf("day %d: %s assigned to both %s and %s", day.Day, *slot.Driver, other, slot.VehiclePlate)
				}
				seen[*slot.Driver] = slot.VehiclePlate
			}
			for _, code := range slot.Staff {
				if other, dup := seen[code]; dup {
					return fmt.Errorf("day %d: %s assigned to both %s and %s", day.Day, code, other, slot.VehiclePlate)
				}
				seen[code] = slot.VehiclePlate
			}
		}
	}

	return nil
}

// ValidatePlanAgainstStatuses checks that nobody on sick or annual leave for
// the period appears anywhere in the plan.
func ValidatePlanAgainstStatuses(plan *domain.WeeklyPlan, statuses map[string]domain.ShiftStatus) error {
	check := func(day int32, code string) error {
		if statuses[code].OnLeave() {
			return fmt.Errorf("day %d: %s is on leave (%s) but appears in the plan", day, code, statuses[code])
		}
		return nil
	}

	for _, day := range plan.Days {
		for _, slot := range day.Slots {
			if slot.Driver != nil {
				if err := check(day.Day, *slot.Driver); err != nil {
					return err
				}
			}
			for _, code := range slot.Staff {
				if err := check(day.Day, code); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
