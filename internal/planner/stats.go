package planner

import (
	"sort"

	"github.com/melihkochan/personelplanlama/backend/internal/domain"
)

// ReplayStats derives the per-employee statistics by walking the finished plan.
// It deliberately reads nothing but the plan itself, so recomputing the stats
// from the same plan always yields identical results, regardless of what the
// run's tracker looked like.
func ReplayStats(plan *domain.WeeklyPlan) []domain.PersonnelStat {
	stats := make(map[string]*domain.PersonnelStat)
	workedOn := make(map[string]map[int32]struct{})

	record := func(code string, day int32, vt domain.VehicleType) {
		stat, exists := stats[code]
		if !exists {
			stat = &domain.PersonnelStat{EmployeeCode: code}
			stats[code] = stat
			workedOn[code] = make(map[int32]struct{})
		}

		stat.TotalAssignments++
		workedOn[code][day] = struct{}{}

		switch vt {
		case domain.VehicleTypeTruck:
			stat.TruckCount++
		case domain.VehicleTypePickup:
			stat.PickupCount++
		case domain.VehicleTypeVan:
			stat.VanCount++
		}
	}

	for _, day := range plan.Days {
		for _, slot := range day.Slots {
			if slot.Driver != nil {
				record(*slot.Driver, day.Day, slot.VehicleType)
			}
			for _, code := range slot.Staff {
				record(code, day.Day, slot.VehicleType)
			}
		}
	}

	result := make([]domain.PersonnelStat, 0, len(stats))
	for code, stat := range stats {
		stat.IdleDays = int32(len(plan.Days) - len(workedOn[code]))
		result = append(result, *stat)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].EmployeeCode < result[j].EmployeeCode
	})

	return result
}
