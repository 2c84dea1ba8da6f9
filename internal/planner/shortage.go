package planner

import (
	"github.com/melihkochan/personelplanlama/backend/internal/domain"
)

// Shortage compares the fleet's headcount need against the eligible pools.
// Pure arithmetic: every vehicle needs one driver and StaffPerVehicle staff.
func Shortage(fleetSize, eligibleDrivers, eligibleStaff int) domain.ShortageReport {
	report := domain.ShortageReport{}

	if deficit := fleetSize - eligibleDrivers; deficit > 0 {
		report.DriverShortage = deficit
	}
	if deficit := fleetSize*domain.StaffPerVehicle - eligibleStaff; deficit > 0 {
		report.StaffShortage = deficit
	}

	return report
}
