package domain

import "time"

const (
	// PlanDays is the number of working days covered by one weekly plan.
	PlanDays = 6
	// FleetSize is the number of vehicles every plan must cover.
	FleetSize = 8
	// StaffPerVehicle is the number of delivery staff every vehicle needs per day.
	StaffPerVehicle = 2
)

// PlanSlot is one (day, vehicle) assignment. Driver is nil when no driver could
// be placed; Staff holds 0 to 2 employee codes in placement order. ShortStaffed
// is set whenever fewer than StaffPerVehicle staff could be placed, it is never
// inferred from the slice length downstream.
type PlanSlot struct {
	VehiclePlate string      `json:"vehiclePlate"`
	VehicleType  VehicleType `json:"vehicleType"`
	Region       string      `json:"region"`
	Driver       *string     `json:"driver"`
	Staff        []string    `json:"staff"`
	ShortStaffed bool        `json:"shortStaffed"`
}

type PlanDay struct {
	Day   int32      `json:"day"` // 0-based day index within the week
	Slots []PlanSlot `json:"slots"`
}

type WeeklyPlan struct {
	ID            int64     `json:"id"`
	ShiftPeriodID int64     `json:"shiftPeriodID"`
	Days          []PlanDay `json:"days"`
	CreatedAt     time.Time `json:"createdAt"`
	Version       int32     `json:"-"`
}

// SlotCount returns the total number of slots in the plan.
func (p *WeeklyPlan) SlotCount() int {
	n := 0
	for _, d := range p.Days {
		n += len(d.Slots)
	}
	return n
}

// PersonnelStat is derived by replaying a finished plan, never by reading live
// planner counters, so recomputing it from the same plan always gives the same
// numbers.
type PersonnelStat struct {
	EmployeeCode     string `json:"employeeCode"`
	TotalAssignments int32  `json:"totalAssignments"`
	IdleDays         int32  `json:"idleDays"`
	TruckCount       int32  `json:"truckCount"`
	PickupCount      int32  `json:"pickupCount"`
	VanCount         int32  `json:"vanCount"`
}

type ShortageReport struct {
	DriverShortage int `json:"driverShortage"`
	StaffShortage  int `json:"staffShortage"`
}
