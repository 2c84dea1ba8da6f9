package planner

import (
	"github.com/melihkochan/personelplanlama/backend/internal/domain"
)

// Pools are the night-eligible driver and delivery staff pools for one run.
type Pools struct {
	Drivers []*domain.Employee
	Staff   []*domain.Employee
}

// Classify partitions the employee list into the pools eligible for the night
// shift. Employees without a status record for the period resolve to UNKNOWN
// and never enter the pools, a missing record means the roster was never
// confirmed for them. With ExcludeOnLeave disabled, SICK and ANNUAL_LEAVE
// employees are admitted alongside the NIGHT pool.
func Classify(employees []*domain.Employee, statuses map[string]domain.ShiftStatus, opts *Options) Pools {
	pools := Pools{
		Drivers: make([]*domain.Employee, 0),
		Staff:   make([]*domain.Employee, 0),
	}

	for _, emp := range employees {
		if !emp.IsActive {
			continue
		}

		status, exists := statuses[emp.Code]
		if !exists {
			status = domain.ShiftStatusUnknown
		}

		if opts.ExcludeOnLeave && status.OnLeave() {
			continue
		}

		eligible := status == domain.ShiftStatusNight
		if !opts.ExcludeOnLeave && status.OnLeave() {
			eligible = true
		}
		if !eligible {
			continue
		}

		switch emp.Role {
		case domain.RoleDriver:
			pools.Drivers = append(pools.Drivers, emp)
		case domain.RoleDeliveryStaff:
			pools.Staff = append(pools.Staff, emp)
		}
	}

	return pools
}
