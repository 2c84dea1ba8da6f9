package planner

import (
	"fmt"
	"math/rand"

	"github.com/melihkochan/personelplanlama/backend/internal/domain"
)

func testOptions() *Options {
	opts := DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(42))
	return opts
}

func makeDrivers(n int) []*domain.Employee {
	drivers := make([]*domain.Employee, 0, n)
	for i := 1; i <= n; i++ {
		drivers = append(drivers, &domain.Employee{
			ID:       int64(i),
			Code:     fmt.Sprintf("D%02d", i),
			FullName: fmt.Sprintf("Driver %02d", i),
			Role:     domain.RoleDriver,
			IsActive: true,
		})
	}
	return drivers
}

func makeStaff(n int) []*domain.Employee {
	staff := make([]*domain.Employee, 0, n)
	for i := 1; i <= n; i++ {
		staff = append(staff, &domain.Employee{
			ID:       int64(100 + i),
			Code:     fmt.Sprintf("S%02d", i),
			FullName: fmt.Sprintf("Staff %02d", i),
			Role:     domain.RoleDeliveryStaff,
			IsActive: true,
		})
	}
	return staff
}

func nightStatuses(employees []*domain.Employee) map[string]domain.ShiftStatus {
	statuses := make(map[string]domain.ShiftStatus, len(employees))
	for _, emp := range employees {
		statuses[emp.Code] = domain.ShiftStatusNight
	}
	return statuses
}

func combine(groups ...[]*domain.Employee) []*domain.Employee {
	var all []*domain.Employee
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}
