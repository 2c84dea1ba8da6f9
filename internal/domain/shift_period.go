package domain

import "time"

// ShiftPeriod names one planning week. Shift statuses are recorded per
// (period, employee) and looked up by employee code when a plan is generated.
type ShiftPeriod struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	WeekStart time.Time `json:"weekStart"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}

type ShiftStatusEntry struct {
	EmployeeCode string      `json:"employeeCode"`
	Status       ShiftStatus `json:"status"`
}
