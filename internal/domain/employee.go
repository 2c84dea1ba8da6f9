package domain

import (
	"time"
)

type EmployeeRole string

const (
	RoleDriver        EmployeeRole = "DRIVER"
	RoleDeliveryStaff EmployeeRole = "DELIVERY_STAFF"
)

type ShiftStatus string

const (
	ShiftStatusDay            ShiftStatus = "DAY"
	ShiftStatusNight          ShiftStatus = "NIGHT"
	ShiftStatusEvening        ShiftStatus = "EVENING"
	ShiftStatusTempAssignment ShiftStatus = "TEMP_ASSIGNMENT"
	ShiftStatusSick           ShiftStatus = "SICK"
	ShiftStatusAnnualLeave    ShiftStatus = "ANNUAL_LEAVE"
	ShiftStatusResting        ShiftStatus = "RESTING"
	ShiftStatusUnknown        ShiftStatus = "UNKNOWN"
)

// ParseShiftStatus maps free-form status text from imports or old records onto
// the closed enum. Anything unrecognized resolves to UNKNOWN instead of failing.
func ParseShiftStatus(s string) ShiftStatus {
	switch ShiftStatus(s) {
	case ShiftStatusDay, ShiftStatusNight, ShiftStatusEvening, ShiftStatusTempAssignment,
		ShiftStatusSick, ShiftStatusAnnualLeave, ShiftStatusResting:
		return ShiftStatus(s)
	default:
		return ShiftStatusUnknown
	}
}

// OnLeave reports whether the status keeps an employee off the roster entirely.
func (s ShiftStatus) OnLeave() bool {
	return s == ShiftStatusSick || s == ShiftStatusAnnualLeave
}

type Employee struct {
	ID        int64        `json:"id"`
	Code      string       `json:"code"`
	FullName  string       `json:"fullName"`
	Role      EmployeeRole `json:"role"`
	IsActive  bool         `json:"isActive"`
	CreatedAt time.Time    `json:"createdAt"`
	Version   int32        `json:"-"`
}
