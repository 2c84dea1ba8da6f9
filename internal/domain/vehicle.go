package domain

import "time"

type VehicleType string

const (
	VehicleTypeTruck  VehicleType = "TRUCK"
	VehicleTypePickup VehicleType = "PICKUP"
	VehicleTypeVan    VehicleType = "VAN"
)

// ValidVehicleType reports whether t is one of the closed vehicle types.
func ValidVehicleType(t VehicleType) bool {
	return t == VehicleTypeTruck || t == VehicleTypePickup || t == VehicleTypeVan
}

type Vehicle struct {
	ID                   int64       `json:"id"`
	Plate                string      `json:"plate"`
	Type                 VehicleType `json:"type"`
	Region               string      `json:"region"` // display label only, carries no planning weight
	FixedPrimaryDriver   *string     `json:"fixedPrimaryDriver"`
	FixedSecondaryDriver *string     `json:"fixedSecondaryDriver"`
	CreatedAt            time.Time   `json:"createdAt"`
	Version              int32       `json:"-"`
}
