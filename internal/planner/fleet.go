package planner

import (
	"github.com/melihkochan/personelplanlama/backend/internal/domain"
)

// fleetTable is the canonical night fleet. Its order is load-bearing: the
// generator walks vehicles in exactly this sequence within every day, and the
// workload committed for an earlier vehicle changes the scores seen by the next
// one. Keep this a slice, never a map.
var fleetTable = []struct {
	Plate string
	Type  domain.VehicleType
}{
	{"34 NKT 101", domain.VehicleTypeTruck},
	{"34 NKT 102", domain.VehicleTypeTruck},
	{"34 NKT 103", domain.VehicleTypeTruck},
	{"34 PKA 201", domain.VehicleTypePickup},
	{"34 PKA 202", domain.VehicleTypePickup},
	{"34 PKA 203", domain.VehicleTypePickup},
	{"34 PNL 301", domain.VehicleTypeVan},
	{"34 PNL 302", domain.VehicleTypeVan},
}

// Fleet resolves the canonical fleet against the vehicle records from the
// store. A record with an unrecognized type, or no record at all for a known
// plate, is replaced by a synthesized descriptor from fleetTable so the result
// always holds exactly domain.FleetSize vehicles in canonical order.
func Fleet(vehicles []*domain.Vehicle) []*domain.Vehicle {
	byPlate := make(map[string]*domain.Vehicle, len(vehicles))
	for _, v := range vehicles {
		byPlate[v.Plate] = v
	}

	fleet := make([]*domain.Vehicle, 0, len(fleetTable))
	for _, entry := range fleetTable {
		if v, exists := byPlate[entry.Plate]; exists && domain.ValidVehicleType(v.Type) {
			fleet = append(fleet, v)
			continue
		}
		fleet = append(fleet, &domain.Vehicle{
			Plate: entry.Plate,
			Type:  entry.Type,
		})
	}

	return fleet
}
