package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melihkochan/personelplanlama/backend/internal/domain"
)

func TestFleet_SynthesizesFullFleetFromEmptyStore(t *testing.T) {
	fleet := Fleet(nil)

	require.Len(t, fleet, domain.FleetSize)
	for i, v := range fleet {
		assert.Equal(t, fleetTable[i].Plate, v.Plate)
		assert.Equal(t, fleetTable[i].Type, v.Type)
	}
}

func TestFleet_UsesStoreRecordsWhenValid(t *testing.T) {
	primary := "Driver 01"
	stored := &domain.Vehicle{
		ID:                 7,
		Plate:              fleetTable[0].Plate,
		Type:               domain.VehicleTypeTruck,
		Region:             "Anadolu",
		FixedPrimaryDriver: &primary,
	}

	fleet := Fleet([]*domain.Vehicle{stored})

	require.Len(t, fleet, domain.FleetSize)
	assert.Same(t, stored, fleet[0])
}

func TestFleet_ReplacesMalformedRecord(t *testing.T) {
	stored := &domain.Vehicle{
		Plate: fleetTable[3].Plate,
		Type:  domain.VehicleType("TRACTOR"),
	}

	fleet := Fleet([]*domain.Vehicle{stored})

	require.Len(t, fleet, domain.FleetSize)
	assert.NotSame(t, stored, fleet[3])
	assert.Equal(t, fleetTable[3].Type, fleet[3].Type)
}

func TestFleet_IgnoresUnknownPlates(t *testing.T) {
	stored := &domain.Vehicle{Plate: "06 XYZ 999", Type: domain.VehicleTypeVan}

	fleet := Fleet([]*domain.Vehicle{stored})

	require.Len(t, fleet, domain.FleetSize)
	for _, v := range fleet {
		assert.NotEqual(t, "06 XYZ 999", v.Plate)
	}
}

func TestFleet_TypeMixIsThreeThreeTwo(t *testing.T) {
	counts := map[domain.VehicleType]int{}
	for _, v := range Fleet(nil) {
		counts[v.Type]++
	}

	assert.Equal(t, 3, counts[domain.VehicleTypeTruck])
	assert.Equal(t, 3, counts[domain.VehicleTypePickup])
	assert.Equal(t, 2, counts[domain.VehicleTypeVan])
}
