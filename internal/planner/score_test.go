package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melihkochan/personelplanlama/backend/internal/domain"
)

func testScorer() *scorer {
	return &scorer{opts: testOptions(), tracker: testTracker()}
}

func TestScorer_TypeAdjacencyMatrix(t *testing.T) {
	cases := []struct {
		prev, next domain.VehicleType
		violation  bool
	}{
		{domain.VehicleTypeTruck, domain.VehicleTypeTruck, true},
		{domain.VehicleTypePickup, domain.VehicleTypePickup, true},
		{domain.VehicleTypeVan, domain.VehicleTypeVan, true},
		{domain.VehicleTypePickup, domain.VehicleTypeVan, true},
		{domain.VehicleTypeVan, domain.VehicleTypePickup, true},
		{domain.VehicleTypeTruck, domain.VehicleTypePickup, false},
		{domain.VehicleTypeTruck, domain.VehicleTypeVan, false},
		{domain.VehicleTypePickup, domain.VehicleTypeTruck, false},
		{domain.VehicleTypeVan, domain.VehicleTypeTruck, false},
	}

	for _, tc := range cases {
		sc := testScorer()
		sc.tracker.Record("D01", 0, &domain.Vehicle{Plate: "X", Type: tc.prev}, nil)

		got := sc.violatesTypeAdjacency("D01", 1, &domain.Vehicle{Plate: "Y", Type: tc.next})
		assert.Equal(t, tc.violation, got, "%s -> %s", tc.prev, tc.next)
	}
}

func TestScorer_NoAdjacencyViolationWithoutPriorDay(t *testing.T) {
	sc := testScorer()
	truck := &domain.Vehicle{Plate: "34 NKT 101", Type: domain.VehicleTypeTruck}

	assert.False(t, sc.violatesTypeAdjacency("D01", 0, truck))

	// A gap day clears the adjacency rule as well.
	sc.tracker.Record("D01", 0, truck, nil)
	assert.False(t, sc.violatesTypeAdjacency("D01", 2, truck))
}

func TestScorer_SamePlateNeedsBothPrecedingDays(t *testing.T) {
	truck := &domain.Vehicle{Plate: "34 NKT 101", Type: domain.VehicleTypeTruck}

	sc := testScorer()
	sc.tracker.Record("D01", 0, truck, nil)
	assert.False(t, sc.violatesSamePlate("D01", 1, truck))

	sc.tracker.Record("D01", 1, truck, nil)
	assert.True(t, sc.violatesSamePlate("D01", 2, truck))
}

func TestScorer_DriverHardExclusion(t *testing.T) {
	sc := testScorer()
	truck := &domain.Vehicle{Plate: "34 NKT 101", Type: domain.VehicleTypeTruck}
	drivers := makeDrivers(2)
	sc.tracker.Record("D01", 0, truck, nil)

	ranked := sc.rank(slotDriver, 1, truck, drivers, nil)

	require.Len(t, ranked, 1)
	assert.Equal(t, "D02", ranked[0].Code)
}

func TestScorer_StaffOnlyPenalized(t *testing.T) {
	sc := testScorer()
	truck := &domain.Vehicle{Plate: "34 NKT 101", Type: domain.VehicleTypeTruck}
	staff := makeStaff(2)
	sc.tracker.Record("S01", 0, truck, nil)

	ranked := sc.rank(slotStaff, 1, truck, staff, nil)

	// The violator stays in the ranking but loses the top spot.
	require.Len(t, ranked, 2)
	assert.Equal(t, "S02", ranked[0].Code)
}

func TestScorer_LastPenalizedStaffStillSelected(t *testing.T) {
	sc := testScorer()
	truck := &domain.Vehicle{Plate: "34 NKT 101", Type: domain.VehicleTypeTruck}
	staff := makeStaff(1)
	sc.tracker.Record("S01", 0, truck, nil)

	ranked := sc.rank(slotStaff, 1, truck, staff, nil)

	require.Len(t, ranked, 1)
	assert.Equal(t, "S01", ranked[0].Code)
}

func TestScorer_PartnerDiversity(t *testing.T) {
	sc := testScorer()
	van := &domain.Vehicle{Plate: "34 PNL 301", Type: domain.VehicleTypeVan}
	staff := makeStaff(2)

	// S01 already worked with S03 this week; S02 has not.
	sc.tracker.Record("S01", 0, van, []string{"S03"})
	sc.tracker.Record("S02", 0, van, []string{"S04"})

	ranked := sc.rank(slotStaff, 2, van, staff, []string{"S03"})

	require.Len(t, ranked, 2)
	assert.Equal(t, "S02", ranked[0].Code)
}

func TestScorer_EmptyInputYieldsEmptyRanking(t *testing.T) {
	sc := testScorer()
	truck := &domain.Vehicle{Plate: "34 NKT 101", Type: domain.VehicleTypeTruck}

	assert.Empty(t, sc.rank(slotDriver, 0, truck, nil, nil))
	assert.Empty(t, sc.rank(slotStaff, 0, truck, []*domain.Employee{}, nil))
}

func TestScorer_RotationRulesToggle(t *testing.T) {
	sc := testScorer()
	sc.opts.ConsiderRotationRules = false
	truck := &domain.Vehicle{Plate: "34 NKT 101", Type: domain.VehicleTypeTruck}
	drivers := makeDrivers(2)
	sc.tracker.Record("D01", 0, truck, nil)

	ranked := sc.rank(slotDriver, 1, truck, drivers, nil)

	assert.Len(t, ranked, 2)
}
