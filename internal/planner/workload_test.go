package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/melihkochan/personelplanlama/backend/internal/domain"
)

func testTracker() *WorkloadTracker {
	return NewWorkloadTracker(DefaultOptions().TypeWeights)
}

func TestWorkloadTracker_RecordAccumulates(t *testing.T) {
	tracker := testTracker()
	truck := &domain.Vehicle{Plate: "34 NKT 101", Type: domain.VehicleTypeTruck}
	van := &domain.Vehicle{Plate: "34 PNL 301", Type: domain.VehicleTypeVan}

	tracker.Record("D01", 0, truck, []string{"S01", "S02"})
	tracker.Record("D01", 2, van, nil)

	assert.Equal(t, 2, tracker.daysWorked("D01"))
	assert.Equal(t, 2, tracker.lastWorkedDay("D01"))
	assert.InDelta(t, 2.5, tracker.totalWeight("D01"), 1e-9)
	assert.True(t, tracker.hasWorkedWith("D01", "S01"))
	assert.True(t, tracker.hasWorkedWith("D01", "S02"))
	assert.False(t, tracker.hasWorkedWith("D01", "S03"))

	plate, assigned := tracker.plateOnDay("D01", 2)
	assert.True(t, assigned)
	assert.Equal(t, "34 PNL 301", plate)

	_, assigned = tracker.plateOnDay("D01", 1)
	assert.False(t, assigned)
}

func TestWorkloadTracker_UnknownEmployeeDefaults(t *testing.T) {
	tracker := testTracker()

	assert.Equal(t, 0, tracker.daysWorked("D99"))
	assert.Equal(t, -1, tracker.lastWorkedDay("D99"))
	assert.Equal(t, 0, tracker.consecutive("D99"))
	assert.Zero(t, tracker.totalWeight("D99"))
}

// consecutive is lastWorkedDayIndex+1, not a longest-run count. An employee
// who worked only day 4 still reads 5. That numeric behavior feeds the score
// terms and must not be "fixed" in isolation.
func TestWorkloadTracker_ConsecutiveIsApproximation(t *testing.T) {
	tracker := testTracker()
	truck := &domain.Vehicle{Plate: "34 NKT 101", Type: domain.VehicleTypeTruck}

	tracker.Record("D01", 4, truck, nil)

	assert.Equal(t, 5, tracker.consecutive("D01"))
}
