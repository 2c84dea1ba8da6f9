package planner

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melihkochan/personelplanlama/backend/internal/domain"
)

func generatePlan(t *testing.T, opts *Options, employees []*domain.Employee, statuses map[string]domain.ShiftStatus, vehicles []*domain.Vehicle) *domain.WeeklyPlan {
	t.Helper()

	gen, err := New(opts, employees, statuses, vehicles)
	require.NoError(t, err)

	plan, err := gen.Generate()
	require.NoError(t, err)
	return plan
}

func assertNoDailyDuplicates(t *testing.T, plan *domain.WeeklyPlan) {
	t.Helper()

	for _, day := range plan.Days {
		seen := make(map[string]struct{})
		for _, slot := range day.Slots {
			if slot.Driver != nil {
				_, dup := seen[*slot.Driver]
				assert.False(t, dup, "day %d: driver %s placed twice", day.Day, *slot.Driver)
				seen[*slot.Driver] = struct{}{}
			}
			for _, code := range slot.Staff {
				_, dup := seen[code]
				assert.False(t, dup, "day %d: staff %s placed twice", day.Day, code)
				seen[code] = struct{}{}
			}
		}
	}
}

func TestGenerate_PlanShape(t *testing.T) {
	all := combine(makeDrivers(10), makeStaff(20))
	plan := generatePlan(t, testOptions(), all, nightStatuses(all), nil)

	require.Len(t, plan.Days, domain.PlanDays)
	assert.Equal(t, domain.PlanDays*domain.FleetSize, plan.SlotCount())
	for _, day := range plan.Days {
		require.Len(t, day.Slots, domain.FleetSize)
		for _, slot := range day.Slots {
			assert.LessOrEqual(t, len(slot.Staff), domain.StaffPerVehicle)
		}
	}
}

// 10 drivers and 20 staff against the 3/3/2 fleet: every slot gets a driver
// and a full staff pair, and no one is placed twice in a day.
func TestGenerate_FullCoverageScenario(t *testing.T) {
	all := combine(makeDrivers(10), makeStaff(20))
	plan := generatePlan(t, testOptions(), all, nightStatuses(all), nil)

	for _, day := range plan.Days {
		for _, slot := range day.Slots {
			assert.NotNil(t, slot.Driver, "day %d vehicle %s has no driver", day.Day, slot.VehiclePlate)
			assert.Len(t, slot.Staff, domain.StaffPerVehicle)
			assert.False(t, slot.ShortStaffed)
		}
	}

	assertNoDailyDuplicates(t, plan)
}

func TestGenerate_OnLeaveNeverAppears(t *testing.T) {
	drivers := makeDrivers(12)
	staff := makeStaff(22)
	all := combine(drivers, staff)
	statuses := nightStatuses(all)
	statuses["D03"] = domain.ShiftStatusSick
	statuses["S05"] = domain.ShiftStatusAnnualLeave

	plan := generatePlan(t, testOptions(), all, statuses, nil)

	for _, day := range plan.Days {
		for _, slot := range day.Slots {
			if slot.Driver != nil {
				assert.NotEqual(t, "D03", *slot.Driver)
			}
			assert.NotContains(t, slot.Staff, "D03")
			assert.NotContains(t, slot.Staff, "S05")
		}
	}
}

// Every vehicle carries a distinct eligible fixed primary driver: the fixed
// binding must win on all 48 slots and rotation must never touch those drivers.
func TestGenerate_FixedDriversAlwaysWin(t *testing.T) {
	drivers := makeDrivers(8)
	staff := makeStaff(20)
	all := combine(drivers, staff)

	vehicles := make([]*domain.Vehicle, 0, domain.FleetSize)
	for i, entry := range fleetTable {
		name := drivers[i].FullName
		vehicles = append(vehicles, &domain.Vehicle{
			Plate:              entry.Plate,
			Type:               entry.Type,
			FixedPrimaryDriver: &name,
		})
	}

	plan := generatePlan(t, testOptions(), all, nightStatuses(all), vehicles)

	for _, day := range plan.Days {
		for vi, slot := range day.Slots {
			require.NotNil(t, slot.Driver)
			assert.Equal(t, drivers[vi].Code, *slot.Driver,
				"day %d vehicle %s not driven by its fixed driver", day.Day, slot.VehiclePlate)
		}
	}
}

func TestGenerate_IneligibleFixedDriverFallsThrough(t *testing.T) {
	drivers := makeDrivers(10)
	staff := makeStaff(20)
	all := combine(drivers, staff)

	ghost := "Nobody Known"
	vehicles := Fleet(nil)
	vehicles[0].FixedPrimaryDriver = &ghost

	plan := generatePlan(t, testOptions(), all, nightStatuses(all), vehicles)

	// The slot still gets a rotation driver; the bad binding is not an error.
	for _, day := range plan.Days {
		assert.NotNil(t, day.Slots[0].Driver)
	}
}

// With a deep driver pool a compliant candidate always exists, so the hard
// rotation rules must hold everywhere: no repeated type class on consecutive
// days and no plate held three days running.
func TestGenerate_RotationRulesHoldWithDeepPool(t *testing.T) {
	all := combine(makeDrivers(20), makeStaff(20))
	plan := generatePlan(t, testOptions(), all, nightStatuses(all), nil)

	driverDayType := make(map[string]map[int32]domain.VehicleType)
	driverDayPlate := make(map[string]map[int32]string)
	for _, day := range plan.Days {
		for _, slot := range day.Slots {
			if slot.Driver == nil {
				continue
			}
			if driverDayType[*slot.Driver] == nil {
				driverDayType[*slot.Driver] = make(map[int32]domain.VehicleType)
				driverDayPlate[*slot.Driver] = make(map[int32]string)
			}
			driverDayType[*slot.Driver][day.Day] = slot.VehicleType
			driverDayPlate[*slot.Driver][day.Day] = slot.VehiclePlate
		}
	}

	for code, byDay := range driverDayType {
		for day := int32(1); day < domain.PlanDays; day++ {
			prev, hadPrev := byDay[day-1]
			cur, hasCur := byDay[day]
			if !hadPrev || !hasCur {
				continue
			}
			assert.False(t, (prev == domain.VehicleTypeTruck) == (cur == domain.VehicleTypeTruck),
				"driver %s: forbidden transition %s -> %s on day %d", code, prev, cur, day)
		}
		for day := int32(2); day < domain.PlanDays; day++ {
			plates := driverDayPlate[code]
			if plates[day] != "" && plates[day] == plates[day-1] && plates[day] == plates[day-2] {
				t.Errorf("driver %s kept plate %s for three consecutive days", code, plates[day])
			}
		}
	}
}

func TestGenerate_EmptyPoolsProduceEmptyPlanNotError(t *testing.T) {
	plan := generatePlan(t, testOptions(), nil, nil, nil)

	assert.Equal(t, domain.PlanDays*domain.FleetSize, plan.SlotCount())
	for _, day := range plan.Days {
		for _, slot := range day.Slots {
			assert.Nil(t, slot.Driver)
			assert.Empty(t, slot.Staff)
			assert.True(t, slot.ShortStaffed)
		}
	}
}

func TestGenerate_ShortStaffedFlagged(t *testing.T) {
	all := combine(makeDrivers(10), makeStaff(9))
	plan := generatePlan(t, testOptions(), all, nightStatuses(all), nil)

	// 9 staff against 16 slots per day: the tail of every day runs short.
	for _, day := range plan.Days {
		short := 0
		placed := 0
		for _, slot := range day.Slots {
			placed += len(slot.Staff)
			if slot.ShortStaffed {
				short++
			}
		}
		assert.Equal(t, 9, placed, "all available staff should be placed on day %d", day.Day)
		assert.NotZero(t, short)
	}
}

func TestGenerate_SameSeedSamePlan(t *testing.T) {
	all := combine(makeDrivers(10), makeStaff(20))
	statuses := nightStatuses(all)

	optsA := testOptions()
	optsA.Rand = rand.New(rand.NewSource(7))
	optsB := testOptions()
	optsB.Rand = rand.New(rand.NewSource(7))

	planA := generatePlan(t, optsA, all, statuses, nil)
	planB := generatePlan(t, optsB, all, statuses, nil)

	assert.Equal(t, planA, planB)
}

func TestGenerate_WorkloadSpreadsAcrossDrivers(t *testing.T) {
	all := combine(makeDrivers(16), makeStaff(20))
	plan := generatePlan(t, testOptions(), all, nightStatuses(all), nil)

	stats := ReplayStats(plan)
	var min, max int32 = 1 << 30, 0
	for _, stat := range stats {
		if stat.EmployeeCode[0] != 'D' {
			continue
		}
		if stat.TotalAssignments < min {
			min = stat.TotalAssignments
		}
		if stat.TotalAssignments > max {
			max = stat.TotalAssignments
		}
	}

	// 48 driver slots over 16 drivers averages 3; balancing keeps the spread tight.
	assert.LessOrEqual(t, max-min, int32(2))
}

func TestReplayStats_PureAndRepeatable(t *testing.T) {
	all := combine(makeDrivers(10), makeStaff(20))
	plan := generatePlan(t, testOptions(), all, nightStatuses(all), nil)

	first := ReplayStats(plan)
	second := ReplayStats(plan)

	assert.Equal(t, first, second)
}

func TestReplayStats_CountsFromPlanAlone(t *testing.T) {
	driver := "D01"
	plan := &domain.WeeklyPlan{
		Days: []domain.PlanDay{
			{Day: 0, Slots: []domain.PlanSlot{{
				VehiclePlate: "34 NKT 101", VehicleType: domain.VehicleTypeTruck,
				Driver: &driver, Staff: []string{"S01", "S02"},
			}}},
			{Day: 1, Slots: []domain.PlanSlot{{
				VehiclePlate: "34 PNL 301", VehicleType: domain.VehicleTypeVan,
				Driver: &driver, Staff: []string{"S01"},
			}}},
			{Day: 2, Slots: []domain.PlanSlot{{
				VehiclePlate: "34 PKA 201", VehicleType: domain.VehicleTypePickup,
			}}},
		},
	}

	stats := ReplayStats(plan)

	require.Len(t, stats, 3)
	assert.Equal(t, domain.PersonnelStat{
		EmployeeCode: "D01", TotalAssignments: 2, IdleDays: 1, TruckCount: 1, VanCount: 1,
	}, stats[0])
	assert.Equal(t, domain.PersonnelStat{
		EmployeeCode: "S01", TotalAssignments: 2, IdleDays: 1, TruckCount: 1, VanCount: 1,
	}, stats[1])
	assert.Equal(t, domain.PersonnelStat{
		EmployeeCode: "S02", TotalAssignments: 1, IdleDays: 2, TruckCount: 1,
	}, stats[2])
}
