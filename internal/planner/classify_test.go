package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/melihkochan/personelplanlama/backend/internal/domain"
)

func TestClassify_PartitionsByRole(t *testing.T) {
	drivers := makeDrivers(3)
	staff := makeStaff(5)
	all := combine(drivers, staff)

	pools := Classify(all, nightStatuses(all), testOptions())

	assert.Len(t, pools.Drivers, 3)
	assert.Len(t, pools.Staff, 5)
}

func TestClassify_ExcludesNonNightStatuses(t *testing.T) {
	drivers := makeDrivers(4)
	statuses := nightStatuses(drivers)
	statuses["D01"] = domain.ShiftStatusDay
	statuses["D02"] = domain.ShiftStatusEvening
	statuses["D03"] = domain.ShiftStatusResting

	pools := Classify(drivers, statuses, testOptions())

	assert.Len(t, pools.Drivers, 1)
	assert.Equal(t, "D04", pools.Drivers[0].Code)
}

func TestClassify_ExcludesOnLeave(t *testing.T) {
	drivers := makeDrivers(3)
	statuses := nightStatuses(drivers)
	statuses["D01"] = domain.ShiftStatusSick
	statuses["D02"] = domain.ShiftStatusAnnualLeave

	pools := Classify(drivers, statuses, testOptions())

	assert.Len(t, pools.Drivers, 1)
	assert.Equal(t, "D03", pools.Drivers[0].Code)
}

func TestClassify_OnLeaveAdmittedWhenFilterDisabled(t *testing.T) {
	drivers := makeDrivers(3)
	statuses := nightStatuses(drivers)
	statuses["D01"] = domain.ShiftStatusSick
	statuses["D02"] = domain.ShiftStatusAnnualLeave

	opts := testOptions()
	opts.ExcludeOnLeave = false
	pools := Classify(drivers, statuses, opts)

	assert.Len(t, pools.Drivers, 3)
}

func TestClassify_MissingRecordResolvesToUnknownAndExcludes(t *testing.T) {
	drivers := makeDrivers(2)
	statuses := map[string]domain.ShiftStatus{"D01": domain.ShiftStatusNight}

	pools := Classify(drivers, statuses, testOptions())

	assert.Len(t, pools.Drivers, 1)
	assert.Equal(t, "D01", pools.Drivers[0].Code)
}

func TestClassify_SkipsInactiveEmployees(t *testing.T) {
	drivers := makeDrivers(2)
	drivers[0].IsActive = false

	pools := Classify(drivers, nightStatuses(drivers), testOptions())

	assert.Len(t, pools.Drivers, 1)
	assert.Equal(t, "D02", pools.Drivers[0].Code)
}
