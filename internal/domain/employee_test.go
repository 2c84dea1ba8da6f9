package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseShiftStatus(t *testing.T) {
	assert.Equal(t, ShiftStatusNight, ParseShiftStatus("NIGHT"))
	assert.Equal(t, ShiftStatusAnnualLeave, ParseShiftStatus("ANNUAL_LEAVE"))

	// Everything outside the closed enum resolves to UNKNOWN, never an error
	assert.Equal(t, ShiftStatusUnknown, ParseShiftStatus(""))
	assert.Equal(t, ShiftStatusUnknown, ParseShiftStatus("night"))
	assert.Equal(t, ShiftStatusUnknown, ParseShiftStatus("HOLIDAY"))
	assert.Equal(t, ShiftStatusUnknown, ParseShiftStatus("UNKNOWN"))
}

func TestShiftStatusOnLeave(t *testing.T) {
	assert.True(t, ShiftStatusSick.OnLeave())
	assert.True(t, ShiftStatusAnnualLeave.OnLeave())

	assert.False(t, ShiftStatusNight.OnLeave())
	assert.False(t, ShiftStatusResting.OnLeave())
	assert.False(t, ShiftStatusUnknown.OnLeave())
}
