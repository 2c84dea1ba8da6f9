package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/melihkochan/personelplanlama/backend/internal/domain"
)

func TestShortage(t *testing.T) {
	cases := []struct {
		name                           string
		fleet, drivers, staff          int
		wantDriverShort, wantStaffShort int
	}{
		{"drivers short", 8, 5, 30, 3, 0},
		{"staff short", 8, 10, 11, 0, 5},
		{"both short", 8, 0, 0, 8, 16},
		{"fully covered", 8, 8, 16, 0, 0},
		{"surplus never negative", 8, 20, 40, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Shortage(tc.fleet, tc.drivers, tc.staff)
			assert.Equal(t, domain.ShortageReport{
				DriverShortage: tc.wantDriverShort,
				StaffShortage:  tc.wantStaffShort,
			}, got)
		})
	}
}
