package planner

import (
	"math/rand"

	"github.com/melihkochan/personelplanlama/backend/internal/domain"
)

// Options control one generation run. Rand is the only source of randomness in
// the whole engine; the default fixed seed makes runs reproducible, callers that
// want cross-run variety inject their own source.
type Options struct {
	ExcludeOnLeave          bool
	ConsiderRotationRules   bool
	EnableWorkloadBalancing bool
	TypeWeights             map[domain.VehicleType]float64
	Rand                    *rand.Rand
}

func DefaultOptions() *Options {
	return &Options{
		ExcludeOnLeave:          true,
		ConsiderRotationRules:   true,
		EnableWorkloadBalancing: true,
		TypeWeights: map[domain.VehicleType]float64{
			domain.VehicleTypeTruck:  1.5,
			domain.VehicleTypePickup: 1.2,
			domain.VehicleTypeVan:    1.0,
		},
		Rand: rand.New(rand.NewSource(1)),
	}
}
