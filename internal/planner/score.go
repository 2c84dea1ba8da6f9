package planner

import (
	"sort"

	"github.com/melihkochan/personelplanlama/backend/internal/domain"
)

type slotRole int

const (
	slotDriver slotRole = iota
	slotStaff
)

// Score weights. Higher total score means more preferred.
const (
	weightDaysWorked  = -10.0
	weightLoad        = -5.0
	weightConsecutive = -8.0
	weightRest        = 3.0

	partnerNewBonus      = 100.0
	partnerRepeatPenalty = -50.0

	typeAdjacencyPenalty = -1000.0
	samePlatePenalty     = -2000.0

	// jitterBound keeps the jitter strictly below the smallest meaningful score
	// step, so it only ever breaks exact ties.
	jitterBound = 0.5
)

type scorer struct {
	opts    *Options
	tracker *WorkloadTracker
}

// violatesTypeAdjacency reports a forbidden vehicle-type transition from the
// previous day. Only transitions toward TRUCK, or from TRUCK to another type,
// are allowed: TRUCK->TRUCK, PICKUP->PICKUP, VAN->VAN, PICKUP->VAN and
// VAN->PICKUP are all violations.
func (s *scorer) violatesTypeAdjacency(code string, dayIndex int, vehicle *domain.Vehicle) bool {
	prevType, assigned := s.tracker.typeOnDay(code, dayIndex-1)
	if !assigned {
		return false
	}
	return (prevType == domain.VehicleTypeTruck) == (vehicle.Type == domain.VehicleTypeTruck)
}

// violatesSamePlate reports whether the employee had this exact plate on each
// of the two immediately preceding days.
func (s *scorer) violatesSamePlate(code string, dayIndex int, vehicle *domain.Vehicle) bool {
	prev, assignedPrev := s.tracker.plateOnDay(code, dayIndex-1)
	before, assignedBefore := s.tracker.plateOnDay(code, dayIndex-2)
	return assignedPrev && assignedBefore && prev == vehicle.Plate && before == vehicle.Plate
}

// passesHardRules is the driver-side exclusion check. Staff candidates are
// never hard-excluded, their slots are mandatory.
func (s *scorer) passesHardRules(code string, dayIndex int, vehicle *domain.Vehicle) bool {
	if !s.opts.ConsiderRotationRules {
		return true
	}
	if s.violatesTypeAdjacency(code, dayIndex, vehicle) {
		return false
	}
	if s.violatesSamePlate(code, dayIndex, vehicle) {
		return false
	}
	return true
}

func (s *scorer) score(role slotRole, code string, dayIndex int, vehicle *domain.Vehicle, placed []string) float64 {
	var score float64

	if s.opts.EnableWorkloadBalancing {
		score += weightDaysWorked * float64(s.tracker.daysWorked(code))
		score += weightLoad * s.tracker.totalWeight(code)
		score += weightConsecutive * float64(s.tracker.consecutive(code))
		score += weightRest * float64(dayIndex-s.tracker.lastWorkedDay(code))

		if role == slotStaff {
			for _, other := range placed {
				if s.tracker.hasWorkedWith(code, other) {
					score += partnerRepeatPenalty
				} else {
					score += partnerNewBonus
				}
			}
		}
	}

	if role == slotStaff && s.opts.ConsiderRotationRules {
		if s.violatesTypeAdjacency(code, dayIndex, vehicle) {
			score += typeAdjacencyPenalty
		}
		if s.violatesSamePlate(code, dayIndex, vehicle) {
			score += samePlatePenalty
		}
	}

	score += s.opts.Rand.Float64() * jitterBound

	return score
}

// rank orders candidates best first. Drivers failing the hard rules are removed
// entirely; staff only collect penalties, so the least-penalized candidate is
// still returned when every alternative is in violation. An empty candidate
// list yields an empty ranking, the caller treats that as "no candidate".
func (s *scorer) rank(role slotRole, dayIndex int, vehicle *domain.Vehicle, candidates []*domain.Employee, placed []string) []*domain.Employee {
	ranked := make([]*domain.Employee, 0, len(candidates))
	scores := make(map[string]float64, len(candidates))

	for _, cand := range candidates {
		if role == slotDriver && !s.passesHardRules(cand.Code, dayIndex, vehicle) {
			continue
		}
		scores[cand.Code] = s.score(role, cand.Code, dayIndex, vehicle, placed)
		ranked = append(ranked, cand)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i].Code] > scores[ranked[j].Code]
	})

	return ranked
}
