package planner

import (
	"github.com/melihkochan/personelplanlama/backend/internal/domain"
)

// workloadRecord holds the per-employee counters for one run. It lives only for
// the duration of a generation run and is never persisted; the persisted
// statistics are replayed from the finished plan instead.
type workloadRecord struct {
	totalDaysWorked    int
	totalWeight        float64
	lastWorkedDayIndex int
	typeCounts         map[domain.VehicleType]int
	partners           map[string]struct{}
	plateByDay         map[int]string
	typeByDay          map[int]domain.VehicleType
}

// WorkloadTracker accumulates workload during a single generation run. One
// tracker belongs to exactly one run: the generator creates it, mutates it, and
// drops it, so concurrent runs can never interfere through shared counters.
type WorkloadTracker struct {
	typeWeights map[domain.VehicleType]float64
	records     map[string]*workloadRecord
}

func NewWorkloadTracker(typeWeights map[domain.VehicleType]float64) *WorkloadTracker {
	return &WorkloadTracker{
		typeWeights: typeWeights,
		records:     make(map[string]*workloadRecord),
	}
}

func (t *WorkloadTracker) get(code string) *workloadRecord {
	rec, exists := t.records[code]
	if !exists {
		rec = &workloadRecord{
			lastWorkedDayIndex: -1,
			typeCounts:         make(map[domain.VehicleType]int),
			partners:           make(map[string]struct{}),
			plateByDay:         make(map[int]string),
			typeByDay:          make(map[int]domain.VehicleType),
		}
		t.records[code] = rec
	}
	return rec
}

// Record commits one assignment. partners are the staff codes co-assigned on
// the same slot, excluding the employee itself.
func (t *WorkloadTracker) Record(code string, dayIndex int, vehicle *domain.Vehicle, partners []string) {
	rec := t.get(code)
	rec.totalDaysWorked++
	rec.lastWorkedDayIndex = dayIndex
	rec.totalWeight += t.typeWeights[vehicle.Type]
	rec.typeCounts[vehicle.Type]++
	rec.plateByDay[dayIndex] = vehicle.Plate
	rec.typeByDay[dayIndex] = vehicle.Type
	for _, partner := range partners {
		rec.partners[partner] = struct{}{}
	}
}

func (t *WorkloadTracker) daysWorked(code string) int {
	if rec, exists := t.records[code]; exists {
		return rec.totalDaysWorked
	}
	return 0
}

// consecutive returns lastWorkedDayIndex+1. This is not a true longest-run
// count: it only resets implicitly through lastWorkedDayIndex. The downstream
// score terms depend on this exact numeric behavior, so it stays as is
// (consecutiveApprox).
func (t *WorkloadTracker) consecutive(code string) int {
	if rec, exists := t.records[code]; exists {
		return rec.lastWorkedDayIndex + 1
	}
	return 0
}

func (t *WorkloadTracker) lastWorkedDay(code string) int {
	if rec, exists := t.records[code]; exists {
		return rec.lastWorkedDayIndex
	}
	return -1
}

func (t *WorkloadTracker) totalWeight(code string) float64 {
	if rec, exists := t.records[code]; exists {
		return rec.totalWeight
	}
	return 0
}

func (t *WorkloadTracker) hasWorkedWith(code, partner string) bool {
	rec, exists := t.records[code]
	if !exists {
		return false
	}
	_, worked := rec.partners[partner]
	return worked
}

func (t *WorkloadTracker) plateOnDay(code string, dayIndex int) (string, bool) {
	rec, exists := t.records[code]
	if !exists {
		return "", false
	}
	plate, assigned := rec.plateByDay[dayIndex]
	return plate, assigned
}

func (t *WorkloadTracker) typeOnDay(code string, dayIndex int) (domain.VehicleType, bool) {
	rec, exists := t.records[code]
	if !exists {
		return "", false
	}
	vt, assigned := rec.typeByDay[dayIndex]
	return vt, assigned
}
