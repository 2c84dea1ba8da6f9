package planner

import (
	"fmt"
	"sort"

	"github.com/melihkochan/personelplanlama/backend/internal/domain"
)

// Generator produces one weekly plan. The 48 (day, vehicle) decisions run
// day-major, vehicle-minor and strictly in order: every decision is committed
// to the run's WorkloadTracker before the next one starts, so later vehicles
// within the same day already see the updated load. No parallelism, no
// backtracking.
type Generator struct {
	opts       *Options
	pools      Pools
	fleet      []*domain.Vehicle
	fixedNames map[string]struct{}
}

func New(opts *Options, employees []*domain.Employee, statuses map[string]domain.ShiftStatus, vehicles []*domain.Vehicle) (*Generator, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	fleet := Fleet(vehicles)
	// The registry guarantees exactly FleetSize vehicles; refuse to run on
	// anything else rather than producing a structurally broken plan.
	if len(fleet) != domain.FleetSize {
		return nil, fmt.Errorf("fleet has %d vehicles, expected %d", len(fleet), domain.FleetSize)
	}

	fixedNames := make(map[string]struct{})
	for _, v := range fleet {
		if v.FixedPrimaryDriver != nil {
			fixedNames[*v.FixedPrimaryDriver] = struct{}{}
		}
		if v.FixedSecondaryDriver != nil {
			fixedNames[*v.FixedSecondaryDriver] = struct{}{}
		}
	}

	return &Generator{
		opts:       opts,
		pools:      Classify(employees, statuses, opts),
		fleet:      fleet,
		fixedNames: fixedNames,
	}, nil
}

// Pools exposes the classified night pools of this run, the shortage report is
// computed from their sizes.
func (g *Generator) Pools() Pools {
	return g.pools
}

// Generate runs the full week. Each call owns a fresh WorkloadTracker, so a
// Generator can drive several independent runs without state leaking between
// them.
func (g *Generator) Generate() (*domain.WeeklyPlan, error) {
	tracker := NewWorkloadTracker(g.opts.TypeWeights)
	sc := &scorer{opts: g.opts, tracker: tracker}

	driversByName := make(map[string]*domain.Employee, len(g.pools.Drivers))
	for _, d := range g.pools.Drivers {
		driversByName[d.FullName] = d
	}

	plan := &domain.WeeklyPlan{
		Days: make([]domain.PlanDay, domain.PlanDays),
	}

	for day := 0; day < domain.PlanDays; day++ {
		usedToday := make(map[string]struct{})
		slots := make([]domain.PlanSlot, 0, len(g.fleet))

		for vi, vehicle := range g.fleet {
			slot := domain.PlanSlot{
				VehiclePlate: vehicle.Plate,
				VehicleType:  vehicle.Type,
				Region:       vehicle.Region,
				Staff:        make([]string, 0, domain.StaffPerVehicle),
			}

			driver := g.fixedDriver(vehicle, driversByName, usedToday)
			if driver == nil {
				driver = g.rotationDriver(sc, tracker, day, vehicle, usedToday)
			}
			if driver == nil {
				driver = g.fallbackDriver(day, vi, usedToday)
			}
			if driver != nil {
				code := driver.Code
				slot.Driver = &code
				usedToday[code] = struct{}{}
			}

			for i := 0; i < domain.StaffPerVehicle; i++ {
				placed := make([]string, 0, domain.StaffPerVehicle)
				if slot.Driver != nil {
					placed = append(placed, *slot.Driver)
				}
				placed = append(placed, slot.Staff...)

				candidates := g.availableStaff(usedToday)
				ranked := sc.rank(slotStaff, day, vehicle, candidates, placed)
				if len(ranked) == 0 {
					break
				}

				pick := ranked[0]
				slot.Staff = append(slot.Staff, pick.Code)
				usedToday[pick.Code] = struct{}{}
			}

			// Fewer than the required staff is recorded, never hidden.
			slot.ShortStaffed = len(slot.Staff) < domain.StaffPerVehicle

			g.commit(tracker, day, vehicle, &slot)
			slots = append(slots, slot)
		}

		plan.Days[day] = domain.PlanDay{
			Day:   int32(day),
			Slots: slots,
		}
	}

	return plan, nil
}

// fixedDriver returns the vehicle's configured primary, then secondary, fixed
// driver when that driver is in the eligible pool and unused today. A fixed
// driver always beats rotation. A configured name missing from the pool falls
// through silently.
func (g *Generator) fixedDriver(vehicle *domain.Vehicle, byName map[string]*domain.Employee, usedToday map[string]struct{}) *domain.Employee {
	for _, name := range []*string{vehicle.FixedPrimaryDriver, vehicle.FixedSecondaryDriver} {
		if name == nil {
			continue
		}
		driver, eligible := byName[*name]
		if !eligible {
			continue
		}
		if _, used := usedToday[driver.Code]; used {
			continue
		}
		return driver
	}
	return nil
}

// rotationDriver picks from drivers that are not bound to any vehicle, not used
// today, and pass the hard rotation rules. Least days worked this week wins;
// the scorer's ordering breaks ties among equals.
func (g *Generator) rotationDriver(sc *scorer, tracker *WorkloadTracker, day int, vehicle *domain.Vehicle, usedToday map[string]struct{}) *domain.Employee {
	candidates := make([]*domain.Employee, 0, len(g.pools.Drivers))
	for _, d := range g.pools.Drivers {
		if _, fixed := g.fixedNames[d.FullName]; fixed {
			continue
		}
		if _, used := usedToday[d.Code]; used {
			continue
		}
		candidates = append(candidates, d)
	}

	ranked := sc.rank(slotDriver, day, vehicle, candidates, nil)
	if len(ranked) == 0 {
		return nil
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return tracker.daysWorked(ranked[i].Code) < tracker.daysWorked(ranked[j].Code)
	})

	return ranked[0]
}

// fallbackDriver guarantees a driver whenever one is physically available: any
// driver not used today, chosen round-robin over the step index so repeated
// fallbacks spread across the pool. An empty pool leaves the slot driver-less.
func (g *Generator) fallbackDriver(day, vehicleIndex int, usedToday map[string]struct{}) *domain.Employee {
	available := make([]*domain.Employee, 0, len(g.pools.Drivers))
	for _, d := range g.pools.Drivers {
		if _, used := usedToday[d.Code]; used {
			continue
		}
		available = append(available, d)
	}
	if len(available) == 0 {
		return nil
	}

	return available[(day*len(g.fleet)+vehicleIndex)%len(available)]
}

func (g *Generator) availableStaff(usedToday map[string]struct{}) []*domain.Employee {
	available := make([]*domain.Employee, 0, len(g.pools.Staff))
	for _, s := range g.pools.Staff {
		if _, used := usedToday[s.Code]; used {
			continue
		}
		available = append(available, s)
	}
	return available
}

// commit writes the finalized slot into the tracker. Partner history records
// co-assigned staff codes only.
func (g *Generator) commit(tracker *WorkloadTracker, day int, vehicle *domain.Vehicle, slot *domain.PlanSlot) {
	if slot.Driver != nil {
		tracker.Record(*slot.Driver, day, vehicle, slot.Staff)
	}
	for _, code := range slot.Staff {
		partners := make([]string, 0, len(slot.Staff)-1)
		for _, other := range slot.Staff {
			if other != code {
				partners = append(partners, other)
			}
		}
		tracker.Record(code, day, vehicle, partners)
	}
}
