package repository

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/melihkochan/personelplanlama/backend/internal/domain"
)

// InsertWeeklyPlan stores the plan grid together with its replay stats and
// shortage report. Any previous plan for the same period is removed first, so
// regenerating a week is always a clean replace.
func (r *Repository) InsertWeeklyPlan(plan *domain.WeeklyPlan, stats []domain.PersonnelStat, shortage domain.ShortageReport) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `DELETE FROM weekly_plans WHERE shift_period_id = $1`
	if _, err := tx.ExecContext(ctx, query, plan.ShiftPeriodID); err != nil {
		return err
	}

	query = `
		INSERT INTO weekly_plans (shift_period_id, driver_shortage, staff_shortage)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`

	if err := tx.QueryRowContext(ctx, query, plan.ShiftPeriodID, shortage.DriverShortage, shortage.StaffShortage).Scan(&plan.ID, &plan.CreatedAt, &plan.Version); err != nil {
		return err
	}

	for _, day := range plan.Days {
		for slotIndex, slot := range day.Slots {
			query := `
				INSERT INTO weekly_plan_slots (weekly_plan_id, day_of_week, slot_index, vehicle_plate, vehicle_type, region, driver_code, short_staffed)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				RETURNING id
			`

			var slotID int64
			if err := tx.QueryRowContext(ctx, query, plan.ID, day.Day, slotIndex, slot.VehiclePlate, slot.VehicleType, slot.Region, slot.Driver, slot.ShortStaffed).Scan(&slotID); err != nil {
				return err
			}

			for position, code := range slot.Staff {
				query := `
					INSERT INTO weekly_plan_slot_staff (weekly_plan_slot_id, position, employee_code)
					VALUES ($1, $2, $3)
				`

				if _, err := tx.ExecContext(ctx, query, slotID, position, code); err != nil {
					return err
				}
			}
		}
	}

	for _, stat := range stats {
		query := `
			INSERT INTO personnel_stats (weekly_plan_id, employee_code, total_assignments, idle_days, truck_count, pickup_count, van_count)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`

		if _, err := tx.ExecContext(ctx, query, plan.ID, stat.EmployeeCode, stat.TotalAssignments, stat.IdleDays, stat.TruckCount, stat.PickupCount, stat.VanCount); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

// GetWeeklyPlanByPeriodID reconstructs the plan grid exactly as it was stored:
// days and slots come back in their original order, staff in placement order.
func (r *Repository) GetWeeklyPlanByPeriodID(periodID int64) (*domain.WeeklyPlan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			wp.id,
			wps.id,
			wps.day_of_week,
			wps.slot_index,
			wps.vehicle_plate,
			wps.vehicle_type,
			wps.region,
			wps.driver_code,
			wps.short_staffed,
			wpss.position,
			wpss.employee_code,
			wp.created_at,
			wp.version
		FROM weekly_plans wp
		LEFT JOIN weekly_plan_slots wps ON wp.id = wps.weekly_plan_id
		LEFT JOIN weekly_plan_slot_staff wpss ON wps.id = wpss.weekly_plan_slot_id
		WHERE wp.shift_period_id = $1
		ORDER BY wps.day_of_week, wps.slot_index, wpss.position
	`

	rows, err := r.dbpool.QueryContext(ctx, query, periodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plan := &domain.WeeklyPlan{
		ShiftPeriodID: periodID,
	}

	slotsMap := make(map[int64]*domain.PlanSlot) // slot row id -> slot
	slotDay := make(map[int64]int32)
	slotIndex := make(map[int64]int)
	slotOrder := make([]int64, 0)

	for rows.Next() {
		var row struct {
			planID       int64
			slotID       sql.NullInt64
			dayOfWeek    sql.NullInt32
			index        sql.NullInt32
			vehiclePlate sql.NullString
			vehicleType  sql.NullString
			region       sql.NullString
			driverCode   sql.NullString
			shortStaffed sql.NullBool
			position     sql.NullInt32
			employeeCode sql.NullString
			createdAt    time.Time
			version      int32
		}

		dst := []any{
			&row.planID,
			&row.slotID,
			&row.dayOfWeek,
			&row.index,
			&row.vehiclePlate,
			&row.vehicleType,
			&row.region,
			&row.driverCode,
			&row.shortStaffed,
			&row.position,
			&row.employeeCode,
			&row.createdAt,
			&row.version,
		}

		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		plan.ID = row.planID
		plan.CreatedAt = row.createdAt
		plan.Version = row.version

		if !row.slotID.Valid {
			// A plan without slots should not happen, but handle it anyway
			continue
		}

		if _, exists := slotsMap[row.slotID.Int64]; !exists {
			slot := &domain.PlanSlot{
				VehiclePlate: row.vehiclePlate.String,
				VehicleType:  domain.VehicleType(row.vehicleType.String),
				Region:       row.region.String,
				Staff:        make([]string, 0, domain.StaffPerVehicle),
				ShortStaffed: row.shortStaffed.Bool,
			}
			if row.driverCode.Valid {
				driver := row.driverCode.String
				slot.Driver = &driver
			}
			slotsMap[row.slotID.Int64] = slot
			slotDay[row.slotID.Int64] = row.dayOfWeek.Int32
			slotIndex[row.slotID.Int64] = int(row.index.Int32)
			slotOrder = append(slotOrder, row.slotID.Int64)
		}

		if !row.employeeCode.Valid {
			// Slots with no staff at all are possible on short weeks
			continue
		}

		slotsMap[row.slotID.Int64].Staff = append(slotsMap[row.slotID.Int64].Staff, row.employeeCode.String)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if plan.ID == 0 {
		return nil, sql.ErrNoRows
	}

	sort.SliceStable(slotOrder, func(i, j int) bool {
		a, b := slotOrder[i], slotOrder[j]
		if slotDay[a] != slotDay[b] {
			return slotDay[a] < slotDay[b]
		}
		return slotIndex[a] < slotIndex[b]
	})

	daysMap := make(map[int32]*domain.PlanDay)
	dayOrder := make([]int32, 0)
	for _, slotID := range slotOrder {
		day := slotDay[slotID]
		if _, exists := daysMap[day]; !exists {
			daysMap[day] = &domain.PlanDay{
				Day:   day,
				Slots: make([]domain.PlanSlot, 0, domain.FleetSize),
			}
			dayOrder = append(dayOrder, day)
		}
		daysMap[day].Slots = append(daysMap[day].Slots, *slotsMap[slotID])
	}

	plan.Days = make([]domain.PlanDay, 0, len(dayOrder))
	for _, day := range dayOrder {
		plan.Days = append(plan.Days, *daysMap[day])
	}

	return plan, nil
}

func (r *Repository) GetPersonnelStatsByPlanID(planID int64) ([]domain.PersonnelStat, error) {
	query := `
		SELECT employee_code, total_assignments, idle_days, truck_count, pickup_count, van_count
		FROM personnel_stats WHERE weekly_plan_id = $1
		ORDER BY employee_code
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]domain.PersonnelStat, 0)
	for rows.Next() {
		var stat domain.PersonnelStat
		dst := []any{&stat.EmployeeCode, &stat.TotalAssignments, &stat.IdleDays, &stat.TruckCount, &stat.PickupCount, &stat.VanCount}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *Repository) GetShortageByPlanID(planID int64) (*domain.ShortageReport, error) {
	query := `
		SELECT driver_shortage, staff_shortage
		FROM weekly_plans WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	report := &domain.ShortageReport{}
	if err := r.dbpool.QueryRowContext(ctx, query, planID).Scan(&report.DriverShortage, &report.StaffShortage); err != nil {
		return nil, err
	}

	return report, nil
}
