package repository

import (
	"context"
	"time"

	"github.com/melihkochan/personelplanlama/backend/internal/domain"
)

func (r *Repository) CreateShiftPeriod(period *domain.ShiftPeriod) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO shift_periods (name, week_start)
		VALUES ($1, $2)
		RETURNING id, created_at, version
	`

	if err := r.dbpool.QueryRowContext(ctx, query, period.Name, period.WeekStart).Scan(&period.ID, &period.CreatedAt, &period.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetShiftPeriodByID(id int64) (*domain.ShiftPeriod, error) {
	query := `
		SELECT name, week_start, created_at, version
		FROM shift_periods WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	period := &domain.ShiftPeriod{
		ID: id,
	}

	dst := []any{&period.Name, &period.WeekStart, &period.CreatedAt, &period.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return period, nil
}

func (r *Repository) GetAllShiftPeriods() ([]*domain.ShiftPeriod, error) {
	query := `
		SELECT id, name, week_start, created_at, version
		FROM shift_periods ORDER BY week_start DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	periods := make([]*domain.ShiftPeriod, 0)
	for rows.Next() {
		period := &domain.ShiftPeriod{}
		dst := []any{&period.ID, &period.Name, &period.WeekStart, &period.CreatedAt, &period.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		periods = append(periods, period)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return periods, nil
}

func (r *Repository) DeleteShiftPeriod(id int64) error {
	query := `
		DELETE FROM shift_periods WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

// UpsertShiftStatuses replaces the status rows of the period in one
// transaction, so a re-imported week never leaves stale entries behind.
func (r *Repository) UpsertShiftStatuses(periodID int64, entries []domain.ShiftStatusEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `DELETE FROM shift_statuses WHERE shift_period_id = $1`
	if _, err := tx.ExecContext(ctx, query, periodID); err != nil {
		return err
	}

	query = `
		INSERT INTO shift_statuses (shift_period_id, employee_code, status)
		VALUES ($1, $2, $3)
	`
	for _, entry := range entries {
		if _, err := tx.ExecContext(ctx, query, periodID, entry.EmployeeCode, entry.Status); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

// GetShiftStatuses returns the period's status lookup keyed by employee code.
// Stored values outside the closed enum come back as UNKNOWN.
func (r *Repository) GetShiftStatuses(periodID int64) (map[string]domain.ShiftStatus, error) {
	query := `
		SELECT employee_code, status
		FROM shift_statuses WHERE shift_period_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, periodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := make(map[string]domain.ShiftStatus)
	for rows.Next() {
		var code, status string
		if err := rows.Scan(&code, &status); err != nil {
			return nil, err
		}
		statuses[code] = domain.ParseShiftStatus(status)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return statuses, nil
}
