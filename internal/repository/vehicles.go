package repository

import (
	"context"
	"time"

	"github.com/melihkochan/personelplanlama/backend/internal/domain"
)

func (r *Repository) CreateVehicle(v *domain.Vehicle) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO vehicles (plate, vehicle_type, region, fixed_primary_driver, fixed_secondary_driver)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version
	`

	args := []any{v.Plate, v.Type, v.Region, v.FixedPrimaryDriver, v.FixedSecondaryDriver}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&v.ID, &v.CreatedAt, &v.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetVehicleByID(id int64) (*domain.Vehicle, error) {
	query := `
		SELECT plate, vehicle_type, region, fixed_primary_driver, fixed_secondary_driver, created_at, version
		FROM vehicles WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	v := &domain.Vehicle{
		ID: id,
	}

	dst := []any{&v.Plate, &v.Type, &v.Region, &v.FixedPrimaryDriver, &v.FixedSecondaryDriver, &v.CreatedAt, &v.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return v, nil
}

func (r *Repository) GetAllVehicles() ([]*domain.Vehicle, error) {
	query := `
		SELECT id, plate, vehicle_type, region, fixed_primary_driver, fixed_secondary_driver, created_at, version
		FROM vehicles ORDER BY plate
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]*domain.Vehicle, 0)
	for rows.Next() {
		v := &domain.Vehicle{}
		dst := []any{&v.ID, &v.Plate, &v.Type, &v.Region, &v.FixedPrimaryDriver, &v.FixedSecondaryDriver, &v.CreatedAt, &v.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}

func (r *Repository) UpdateVehicle(v *domain.Vehicle) error {
	query := `
		UPDATE vehicles
		SET
			vehicle_type = $1,
			region = $2,
			fixed_primary_driver = $3,
			fixed_secondary_driver = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING plate, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{v.Type, v.Region, v.FixedPrimaryDriver, v.FixedSecondaryDriver, v.ID, v.Version}
	dst := []any{&v.Plate, &v.CreatedAt, &v.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteVehicle(id int64) error {
	query := `
		DELETE FROM vehicles WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
