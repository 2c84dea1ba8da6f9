package repository

import (
	"context"
	"time"

	"github.com/melihkochan/personelplanlama/backend/internal/domain"
)

func (r *Repository) CreateEmployee(emp *domain.Employee) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO employees (code, full_name, role)
		VALUES ($1, $2, $3)
		RETURNING id, is_active, created_at, version
	`

	args := []any{emp.Code, emp.FullName, emp.Role}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&emp.ID, &emp.IsActive, &emp.CreatedAt, &emp.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetEmployeeByID(id int64) (*domain.Employee, error) {
	query := `
		SELECT code, full_name, role, is_active, created_at, version
		FROM employees WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	emp := &domain.Employee{
		ID: id,
	}

	dst := []any{&emp.Code, &emp.FullName, &emp.Role, &emp.IsActive, &emp.CreatedAt, &emp.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return emp, nil
}

func (r *Repository) GetEmployeeByCode(code string) (*domain.Employee, error) {
	query := `
		SELECT id, full_name, role, is_active, created_at, version
		FROM employees WHERE code = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	emp := &domain.Employee{
		Code: code,
	}

	dst := []any{&emp.ID, &emp.FullName, &emp.Role, &emp.IsActive, &emp.CreatedAt, &emp.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, code).Scan(dst...); err != nil {
		return nil, err
	}

	return emp, nil
}

func (r *Repository) GetAllEmployees() ([]*domain.Employee, error) {
	query := `
		SELECT id, code, full_name, role, is_active, created_at, version
		FROM employees ORDER BY code
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		emp := &domain.Employee{}
		dst := []any{&emp.ID, &emp.Code, &emp.FullName, &emp.Role, &emp.IsActive, &emp.CreatedAt, &emp.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) UpdateEmployee(emp *domain.Employee) error {
	query := `
		UPDATE employees
		SET
			full_name = $1,
			role = $2,
			is_active = $3,
			version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING code, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{emp.FullName, emp.Role, emp.IsActive, emp.ID, emp.Version}
	dst := []any{&emp.Code, &emp.CreatedAt, &emp.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteEmployee(id int64) error {
	query := `
		DELETE FROM employees WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
