package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jakechorley/shift-planner/pkg/db"
)

// GetEmployees retrieves all employees ordered by name
func (d *DB) GetEmployees(ctx context.Context) ([]db.Employee, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, email, phone, max_shifts_per_month, created_at
		FROM employees
		ORDER BY name, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []db.Employee
	for rows.Next() {
		var e db.Employee
		var email, phone *string
		var createdAt time.Time
		if err := rows.Scan(&e.ID, &e.Name, &email, &phone, &e.MaxShiftsPerMonth, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		if email != nil {
			e.Email = *email
		}
		if phone != nil {
			e.Phone = *phone
		}
		e.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}

// InsertEmployee inserts a new employee record
func (d *DB) InsertEmployee(ctx context.Context, employee *db.Employee) error {
	var email, phone *string
	if employee.Email != "" {
		email = &employee.Email
	}
	if employee.Phone != "" {
		phone = &employee.Phone
	}

	_, err := d.pool.Exec(ctx, `
		INSERT INTO employees (id, name, email, phone, max_shifts_per_month)
		VALUES ($1, $2, $3, $4, $5)
	`, employee.ID, employee.Name, email, phone, employee.MaxShiftsPerMonth)
	if err != nil {
		return fmt.Errorf("failed to insert employee: %w", err)
	}
	return nil
}

// DeleteEmployee removes an employee; availability and assignments cascade
func (d *DB) DeleteEmployee(ctx context.Context, employeeID string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("employee not found: %s", employeeID)
	}
	return nil
}
