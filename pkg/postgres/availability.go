package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jakechorley/shift-planner/pkg/db"
)

// GetAvailabilities retrieves availability records dated between from and to inclusive
func (d *DB) GetAvailabilities(ctx context.Context, from, to string) ([]db.Availability, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, employee_id, date, is_unavailable
		FROM availabilities
		WHERE date BETWEEN $1 AND $2
		ORDER BY date, employee_id
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query availabilities: %w", err)
	}
	defer rows.Close()

	var availabilities []db.Availability
	for rows.Next() {
		var a db.Availability
		var date time.Time
		if err := rows.Scan(&a.ID, &a.EmployeeID, &date, &a.IsUnavailable); err != nil {
			return nil, fmt.Errorf("failed to scan availability: %w", err)
		}
		a.Date = date.Format(dateLayout)
		availabilities = append(availabilities, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating availabilities: %w", err)
	}

	return availabilities, nil
}

// UpsertAvailabilities inserts availability records, replacing the flag of any
// existing record for the same employee and date. Each record's ID is set to the stored row's ID.
func (d *DB) UpsertAvailabilities(ctx context.Context, availabilities []db.Availability) error {
	if len(availabilities) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	ids := make([]string, len(availabilities))
	for i, a := range availabilities {
		err := tx.QueryRow(ctx, `
			INSERT INTO availabilities (id, employee_id, date, is_unavailable)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (employee_id, date) DO UPDATE SET is_unavailable = EXCLUDED.is_unavailable
			RETURNING id
		`, a.ID, a.EmployeeID, a.Date, a.IsUnavailable).Scan(&ids[i])
		if err != nil {
			return fmt.Errorf("failed to upsert availability: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	for i := range availabilities {
		availabilities[i].ID = ids[i]
	}
	return nil
}

// DeleteAvailabilities removes an employee's availability records on the given dates
func (d *DB) DeleteAvailabilities(ctx context.Context, employeeID string, dates []string) error {
	if len(dates) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, date := range dates {
		_, err := tx.Exec(ctx, `
			DELETE FROM availabilities WHERE employee_id = $1 AND date = $2
		`, employeeID, date)
		if err != nil {
			return fmt.Errorf("failed to delete availability: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
