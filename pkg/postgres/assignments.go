package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jakechorley/shift-planner/pkg/db"
)

// GetAssignments retrieves a month's assignments in generation order
func (d *DB) GetAssignments(ctx context.Context, monthID string) ([]db.Assignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, schedule_month_id, employee_id, date, shift_type_id
		FROM assignments
		WHERE schedule_month_id = $1
		ORDER BY position, date
	`, monthID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.Assignment
	for rows.Next() {
		var a db.Assignment
		var date time.Time
		if err := rows.Scan(&a.ID, &a.ScheduleMonthID, &a.EmployeeID, &date, &a.ShiftTypeID); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		a.Date = date.Format(dateLayout)
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}

// ReplaceAssignments deletes every assignment of the month and inserts the given ones
// in a single transaction. Slice order is stored as the generation order.
func (d *DB) ReplaceAssignments(ctx context.Context, monthID string, assignments []db.Assignment) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM assignments WHERE schedule_month_id = $1`, monthID); err != nil {
		return fmt.Errorf("failed to delete existing assignments: %w", err)
	}

	for i, a := range assignments {
		_, err := tx.Exec(ctx, `
			INSERT INTO assignments (id, schedule_month_id, employee_id, date, shift_type_id, position)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, a.ID, monthID, a.EmployeeID, a.Date, a.ShiftTypeID, i)
		if err != nil {
			return fmt.Errorf("failed to insert assignment: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteAssignment removes a single assignment
func (d *DB) DeleteAssignment(ctx context.Context, assignmentID string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, assignmentID)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("assignment not found: %s", assignmentID)
	}
	return nil
}
