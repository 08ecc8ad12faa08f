package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jakechorley/shift-planner/pkg/db"
)

// GetScheduleMonths retrieves all schedule months ordered by month
func (d *DB) GetScheduleMonths(ctx context.Context) ([]db.ScheduleMonth, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, month, status, created_at
		FROM schedule_months
		ORDER BY month
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule months: %w", err)
	}
	defer rows.Close()

	var months []db.ScheduleMonth
	for rows.Next() {
		var m db.ScheduleMonth
		var createdAt time.Time
		if err := rows.Scan(&m.ID, &m.Month, &m.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan schedule month: %w", err)
		}
		m.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		months = append(months, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule months: %w", err)
	}

	return months, nil
}

// InsertScheduleMonth inserts a new schedule month record
func (d *DB) InsertScheduleMonth(ctx context.Context, month *db.ScheduleMonth) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO schedule_months (id, month, status)
		VALUES ($1, $2, $3)
	`, month.ID, month.Month, month.Status)
	if err != nil {
		return fmt.Errorf("failed to insert schedule month: %w", err)
	}
	return nil
}

// SetScheduleMonthStatus updates the status of a schedule month
func (d *DB) SetScheduleMonthStatus(ctx context.Context, monthID string, status string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE schedule_months SET status = $2 WHERE id = $1
	`, monthID, status)
	if err != nil {
		return fmt.Errorf("failed to set schedule month status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("schedule month not found: %s", monthID)
	}
	return nil
}
