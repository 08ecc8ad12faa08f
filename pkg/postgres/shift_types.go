package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jakechorley/shift-planner/pkg/db"
)

// GetShiftTypes retrieves all shift types ordered by start time.
// This order is the order shifts are filled each day.
func (d *DB) GetShiftTypes(ctx context.Context) ([]db.ShiftType, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, label, start_time, end_time, required_count, is_closing, created_at
		FROM shift_types
		ORDER BY start_time, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift types: %w", err)
	}
	defer rows.Close()

	var shiftTypes []db.ShiftType
	for rows.Next() {
		var s db.ShiftType
		var createdAt time.Time
		if err := rows.Scan(&s.ID, &s.Label, &s.StartTime, &s.EndTime, &s.RequiredCount, &s.IsClosing, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan shift type: %w", err)
		}
		s.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		shiftTypes = append(shiftTypes, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift types: %w", err)
	}

	return shiftTypes, nil
}

// InsertShiftType inserts a new shift type record
func (d *DB) InsertShiftType(ctx context.Context, shiftType *db.ShiftType) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO shift_types (id, label, start_time, end_time, required_count, is_closing)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, shiftType.ID, shiftType.Label, shiftType.StartTime, shiftType.EndTime, shiftType.RequiredCount, shiftType.IsClosing)
	if err != nil {
		return fmt.Errorf("failed to insert shift type: %w", err)
	}
	return nil
}

// DeleteShiftType removes a shift type; its assignments cascade
func (d *DB) DeleteShiftType(ctx context.Context, shiftTypeID string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM shift_types WHERE id = $1`, shiftTypeID)
	if err != nil {
		return fmt.Errorf("failed to delete shift type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shift type not found: %s", shiftTypeID)
	}
	return nil
}
