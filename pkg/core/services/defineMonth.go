package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-planner/pkg/core/model"
	"github.com/jakechorley/shift-planner/pkg/db"
)

// DefineMonthStore defines the database operations needed to define a month
type DefineMonthStore interface {
	GetScheduleMonths(ctx context.Context) ([]db.ScheduleMonth, error)
	InsertScheduleMonth(ctx context.Context, month *db.ScheduleMonth) error
}

// DefineMonth creates a draft schedule month for a "2006-01" month
func DefineMonth(ctx context.Context, database DefineMonthStore, logger *zap.Logger, month string) (*db.ScheduleMonth, error) {
	if _, _, err := parseMonth(month); err != nil {
		return nil, err
	}

	logger.Info("Defining schedule month", zap.String("month", month))

	months, err := database.GetScheduleMonths(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule months: %w", err)
	}

	for _, existing := range months {
		if existing.Month == month {
			return nil, fmt.Errorf("%w: %s (%s)", ErrMonthExists, month, existing.ID)
		}
	}

	scheduleMonth := &db.ScheduleMonth{
		ID:     uuid.New().String(),
		Month:  month,
		Status: string(model.MonthStatusDraft),
	}

	if err := database.InsertScheduleMonth(ctx, scheduleMonth); err != nil {
		return nil, fmt.Errorf("failed to insert schedule month: %w", err)
	}

	logger.Info("Schedule month created", zap.String("id", scheduleMonth.ID), zap.String("month", month))

	return scheduleMonth, nil
}
