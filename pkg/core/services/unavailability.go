package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-planner/pkg/db"
)

// UnavailabilityStore defines the database operations needed to record unavailability
type UnavailabilityStore interface {
	GetEmployees(ctx context.Context) ([]db.Employee, error)
	UpsertAvailabilities(ctx context.Context, availabilities []db.Availability) error
	DeleteAvailabilities(ctx context.Context, employeeID string, dates []string) error
}

// MarkUnavailable records that an employee cannot work on each of the given "2006-01-02" dates
func MarkUnavailable(
	ctx context.Context,
	database UnavailabilityStore,
	logger *zap.Logger,
	employeeID string,
	dates []string,
) ([]db.Availability, error) {
	dates, err := checkUnavailabilityRequest(ctx, database, employeeID, dates)
	if err != nil {
		return nil, err
	}

	records := make([]db.Availability, len(dates))
	for i, date := range dates {
		records[i] = db.Availability{
			ID:            uuid.New().String(),
			EmployeeID:    employeeID,
			Date:          date,
			IsUnavailable: true,
		}
	}

	if err := database.UpsertAvailabilities(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to save unavailability: %w", err)
	}

	logger.Info("Marked employee unavailable",
		zap.String("employee_id", employeeID),
		zap.Strings("dates", dates))

	return records, nil
}

// ClearUnavailability removes an employee's unavailability records on the given dates
func ClearUnavailability(
	ctx context.Context,
	database UnavailabilityStore,
	logger *zap.Logger,
	employeeID string,
	dates []string,
) error {
	dates, err := checkUnavailabilityRequest(ctx, database, employeeID, dates)
	if err != nil {
		return err
	}

	if err := database.DeleteAvailabilities(ctx, employeeID, dates); err != nil {
		return fmt.Errorf("failed to clear unavailability: %w", err)
	}

	logger.Info("Cleared employee unavailability",
		zap.String("employee_id", employeeID),
		zap.Strings("dates", dates))

	return nil
}

// checkUnavailabilityRequest validates the employee and dates, returning the dates deduplicated
func checkUnavailabilityRequest(ctx context.Context, database UnavailabilityStore, employeeID string, dates []string) ([]string, error) {
	if len(dates) == 0 {
		return nil, fmt.Errorf("%w: at least one date is required", ErrInvalidInput)
	}

	seen := make(map[string]bool, len(dates))
	unique := make([]string, 0, len(dates))
	for _, date := range dates {
		if _, err := parseDate(date); err != nil {
			return nil, err
		}
		if !seen[date] {
			seen[date] = true
			unique = append(unique, date)
		}
	}

	employees, err := database.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	if _, ok := employeeNames(employees)[employeeID]; !ok {
		return nil, fmt.Errorf("%w: unknown employee %q", ErrInvalidInput, employeeID)
	}

	return unique, nil
}
