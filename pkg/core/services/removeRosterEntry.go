package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jakechorley/shift-planner/pkg/core/model"
	"github.com/jakechorley/shift-planner/pkg/db"
)

// PublishedAssignmentReader finds assignments in stored months
type PublishedAssignmentReader interface {
	GetScheduleMonths(ctx context.Context) ([]db.ScheduleMonth, error)
	GetAssignments(ctx context.Context, monthID string) ([]db.Assignment, error)
}

// RemoveEmployeeStore defines the database operations needed to remove an employee
type RemoveEmployeeStore interface {
	PublishedAssignmentReader
	GetEmployees(ctx context.Context) ([]db.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
}

// RemoveShiftTypeStore defines the database operations needed to remove a shift type
type RemoveShiftTypeStore interface {
	PublishedAssignmentReader
	GetShiftTypes(ctx context.Context) ([]db.ShiftType, error)
	DeleteShiftType(ctx context.Context, shiftTypeID string) error
}

// RemoveEmployee deletes an employee together with their unavailability and assignments.
// Employees on a published schedule are kept unless force is set.
func RemoveEmployee(
	ctx context.Context,
	database RemoveEmployeeStore,
	logger *zap.Logger,
	employeeID string,
	force bool,
) (*db.Employee, error) {
	logger.Debug("Starting removeEmployee", zap.String("employee_id", employeeID), zap.Bool("force", force))

	employees, err := database.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	var target *db.Employee
	for i := range employees {
		if employees[i].ID == employeeID {
			target = &employees[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("%w: unknown employee %q", ErrInvalidInput, employeeID)
	}

	if !force {
		months, err := publishedMonthsUsing(ctx, database, func(a db.Assignment) bool {
			return a.EmployeeID == employeeID
		})
		if err != nil {
			return nil, err
		}
		if len(months) > 0 {
			return nil, fmt.Errorf("%w: %s is on the published schedule for %s (use force to remove anyway)",
				ErrMonthPublished, target.Name, strings.Join(months, ", "))
		}
	}

	if err := database.DeleteEmployee(ctx, employeeID); err != nil {
		return nil, fmt.Errorf("failed to remove employee: %w", err)
	}

	logger.Info("Employee removed", zap.String("id", target.ID), zap.String("name", target.Name))
	return target, nil
}

// RemoveShiftType deletes a shift type together with its assignments.
// Shift types used by a published schedule are kept unless force is set.
func RemoveShiftType(
	ctx context.Context,
	database RemoveShiftTypeStore,
	logger *zap.Logger,
	shiftTypeID string,
	force bool,
) (*db.ShiftType, error) {
	logger.Debug("Starting removeShiftType", zap.String("shift_type_id", shiftTypeID), zap.Bool("force", force))

	shiftTypes, err := database.GetShiftTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shift types: %w", err)
	}

	var target *db.ShiftType
	for i := range shiftTypes {
		if shiftTypes[i].ID == shiftTypeID {
			target = &shiftTypes[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("%w: unknown shift type %q", ErrInvalidInput, shiftTypeID)
	}

	if !force {
		months, err := publishedMonthsUsing(ctx, database, func(a db.Assignment) bool {
			return a.ShiftTypeID == shiftTypeID
		})
		if err != nil {
			return nil, err
		}
		if len(months) > 0 {
			return nil, fmt.Errorf("%w: %s is used by the published schedule for %s (use force to remove anyway)",
				ErrMonthPublished, target.Label, strings.Join(months, ", "))
		}
	}

	if err := database.DeleteShiftType(ctx, shiftTypeID); err != nil {
		return nil, fmt.Errorf("failed to remove shift type: %w", err)
	}

	logger.Info("Shift type removed", zap.String("id", target.ID), zap.String("label", target.Label))
	return target, nil
}

// publishedMonthsUsing returns the keys of published months with at least one matching assignment
func publishedMonthsUsing(ctx context.Context, database PublishedAssignmentReader, match func(db.Assignment) bool) ([]string, error) {
	months, err := database.GetScheduleMonths(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule months: %w", err)
	}

	var result []string
	for _, month := range months {
		if month.ToModel().Status != model.MonthStatusPublished {
			continue
		}

		assignments, err := database.GetAssignments(ctx, month.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch assignments: %w", err)
		}
		for _, a := range assignments {
			if match(a) {
				result = append(result, month.Month)
				break
			}
		}
	}

	return result, nil
}
