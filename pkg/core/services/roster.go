package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-planner/pkg/db"
)

const timeLayout = "15:04"

// NewEmployee holds the fields needed to add an employee
type NewEmployee struct {
	Name              string
	Email             string
	Phone             string
	MaxShiftsPerMonth *int
}

// NewShiftType holds the fields needed to add a shift type
type NewShiftType struct {
	Label         string
	StartTime     string
	EndTime       string
	RequiredCount int
	IsClosing     bool
}

// AddEmployee validates and stores a new employee
func AddEmployee(ctx context.Context, database db.EmployeeStore, logger *zap.Logger, input NewEmployee) (*db.Employee, error) {
	employee := &db.Employee{
		ID:                uuid.New().String(),
		Name:              input.Name,
		Email:             input.Email,
		Phone:             input.Phone,
		MaxShiftsPerMonth: input.MaxShiftsPerMonth,
	}

	if err := validate.Struct(employee.ToModel()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := database.InsertEmployee(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to insert employee: %w", err)
	}

	logger.Info("Employee added", zap.String("id", employee.ID), zap.String("name", employee.Name))
	return employee, nil
}

// ListEmployees returns the roster in scheduling order
func ListEmployees(ctx context.Context, database db.EmployeeStore, logger *zap.Logger) ([]db.Employee, error) {
	employees, err := database.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	logger.Debug("Employees fetched", zap.Int("count", len(employees)))
	return employees, nil
}

// AddShiftType validates and stores a new shift type. Times are "15:04".
func AddShiftType(ctx context.Context, database db.ShiftTypeStore, logger *zap.Logger, input NewShiftType) (*db.ShiftType, error) {
	shiftType := &db.ShiftType{
		ID:            uuid.New().String(),
		Label:         input.Label,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		RequiredCount: input.RequiredCount,
		IsClosing:     input.IsClosing,
	}

	if shiftType.Label == "" {
		return nil, fmt.Errorf("%w: label is required", ErrInvalidInput)
	}
	for _, t := range []string{shiftType.StartTime, shiftType.EndTime} {
		if _, err := time.Parse(timeLayout, t); err != nil {
			return nil, fmt.Errorf("%w: time must be HH:MM, got %q", ErrInvalidInput, t)
		}
	}
	if err := validate.Struct(shiftType.ToModel()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := database.InsertShiftType(ctx, shiftType); err != nil {
		return nil, fmt.Errorf("failed to insert shift type: %w", err)
	}

	logger.Info("Shift type added",
		zap.String("id", shiftType.ID),
		zap.String("label", shiftType.Label),
		zap.Int("required_count", shiftType.RequiredCount),
		zap.Bool("is_closing", shiftType.IsClosing))
	return shiftType, nil
}

// ListShiftTypes returns shift types in daily processing order
func ListShiftTypes(ctx context.Context, database db.ShiftTypeStore, logger *zap.Logger) ([]db.ShiftType, error) {
	shiftTypes, err := database.GetShiftTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shift types: %w", err)
	}

	logger.Debug("Shift types fetched", zap.Int("count", len(shiftTypes)))
	return shiftTypes, nil
}
