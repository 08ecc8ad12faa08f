package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-planner/internal/config"
	"github.com/jakechorley/shift-planner/pkg/core/model"
	"github.com/jakechorley/shift-planner/pkg/core/scheduler"
	"github.com/jakechorley/shift-planner/pkg/db"
)

// GenerateScheduleStore defines the database operations needed to generate a schedule
type GenerateScheduleStore interface {
	GetScheduleMonths(ctx context.Context) ([]db.ScheduleMonth, error)
	GetEmployees(ctx context.Context) ([]db.Employee, error)
	GetShiftTypes(ctx context.Context) ([]db.ShiftType, error)
	GetAvailabilities(ctx context.Context, from, to string) ([]db.Availability, error)
	ReplaceAssignments(ctx context.Context, monthID string, assignments []db.Assignment) error
}

// GenerateScheduleResult is the outcome of a generation run
type GenerateScheduleResult struct {
	Month       *db.ScheduleMonth
	Employees   []db.Employee
	ShiftTypes  []db.ShiftType
	Assignments []db.Assignment
	Report      *scheduler.Report
	DryRun      bool
}

// GenerateSchedule runs the scheduler for a month and replaces its stored assignments.
// monthRef is a month ID or "2006-01". Published months are refused unless force is set.
// With dryRun the schedule is computed and reported but nothing is written.
func GenerateSchedule(
	ctx context.Context,
	database GenerateScheduleStore,
	cfg *config.Config,
	logger *zap.Logger,
	monthRef string,
	dryRun bool,
	force bool,
) (*GenerateScheduleResult, error) {
	logger.Debug("Starting generateSchedule",
		zap.String("month", monthRef),
		zap.Bool("dry_run", dryRun),
		zap.Bool("force", force))

	// Step 1: Resolve the target month
	target, year, month, err := loadMonth(ctx, database, monthRef)
	if err != nil {
		return nil, err
	}

	if model.MonthStatus(target.Status) == model.MonthStatusPublished && !force {
		return nil, fmt.Errorf("%w: %s (use force to regenerate)", ErrMonthPublished, target.Month)
	}

	// Step 2: Load roster and shift definitions
	logger.Debug("Fetching employees")
	employees, err := database.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	logger.Debug("Fetching shift types")
	shiftTypes, err := database.GetShiftTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shift types: %w", err)
	}

	roster := db.EmployeesToModels(employees)
	shifts := db.ShiftTypesToModels(shiftTypes)
	if err := validateInputs(roster, shifts); err != nil {
		return nil, err
	}

	logger.Debug("Loaded inputs",
		zap.Int("employees", len(roster)),
		zap.Int("shift_types", len(shifts)))

	// Step 3: Collect unavailability, stored and recurring
	from, to := monthRange(year, month)
	stored, err := database.GetAvailabilities(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availabilities: %w", err)
	}

	var recurringEntries []config.RecurringUnavailability
	if cfg != nil {
		recurringEntries = cfg.RecurringUnavailability
	}
	recurring, err := expandRecurringUnavailability(recurringEntries, year, month)
	if err != nil {
		return nil, err
	}

	availabilities := append(db.AvailabilitiesToModels(stored), recurring...)
	logger.Debug("Collected unavailability",
		zap.Int("stored", len(stored)),
		zap.Int("recurring", len(recurring)))

	// Step 4: Generate and re-check
	generated := scheduler.Generate(roster, shifts, year, month, availabilities)

	if violations := scheduler.ValidateSchedule(roster, availabilities, generated); len(violations) > 0 {
		descriptions := make([]string, len(violations))
		for i, v := range violations {
			descriptions[i] = v.Description
			logger.Error("Generated schedule violates constraint",
				zap.String("rule", v.Rule),
				zap.String("employee_id", v.EmployeeID),
				zap.String("date", v.Date))
		}
		return nil, fmt.Errorf("generated schedule violates %d constraints: %s",
			len(violations), strings.Join(descriptions, "; "))
	}

	report := scheduler.BuildReport(roster, shifts, year, month, generated)

	// Step 5: Stamp persistence identifiers
	assignments := make([]db.Assignment, len(generated))
	for i, a := range generated {
		assignments[i] = db.Assignment{
			ID:              uuid.New().String(),
			ScheduleMonthID: target.ID,
			EmployeeID:      a.EmployeeID,
			Date:            a.Date,
			ShiftTypeID:     a.ShiftTypeID,
		}
	}

	result := &GenerateScheduleResult{
		Month:       target,
		Employees:   employees,
		ShiftTypes:  shiftTypes,
		Assignments: assignments,
		Report:      report,
		DryRun:      dryRun,
	}

	if len(report.Understaffed) > 0 {
		logger.Warn("Schedule has understaffed shifts", zap.Int("count", len(report.Understaffed)))
	}

	if dryRun {
		logger.Info("Dry run, assignments not saved", zap.Int("assignments", len(assignments)))
		return result, nil
	}

	// Step 6: Replace the month's assignments
	if err := database.ReplaceAssignments(ctx, target.ID, assignments); err != nil {
		return nil, fmt.Errorf("failed to save assignments: %w", err)
	}

	logger.Info("Schedule generated",
		zap.String("month", target.Month),
		zap.Int("assignments", len(assignments)),
		zap.Int("understaffed", len(report.Understaffed)))

	return result, nil
}
