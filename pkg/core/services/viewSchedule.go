package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/shift-planner/pkg/core/model"
	"github.com/jakechorley/shift-planner/pkg/core/scheduler"
	"github.com/jakechorley/shift-planner/pkg/db"
)

// ViewScheduleStore defines the database operations needed to view a schedule
type ViewScheduleStore interface {
	GetScheduleMonths(ctx context.Context) ([]db.ScheduleMonth, error)
	GetEmployees(ctx context.Context) ([]db.Employee, error)
	GetShiftTypes(ctx context.Context) ([]db.ShiftType, error)
	GetAssignments(ctx context.Context, monthID string) ([]db.Assignment, error)
}

// ScheduleEntry is one employee placed on a shift
type ScheduleEntry struct {
	AssignmentID string `json:"assignmentId"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
}

// ScheduleDay holds a date's entries, one slice per shift type in ScheduleView.ShiftTypes order
type ScheduleDay struct {
	Date   string            `json:"date"`
	Shifts [][]ScheduleEntry `json:"shifts"`
}

// EmployeeStats are an employee's assignment counts for the month
type EmployeeStats struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Total      int    `json:"total"`
	Closing    int    `json:"closing"`
}

// EmployeeShift is one of an employee's assignments, resolved for display
type EmployeeShift struct {
	AssignmentID string `json:"assignmentId"`
	Date         string `json:"date"`
	ShiftTypeID  string `json:"shiftTypeId"`
	ShiftLabel   string `json:"shiftLabel"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

// ScheduleView is a stored month laid out as a date by shift grid with per-employee statistics
type ScheduleView struct {
	Month        *db.ScheduleMonth                  `json:"-"`
	MonthKey     string                             `json:"month"`
	Status       string                             `json:"status"`
	ShiftTypes   []db.ShiftType                     `json:"-"`
	ShiftLabels  []string                           `json:"shiftLabels"`
	Days         []ScheduleDay                      `json:"days"`
	Stats        []EmployeeStats                    `json:"stats"`
	MinClosing   int                                `json:"minClosing"`
	MaxClosing   int                                `json:"maxClosing"`
	Understaffed []scheduler.UnderstaffedOccurrence `json:"understaffed"`
}

// ViewSchedule loads a month's stored assignments and recomputes its statistics.
// monthRef is a month ID or "2006-01".
func ViewSchedule(ctx context.Context, database ViewScheduleStore, logger *zap.Logger, monthRef string) (*ScheduleView, error) {
	logger.Debug("Starting viewSchedule", zap.String("month", monthRef))

	target, year, month, err := loadMonth(ctx, database, monthRef)
	if err != nil {
		return nil, err
	}

	employees, err := database.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	shiftTypes, err := database.GetShiftTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shift types: %w", err)
	}

	assignments, err := database.GetAssignments(ctx, target.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	logger.Debug("Loaded schedule",
		zap.String("month_id", target.ID),
		zap.Int("assignments", len(assignments)))

	view := buildScheduleView(target, year, month, employees, shiftTypes, assignments)

	logger.Info("Schedule loaded",
		zap.String("month", target.Month),
		zap.Int("assignments", len(assignments)),
		zap.Int("understaffed", len(view.Understaffed)))

	return view, nil
}

// PublishedSchedule is ViewSchedule restricted to published months.
// Draft months are reported as ErrMonthNotFound.
func PublishedSchedule(ctx context.Context, database ViewScheduleStore, logger *zap.Logger, monthRef string) (*ScheduleView, error) {
	view, err := ViewSchedule(ctx, database, logger, monthRef)
	if err != nil {
		return nil, err
	}

	if model.MonthStatus(view.Status) != model.MonthStatusPublished {
		return nil, fmt.Errorf("%w: %s is not published", ErrMonthNotFound, view.MonthKey)
	}

	return view, nil
}

// ShiftsFor returns an employee's assignments in date order
func (v *ScheduleView) ShiftsFor(employeeID string) []EmployeeShift {
	result := []EmployeeShift{}
	for _, day := range v.Days {
		for i, entries := range day.Shifts {
			for _, entry := range entries {
				if entry.EmployeeID != employeeID {
					continue
				}
				shift := v.ShiftTypes[i]
				result = append(result, EmployeeShift{
					AssignmentID: entry.AssignmentID,
					Date:         day.Date,
					ShiftTypeID:  shift.ID,
					ShiftLabel:   shift.Label,
					StartTime:    shift.StartTime,
					EndTime:      shift.EndTime,
				})
			}
		}
	}
	return result
}

func buildScheduleView(
	target *db.ScheduleMonth,
	year int,
	month time.Month,
	employees []db.Employee,
	shiftTypes []db.ShiftType,
	assignments []db.Assignment,
) *ScheduleView {
	names := employeeNames(employees)
	shiftIndex := make(map[string]int, len(shiftTypes))
	labels := make([]string, len(shiftTypes))
	for i, shift := range shiftTypes {
		shiftIndex[shift.ID] = i
		labels[i] = shift.Label
	}

	// date -> shift column -> entries
	grid := make(map[string][][]ScheduleEntry)
	for _, a := range assignments {
		col, ok := shiftIndex[a.ShiftTypeID]
		if !ok {
			continue
		}
		if grid[a.Date] == nil {
			grid[a.Date] = make([][]ScheduleEntry, len(shiftTypes))
		}

		name, ok := names[a.EmployeeID]
		if !ok {
			name = a.EmployeeID
		}
		grid[a.Date][col] = append(grid[a.Date][col], ScheduleEntry{
			AssignmentID: a.ID,
			EmployeeID:   a.EmployeeID,
			EmployeeName: name,
		})
	}

	days := make([]ScheduleDay, 0, scheduler.DaysInMonth(year, month))
	for date := range scheduler.MonthDates(year, month) {
		shifts := grid[date]
		if shifts == nil {
			shifts = make([][]ScheduleEntry, len(shiftTypes))
		}
		for i := range shifts {
			if shifts[i] == nil {
				shifts[i] = []ScheduleEntry{}
			}
		}
		days = append(days, ScheduleDay{Date: date, Shifts: shifts})
	}

	report := scheduler.BuildReport(
		db.EmployeesToModels(employees),
		db.ShiftTypesToModels(shiftTypes),
		year,
		month,
		db.AssignmentsToModels(assignments),
	)

	stats := make([]EmployeeStats, len(employees))
	for i, emp := range employees {
		stats[i] = EmployeeStats{
			EmployeeID: emp.ID,
			Name:       emp.Name,
			Total:      report.TotalCounts[emp.ID],
			Closing:    report.ClosingCounts[emp.ID],
		}
	}

	return &ScheduleView{
		Month:        target,
		MonthKey:     target.Month,
		Status:       target.Status,
		ShiftTypes:   shiftTypes,
		ShiftLabels:  labels,
		Days:         days,
		Stats:        stats,
		MinClosing:   report.MinClosing,
		MaxClosing:   report.MaxClosing,
		Understaffed: report.Understaffed,
	}
}
