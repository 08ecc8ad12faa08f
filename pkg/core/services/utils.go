package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"

	"github.com/jakechorley/shift-planner/internal/config"
	"github.com/jakechorley/shift-planner/pkg/core/model"
	"github.com/jakechorley/shift-planner/pkg/core/scheduler"
	"github.com/jakechorley/shift-planner/pkg/db"
)

var (
	ErrMonthNotFound  = errors.New("schedule month not found")
	ErrMonthPublished = errors.New("schedule month is already published")
	ErrMonthExists    = errors.New("schedule month already exists")
	ErrInvalidInput   = errors.New("invalid input")
)

const (
	monthLayout       = "2006-01"
	displayDateLayout = "Mon Jan 02 2006"
)

var validate = validator.New()

// MonthReader fetches schedule months
type MonthReader interface {
	GetScheduleMonths(ctx context.Context) ([]db.ScheduleMonth, error)
}

// parseMonth parses a "2006-01" month
func parseMonth(month string) (int, time.Month, error) {
	t, err := time.Parse(monthLayout, month)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: month must be YYYY-MM, got %q", ErrInvalidInput, month)
	}
	return t.Year(), t.Month(), nil
}

// parseDate checks a "2006-01-02" date
func parseDate(date string) (time.Time, error) {
	t, err := time.Parse(scheduler.DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalidInput, date)
	}
	return t, nil
}

// monthRange returns the first and last date of the month
func monthRange(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month, scheduler.DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)
	return first.Format(scheduler.DateLayout), last.Format(scheduler.DateLayout)
}

// findMonth matches ref against month IDs first, then against "2006-01" month keys
func findMonth(months []db.ScheduleMonth, ref string) (*db.ScheduleMonth, error) {
	for i := range months {
		if months[i].ID == ref {
			return &months[i], nil
		}
	}
	for i := range months {
		if months[i].Month == ref {
			return &months[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrMonthNotFound, ref)
}

// loadMonth resolves a month reference and parses its year and month
func loadMonth(ctx context.Context, database MonthReader, ref string) (*db.ScheduleMonth, int, time.Month, error) {
	months, err := database.GetScheduleMonths(ctx)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to fetch schedule months: %w", err)
	}

	target, err := findMonth(months, ref)
	if err != nil {
		return nil, 0, 0, err
	}

	stored := target.ToModel()
	if !stored.Status.IsValid() {
		return nil, 0, 0, fmt.Errorf("stored schedule month %s has unknown status %q", target.ID, stored.Status)
	}

	year, month, err := parseMonth(stored.Month)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("stored schedule month %s is malformed: %w", target.ID, err)
	}

	return target, year, month, nil
}

// validateInputs checks the roster and shift definitions before generation
func validateInputs(employees []model.Employee, shiftTypes []model.ShiftType) error {
	seen := make(map[string]bool, len(employees))
	for _, emp := range employees {
		if err := validate.Struct(emp); err != nil {
			return fmt.Errorf("%w: employee %q: %v", ErrInvalidInput, emp.ID, err)
		}
		if seen[emp.ID] {
			return fmt.Errorf("%w: duplicate employee %q", ErrInvalidInput, emp.ID)
		}
		seen[emp.ID] = true
	}

	for _, shift := range shiftTypes {
		if err := validate.Struct(shift); err != nil {
			return fmt.Errorf("%w: shift type %q: %v", ErrInvalidInput, shift.ID, err)
		}
	}

	return nil
}

// recurrenceAnchor is the DTSTART given to rules that do not set one, so that
// INTERVAL and weekday phases stay fixed whichever month is expanded
var recurrenceAnchor = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// expandRecurringUnavailability turns configured rrules into unavailability records
// for every matching date of the month
func expandRecurringUnavailability(entries []config.RecurringUnavailability, year int, month time.Month) ([]model.Availability, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(year, month, scheduler.DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)

	var result []model.Availability
	for i, entry := range entries {
		rule, err := rrule.StrToRRule(entry.RRule)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rrule for recurring unavailability %d: %w", i, err)
		}

		if rule.OrigOptions.Dtstart.IsZero() {
			rule.DTStart(recurrenceAnchor)
		}
		for _, occurrence := range rule.Between(monthStart, monthEnd, true) {
			result = append(result, model.Availability{
				EmployeeID:    entry.EmployeeID,
				Date:          occurrence.Format(scheduler.DateLayout),
				IsUnavailable: true,
			})
		}
	}

	return result, nil
}

// employeeNames maps employee ID to display name
func employeeNames(employees []db.Employee) map[string]string {
	names := make(map[string]string, len(employees))
	for _, emp := range employees {
		names[emp.ID] = emp.Name
	}
	return names
}

// displayDate formats a "2006-01-02" date as "Mon Jan 02 2006", leaving unparseable input as is
func displayDate(date string) string {
	t, err := time.Parse(scheduler.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(displayDateLayout)
}
