package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jakechorley/shift-planner/internal/config"
	"github.com/jakechorley/shift-planner/pkg/clients/sheetsclient"
	"github.com/jakechorley/shift-planner/pkg/core/model"
)

// PublishScheduleStore defines the database operations needed to publish a schedule
type PublishScheduleStore interface {
	ViewScheduleStore
	SetScheduleMonthStatus(ctx context.Context, monthID string, status string) error
}

// SchedulePublisher writes a schedule to a spreadsheet
type SchedulePublisher interface {
	PublishSchedule(spreadsheetID string, schedule *sheetsclient.Schedule) error
}

// EmailSender sends plain-text email
type EmailSender interface {
	SendEmail(to, subject, body string) error
}

// FailedEmail records a notification that could not be sent
type FailedEmail struct {
	EmployeeID   string
	EmployeeName string
	Email        string
	Error        string
}

// PublishResult is the outcome of publishing a month
type PublishResult struct {
	View           *ScheduleView
	Schedule       *sheetsclient.Schedule
	SheetID        string
	NotifiedEmails []string
	FailedEmails   []FailedEmail
}

// PublishSchedule marks a month published, optionally writes it to the schedule sheet and
// optionally emails every employee with an address their own shifts.
// Email failures are collected in the result and do not fail the call.
// publisher and sender may be nil when toSheet or notify are false.
func PublishSchedule(
	ctx context.Context,
	database PublishScheduleStore,
	publisher SchedulePublisher,
	sender EmailSender,
	cfg *config.Config,
	logger *zap.Logger,
	monthRef string,
	toSheet bool,
	notify bool,
) (*PublishResult, error) {
	logger.Debug("Starting publishSchedule",
		zap.String("month", monthRef),
		zap.Bool("to_sheet", toSheet),
		zap.Bool("notify", notify))

	if toSheet && (cfg == nil || cfg.ScheduleSheetID == "") {
		return nil, fmt.Errorf("%w: scheduleSheetID must be configured to publish to a sheet", ErrInvalidInput)
	}
	if toSheet && publisher == nil {
		return nil, fmt.Errorf("%w: no sheet publisher available", ErrInvalidInput)
	}
	if notify && sender == nil {
		return nil, fmt.Errorf("%w: no email sender available", ErrInvalidInput)
	}

	// Step 1: Build the schedule from stored assignments
	view, err := ViewSchedule(ctx, database, logger, monthRef)
	if err != nil {
		return nil, err
	}

	result := &PublishResult{
		View:         view,
		Schedule:     buildPublishedSchedule(view),
		FailedEmails: []FailedEmail{},
	}

	// Step 2: Write the sheet
	if toSheet {
		logger.Info("Writing schedule to sheet", zap.String("spreadsheet_id", cfg.ScheduleSheetID))
		if err := publisher.PublishSchedule(cfg.ScheduleSheetID, result.Schedule); err != nil {
			return nil, fmt.Errorf("failed to publish schedule to sheet: %w", err)
		}
		result.SheetID = cfg.ScheduleSheetID
	}

	// Step 3: Mark published
	if model.MonthStatus(view.Month.Status) != model.MonthStatusPublished {
		if err := database.SetScheduleMonthStatus(ctx, view.Month.ID, string(model.MonthStatusPublished)); err != nil {
			return nil, fmt.Errorf("failed to mark month published: %w", err)
		}
		view.Month.Status = string(model.MonthStatusPublished)
		view.Status = view.Month.Status
	}

	// Step 4: Notify employees
	if notify {
		notifyEmployees(ctx, database, sender, logger, view, result)
	}

	logger.Info("Schedule published",
		zap.String("month", view.MonthKey),
		zap.Bool("to_sheet", toSheet),
		zap.Int("notified", len(result.NotifiedEmails)),
		zap.Int("failed", len(result.FailedEmails)))

	return result, nil
}

func notifyEmployees(
	ctx context.Context,
	database ViewScheduleStore,
	sender EmailSender,
	logger *zap.Logger,
	view *ScheduleView,
	result *PublishResult,
) {
	employees, err := database.GetEmployees(ctx)
	if err != nil {
		result.FailedEmails = append(result.FailedEmails, FailedEmail{
			Error: fmt.Sprintf("failed to fetch employees: %v", err),
		})
		return
	}

	for _, emp := range employees {
		if emp.Email == "" {
			logger.Debug("Skipping employee without email", zap.String("employee_id", emp.ID))
			continue
		}

		shifts := view.ShiftsFor(emp.ID)
		if len(shifts) == 0 {
			logger.Debug("Skipping employee without shifts", zap.String("employee_id", emp.ID))
			continue
		}

		subject, body := shiftEmail(emp.Name, view.MonthKey, shifts)
		if err := sender.SendEmail(emp.Email, subject, body); err != nil {
			logger.Warn("Failed to send schedule email",
				zap.String("employee_id", emp.ID),
				zap.Error(err))
			result.FailedEmails = append(result.FailedEmails, FailedEmail{
				EmployeeID:   emp.ID,
				EmployeeName: emp.Name,
				Email:        emp.Email,
				Error:        err.Error(),
			})
			continue
		}

		result.NotifiedEmails = append(result.NotifiedEmails, emp.Email)
	}
}

// buildPublishedSchedule converts a view into sheet rows with display dates
func buildPublishedSchedule(view *ScheduleView) *sheetsclient.Schedule {
	rows := make([]sheetsclient.ScheduleRow, len(view.Days))
	for i, day := range view.Days {
		shifts := make([][]string, len(day.Shifts))
		for j, entries := range day.Shifts {
			names := make([]string, len(entries))
			for k, entry := range entries {
				names[k] = entry.EmployeeName
			}
			shifts[j] = names
		}
		rows[i] = sheetsclient.ScheduleRow{
			Date:   displayDate(day.Date),
			Shifts: shifts,
		}
	}

	return &sheetsclient.Schedule{
		Month:       view.MonthKey,
		ShiftLabels: view.ShiftLabels,
		Rows:        rows,
	}
}

// shiftEmail renders the notification sent to one employee
func shiftEmail(name, month string, shifts []EmployeeShift) (string, string) {
	title := month
	if tabTitle, err := sheetsclient.TabTitle(month); err == nil {
		title = tabTitle
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", name)
	fmt.Fprintf(&b, "Your shifts for %s:\n\n", title)
	for _, shift := range shifts {
		fmt.Fprintf(&b, "  %s  %s", displayDate(shift.Date), shift.ShiftLabel)
		if shift.StartTime != "" && shift.EndTime != "" {
			fmt.Fprintf(&b, " (%s-%s)", shift.StartTime, shift.EndTime)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nYou have %d shifts this month.\n", len(shifts))

	return fmt.Sprintf("Your shifts for %s", title), b.String()
}
