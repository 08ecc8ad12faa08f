package services

import (
	"context"
	"fmt"

	"github.com/jakechorley/shift-planner/pkg/clients/sheetsclient"
	"github.com/jakechorley/shift-planner/pkg/db"
)

// mockDB implements a test double for db.Database
type mockDB struct {
	months         []db.ScheduleMonth
	employees      []db.Employee
	shiftTypes     []db.ShiftType
	availabilities []db.Availability
	assignments    map[string][]db.Assignment

	insertedMonths     []*db.ScheduleMonth
	insertedEmployees  []*db.Employee
	insertedShiftTypes []*db.ShiftType
	upserted           []db.Availability
	deletedDates       map[string][]string
	deletedAssignments []string
	deletedEmployees   []string
	deletedShiftTypes  []string
	replaceCalls       int
	statusUpdates      map[string]string

	getMonthsErr        error
	getEmployeesErr     error
	insertErr           error
	replaceErr          error
	setStatusErr        error
	deleteAssignmentErr error
	deleteErr           error
}

func (m *mockDB) GetEmployees(ctx context.Context) ([]db.Employee, error) {
	if m.getEmployeesErr != nil {
		return nil, m.getEmployeesErr
	}
	return m.employees, nil
}

func (m *mockDB) InsertEmployee(ctx context.Context, employee *db.Employee) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.insertedEmployees = append(m.insertedEmployees, employee)
	return nil
}

func (m *mockDB) DeleteEmployee(ctx context.Context, employeeID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedEmployees = append(m.deletedEmployees, employeeID)
	return nil
}

func (m *mockDB) GetShiftTypes(ctx context.Context) ([]db.ShiftType, error) {
	return m.shiftTypes, nil
}

func (m *mockDB) InsertShiftType(ctx context.Context, shiftType *db.ShiftType) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.insertedShiftTypes = append(m.insertedShiftTypes, shiftType)
	return nil
}

func (m *mockDB) DeleteShiftType(ctx context.Context, shiftTypeID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedShiftTypes = append(m.deletedShiftTypes, shiftTypeID)
	return nil
}

func (m *mockDB) GetScheduleMonths(ctx context.Context) ([]db.ScheduleMonth, error) {
	if m.getMonthsErr != nil {
		return nil, m.getMonthsErr
	}
	return m.months, nil
}

func (m *mockDB) InsertScheduleMonth(ctx context.Context, month *db.ScheduleMonth) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.insertedMonths = append(m.insertedMonths, month)
	return nil
}

func (m *mockDB) SetScheduleMonthStatus(ctx context.Context, monthID string, status string) error {
	if m.setStatusErr != nil {
		return m.setStatusErr
	}
	if m.statusUpdates == nil {
		m.statusUpdates = make(map[string]string)
	}
	m.statusUpdates[monthID] = status
	return nil
}

func (m *mockDB) GetAvailabilities(ctx context.Context, from, to string) ([]db.Availability, error) {
	var result []db.Availability
	for _, a := range m.availabilities {
		if a.Date >= from && a.Date <= to {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockDB) UpsertAvailabilities(ctx context.Context, availabilities []db.Availability) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	for i, a := range availabilities {
		for _, existing := range m.availabilities {
			if existing.EmployeeID == a.EmployeeID && existing.Date == a.Date {
				availabilities[i].ID = existing.ID
			}
		}
	}
	m.upserted = append(m.upserted, availabilities...)
	return nil
}

func (m *mockDB) DeleteAvailabilities(ctx context.Context, employeeID string, dates []string) error {
	if m.deletedDates == nil {
		m.deletedDates = make(map[string][]string)
	}
	m.deletedDates[employeeID] = append(m.deletedDates[employeeID], dates...)
	return nil
}

func (m *mockDB) GetAssignments(ctx context.Context, monthID string) ([]db.Assignment, error) {
	return m.assignments[monthID], nil
}

func (m *mockDB) ReplaceAssignments(ctx context.Context, monthID string, assignments []db.Assignment) error {
	m.replaceCalls++
	if m.replaceErr != nil {
		return m.replaceErr
	}
	if m.assignments == nil {
		m.assignments = make(map[string][]db.Assignment)
	}
	m.assignments[monthID] = append([]db.Assignment(nil), assignments...)
	return nil
}

func (m *mockDB) DeleteAssignment(ctx context.Context, assignmentID string) error {
	if m.deleteAssignmentErr != nil {
		return m.deleteAssignmentErr
	}
	m.deletedAssignments = append(m.deletedAssignments, assignmentID)
	return nil
}

var _ db.Database = (*mockDB)(nil)

// mockPublisher records published schedules
type mockPublisher struct {
	sheetID   string
	published *sheetsclient.Schedule
	err       error
}

func (m *mockPublisher) PublishSchedule(spreadsheetID string, schedule *sheetsclient.Schedule) error {
	if m.err != nil {
		return m.err
	}
	m.sheetID = spreadsheetID
	m.published = schedule
	return nil
}

type sentEmail struct {
	to      string
	subject string
	body    string
}

// mockSender records sent emails and fails for addresses in failFor
type mockSender struct {
	sent    []sentEmail
	failFor map[string]bool
}

func (m *mockSender) SendEmail(to, subject, body string) error {
	if m.failFor[to] {
		return fmt.Errorf("mailbox unavailable: %s", to)
	}
	m.sent = append(m.sent, sentEmail{to: to, subject: subject, body: body})
	return nil
}

func intPtr(i int) *int {
	return &i
}

// Shared fixtures. Employees are listed in name order, as the store returns them.
var (
	alice = db.Employee{ID: "e1", Name: "Alice", Email: "alice@example.com"}
	bob   = db.Employee{ID: "e2", Name: "Bob", Email: "bob@example.com"}
	carol = db.Employee{ID: "e3", Name: "Carol"}

	closingShift = db.ShiftType{ID: "s1", Label: "Closing", StartTime: "18:00", EndTime: "22:00", RequiredCount: 2, IsClosing: true}
	openingShift = db.ShiftType{ID: "s2", Label: "Opening", StartTime: "08:00", EndTime: "12:00", RequiredCount: 1}

	march2026 = db.ScheduleMonth{ID: "m1", Month: "2026-03", Status: "draft"}
)

func newMockDB() *mockDB {
	return &mockDB{
		months:     []db.ScheduleMonth{march2026},
		employees:  []db.Employee{alice, bob, carol},
		shiftTypes: []db.ShiftType{closingShift},
	}
}
