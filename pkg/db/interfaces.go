package db

import "context"

// EmployeeStore defines the interface for employee database operations
type EmployeeStore interface {
	GetEmployees(ctx context.Context) ([]Employee, error)
	InsertEmployee(ctx context.Context, employee *Employee) error
	// DeleteEmployee also removes the employee's availability and assignment records
	DeleteEmployee(ctx context.Context, employeeID string) error
}

// ShiftTypeStore defines the interface for shift type database operations
type ShiftTypeStore interface {
	GetShiftTypes(ctx context.Context) ([]ShiftType, error)
	InsertShiftType(ctx context.Context, shiftType *ShiftType) error
	// DeleteShiftType also removes the shift type's assignment records
	DeleteShiftType(ctx context.Context, shiftTypeID string) error
}

// ScheduleMonthStore defines the interface for schedule month database operations
type ScheduleMonthStore interface {
	GetScheduleMonths(ctx context.Context) ([]ScheduleMonth, error)
	InsertScheduleMonth(ctx context.Context, month *ScheduleMonth) error
	SetScheduleMonthStatus(ctx context.Context, monthID string, status string) error
}

// AvailabilityStore defines the interface for availability database operations
type AvailabilityStore interface {
	// GetAvailabilities returns records with from <= date <= to (inclusive, "2006-01-02")
	GetAvailabilities(ctx context.Context, from, to string) ([]Availability, error)
	// UpsertAvailabilities writes the stored row's ID back into each record, which differs
	// from the given ID when the employee already had a record on that date
	UpsertAvailabilities(ctx context.Context, availabilities []Availability) error
	DeleteAvailabilities(ctx context.Context, employeeID string, dates []string) error
}

// AssignmentStore defines the interface for assignment database operations
type AssignmentStore interface {
	GetAssignments(ctx context.Context, monthID string) ([]Assignment, error)
	// ReplaceAssignments atomically deletes every assignment of the month and inserts the given ones
	ReplaceAssignments(ctx context.Context, monthID string, assignments []Assignment) error
	DeleteAssignment(ctx context.Context, assignmentID string) error
}

// Database defines the interface for all database operations.
// postgres.DB implements this interface.
type Database interface {
	EmployeeStore
	ShiftTypeStore
	ScheduleMonthStore
	AvailabilityStore
	AssignmentStore
}
