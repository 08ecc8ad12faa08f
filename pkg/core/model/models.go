package model

// MonthStatus is the publication state of a schedule month
type MonthStatus string

const (
	MonthStatusDraft     MonthStatus = "draft"
	MonthStatusPublished MonthStatus = "published"
)

func (s MonthStatus) IsValid() bool {
	return s == MonthStatusDraft || s == MonthStatusPublished
}

// Employee represents a member of the roster
type Employee struct {
	ID    string `validate:"required"`
	Name  string `validate:"required"`
	Email string `validate:"omitempty,email"`
	Phone string

	// MaxShiftsPerMonth caps the number of assignments in one month (nil = unlimited)
	MaxShiftsPerMonth *int `validate:"omitempty,min=0"`
}

// ShiftType is a recurring daily shift definition
type ShiftType struct {
	ID            string `validate:"required"`
	Label         string
	StartTime     string // "15:04"
	EndTime       string // "15:04"
	RequiredCount int    `validate:"min=1"`

	// IsClosing selects closing-count fairness instead of total-count fairness
	IsClosing bool
}

// Availability records whether an employee can work on a date.
// A missing record means available.
type Availability struct {
	ID            string
	EmployeeID    string
	Date          string // "2006-01-02"
	IsUnavailable bool
}

// Assignment is a single (employee, date, shift) triple
type Assignment struct {
	EmployeeID  string
	Date        string // "2006-01-02"
	ShiftTypeID string
}

// ScheduleMonth is the container a generated schedule is persisted against
type ScheduleMonth struct {
	ID        string
	Month     string // "2006-01"
	Status    MonthStatus
	CreatedAt string
}
