package db

import "github.com/jakechorley/shift-planner/pkg/core/model"

// Employee represents a database employee record
type Employee struct {
	ID                string
	Name              string
	Email             string
	Phone             string
	MaxShiftsPerMonth *int
	CreatedAt         string
}

// ShiftType represents a database shift type record
type ShiftType struct {
	ID            string
	Label         string
	StartTime     string
	EndTime       string
	RequiredCount int
	IsClosing     bool
	CreatedAt     string
}

// ScheduleMonth represents a database schedule month record
type ScheduleMonth struct {
	ID        string
	Month     string
	Status    string
	CreatedAt string
}

// Availability represents a database availability record
type Availability struct {
	ID            string
	EmployeeID    string
	Date          string
	IsUnavailable bool
}

// Assignment represents a database assignment record
type Assignment struct {
	ID              string
	ScheduleMonthID string
	EmployeeID      string
	Date            string
	ShiftTypeID     string
}

// ToModel converts the record to the domain type
func (e Employee) ToModel() model.Employee {
	return model.Employee{
		ID:                e.ID,
		Name:              e.Name,
		Email:             e.Email,
		Phone:             e.Phone,
		MaxShiftsPerMonth: e.MaxShiftsPerMonth,
	}
}

// ToModel converts the record to the domain type
func (s ShiftType) ToModel() model.ShiftType {
	return model.ShiftType{
		ID:            s.ID,
		Label:         s.Label,
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		RequiredCount: s.RequiredCount,
		IsClosing:     s.IsClosing,
	}
}

// ToModel converts the record to the domain type
func (m ScheduleMonth) ToModel() model.ScheduleMonth {
	return model.ScheduleMonth{
		ID:        m.ID,
		Month:     m.Month,
		Status:    model.MonthStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

// ToModel converts the record to the domain type
func (a Availability) ToModel() model.Availability {
	return model.Availability{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		Date:          a.Date,
		IsUnavailable: a.IsUnavailable,
	}
}

// ToModel drops the persistence identifiers
func (a Assignment) ToModel() model.Assignment {
	return model.Assignment{
		EmployeeID:  a.EmployeeID,
		Date:        a.Date,
		ShiftTypeID: a.ShiftTypeID,
	}
}

// EmployeesToModels converts a slice of records, preserving order
func EmployeesToModels(records []Employee) []model.Employee {
	out := make([]model.Employee, len(records))
	for i, r := range records {
		out[i] = r.ToModel()
	}
	return out
}

// ShiftTypesToModels converts a slice of records, preserving order
func ShiftTypesToModels(records []ShiftType) []model.ShiftType {
	out := make([]model.ShiftType, len(records))
	for i, r := range records {
		out[i] = r.ToModel()
	}
	return out
}

// AvailabilitiesToModels converts a slice of records, preserving order
func AvailabilitiesToModels(records []Availability) []model.Availability {
	out := make([]model.Availability, len(records))
	for i, r := range records {
		out[i] = r.ToModel()
	}
	return out
}

// AssignmentsToModels converts a slice of records, preserving order
func AssignmentsToModels(records []Assignment) []model.Assignment {
	out := make([]model.Assignment, len(records))
	for i, r := range records {
		out[i] = r.ToModel()
	}
	return out
}
