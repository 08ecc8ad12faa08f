package scheduler

import (
	"time"

	"github.com/jakechorley/shift-planner/pkg/core/model"
)

// UnderstaffedOccurrence is a shift on a date that received fewer than RequiredCount employees
type UnderstaffedOccurrence struct {
	Date        string `json:"date"`
	ShiftTypeID string `json:"shiftTypeId"`
	Required    int    `json:"required"`
	Assigned    int    `json:"assigned"`
}

// Missing returns how many more employees the occurrence needed
func (u UnderstaffedOccurrence) Missing() int {
	return u.Required - u.Assigned
}

// Report summarises coverage and workload for a month's assignments
type Report struct {
	// Occurrences is the number of (date, shift type) pairs in the month
	Occurrences int

	// Understaffed lists occurrences that were not fully staffed, in date then shift type order
	Understaffed []UnderstaffedOccurrence

	// UnreachableEmployees are roster members with no assignments at all, in roster order
	UnreachableEmployees []string

	// TotalCounts maps employee ID to number of assignments
	TotalCounts map[string]int

	// ClosingCounts maps employee ID to number of closing-shift assignments
	ClosingCounts map[string]int

	// MinClosing and MaxClosing are the extremes of ClosingCounts across the roster
	MinClosing int
	MaxClosing int
}

// Complete returns true if every occurrence was fully staffed
func (r *Report) Complete() bool {
	return len(r.Understaffed) == 0
}

// ClosingSpread is the gap between the most and least loaded employee on closing shifts
func (r *Report) ClosingSpread() int {
	return r.MaxClosing - r.MinClosing
}

// BuildReport derives understaffed occurrences, unreachable employees and per-employee
// counts from a month's assignments. The scheduler never flags these itself.
func BuildReport(
	employees []model.Employee,
	shiftTypes []model.ShiftType,
	year int,
	month time.Month,
	assignments []model.Assignment,
) *Report {
	report := &Report{
		Understaffed:         []UnderstaffedOccurrence{},
		UnreachableEmployees: []string{},
		TotalCounts:          make(map[string]int, len(employees)),
		ClosingCounts:        make(map[string]int, len(employees)),
	}

	closingShifts := make(map[string]bool)
	for _, shift := range shiftTypes {
		if shift.IsClosing {
			closingShifts[shift.ID] = true
		}
	}

	for _, emp := range employees {
		report.TotalCounts[emp.ID] = 0
		report.ClosingCounts[emp.ID] = 0
	}

	// date -> shift type ID -> assigned count
	filled := make(map[string]map[string]int)
	for _, a := range assignments {
		if filled[a.Date] == nil {
			filled[a.Date] = make(map[string]int)
		}
		filled[a.Date][a.ShiftTypeID]++

		report.TotalCounts[a.EmployeeID]++
		if closingShifts[a.ShiftTypeID] {
			report.ClosingCounts[a.EmployeeID]++
		}
	}

	for date := range MonthDates(year, month) {
		for _, shift := range shiftTypes {
			report.Occurrences++
			assigned := filled[date][shift.ID]
			if assigned < shift.RequiredCount {
				report.Understaffed = append(report.Understaffed, UnderstaffedOccurrence{
					Date:        date,
					ShiftTypeID: shift.ID,
					Required:    shift.RequiredCount,
					Assigned:    assigned,
				})
			}
		}
	}

	for i, emp := range employees {
		if report.TotalCounts[emp.ID] == 0 {
			report.UnreachableEmployees = append(report.UnreachableEmployees, emp.ID)
		}

		closing := report.ClosingCounts[emp.ID]
		if i == 0 || closing < report.MinClosing {
			report.MinClosing = closing
		}
		if i == 0 || closing > report.MaxClosing {
			report.MaxClosing = closing
		}
	}

	return report
}
