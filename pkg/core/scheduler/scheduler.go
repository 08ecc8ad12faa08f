// Package scheduler assigns employees to recurring daily shifts across a calendar month.
//
// Generation is a single greedy pass over the month's dates. For each date the shift types
// are processed in the order given; each shift takes the least-loaded eligible employees.
// Once a date is finished, every employee's consecutive-day streak is advanced, which may
// place them in forced rest for the following dates. Choices are never revisited.
//
// The package is pure: no I/O, no logging, no shared state between calls.
package scheduler

import (
	"time"

	"github.com/jakechorley/shift-planner/pkg/core/model"
)

// Generate produces the month's assignments.
//
// Output is ordered by date, then by shift type order, then by ranking order.
// Shifts that cannot be filled receive fewer than RequiredCount assignments; this is not an error.
// Inputs are assumed valid (RequiredCount >= 1, month in 1..12); callers validate them.
func Generate(
	employees []model.Employee,
	shiftTypes []model.ShiftType,
	year int,
	month time.Month,
	availabilities []model.Availability,
) []model.Assignment {
	unavailable := NewUnavailabilitySet(availabilities)
	state := NewRunState(employees)

	assignments := make([]model.Assignment, 0)

	for date := range MonthDates(year, month) {
		assignedToday := make(map[string]bool)

		for _, shift := range shiftTypes {
			eligible := EligibleEmployees(date, employees, unavailable, assignedToday, state)
			ranked := RankEmployees(eligible, shift.IsClosing, state)

			for _, emp := range SelectEmployees(ranked, shift.RequiredCount) {
				assignments = append(assignments, model.Assignment{
					EmployeeID:  emp.ID,
					Date:        date,
					ShiftTypeID: shift.ID,
				})
				assignedToday[emp.ID] = true
				state.recordAssignment(emp.ID, shift.IsClosing)
			}
		}

		AdvanceStreaks(employees, assignedToday, state)
	}

	return assignments
}
