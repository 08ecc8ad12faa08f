package scheduler

import (
	"fmt"
	"slices"
	"time"

	"github.com/jakechorley/shift-planner/pkg/core/model"
)

// Rule names reported in ScheduleViolation
const (
	RuleUnknownEmployee = "UnknownEmployee"
	RuleDoubleBooking   = "DoubleBooking"
	RuleUnavailable     = "Unavailable"
	RuleCapExceeded     = "CapExceeded"
	RuleStreakExceeded  = "StreakExceeded"
	RuleForcedRest      = "ForcedRest"
)

// ScheduleViolation describes one broken hard constraint in a set of assignments
type ScheduleViolation struct {
	Rule        string
	EmployeeID  string
	Date        string
	Description string
}

// ValidateSchedule checks a set of assignments against the hard constraints:
// one shift per employee per date, unavailability, monthly caps, the consecutive-day
// limit and forced rest after a maximal streak.
// Returns an empty slice when the schedule is valid.
func ValidateSchedule(
	employees []model.Employee,
	availabilities []model.Availability,
	assignments []model.Assignment,
) []ScheduleViolation {
	violations := []ScheduleViolation{}

	employeesByID := make(map[string]model.Employee, len(employees))
	for _, emp := range employees {
		employeesByID[emp.ID] = emp
	}
	unavailable := NewUnavailabilitySet(availabilities)

	// employee ID -> date -> number of assignments
	worked := make(map[string]map[string]int)

	for _, a := range assignments {
		if _, ok := employeesByID[a.EmployeeID]; !ok {
			violations = append(violations, ScheduleViolation{
				Rule:        RuleUnknownEmployee,
				EmployeeID:  a.EmployeeID,
				Date:        a.Date,
				Description: fmt.Sprintf("Employee %s is not on the roster", a.EmployeeID),
			})
			continue
		}

		if worked[a.EmployeeID] == nil {
			worked[a.EmployeeID] = make(map[string]int)
		}
		worked[a.EmployeeID][a.Date]++

		if worked[a.EmployeeID][a.Date] == 2 {
			violations = append(violations, ScheduleViolation{
				Rule:        RuleDoubleBooking,
				EmployeeID:  a.EmployeeID,
				Date:        a.Date,
				Description: fmt.Sprintf("Employee %s has more than one shift on %s", a.EmployeeID, a.Date),
			})
		}

		if unavailable.IsUnavailable(a.EmployeeID, a.Date) {
			violations = append(violations, ScheduleViolation{
				Rule:        RuleUnavailable,
				EmployeeID:  a.EmployeeID,
				Date:        a.Date,
				Description: fmt.Sprintf("Employee %s is unavailable on %s", a.EmployeeID, a.Date),
			})
		}
	}

	for _, emp := range employees {
		dates := worked[emp.ID]

		total := 0
		for _, count := range dates {
			total += count
		}
		if emp.MaxShiftsPerMonth != nil && total > *emp.MaxShiftsPerMonth {
			violations = append(violations, ScheduleViolation{
				Rule:        RuleCapExceeded,
				EmployeeID:  emp.ID,
				Description: fmt.Sprintf("Employee %s has %d shifts but is capped at %d", emp.ID, total, *emp.MaxShiftsPerMonth),
			})
		}

		violations = append(violations, validateStreaks(emp.ID, dates)...)
	}

	return violations
}

// validateStreaks walks an employee's worked dates as maximal runs of consecutive calendar dates
func validateStreaks(employeeID string, worked map[string]int) []ScheduleViolation {
	var violations []ScheduleViolation

	days := make([]time.Time, 0, len(worked))
	for date := range worked {
		day, err := time.Parse(DateLayout, date)
		if err != nil {
			continue
		}
		days = append(days, day)
	}
	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })

	isWorked := func(day time.Time) bool {
		return worked[day.Format(DateLayout)] > 0
	}

	for i := 0; i < len(days); {
		runStart := days[i]
		runLength := 1
		for i+runLength < len(days) && days[i+runLength].Equal(runStart.AddDate(0, 0, runLength)) {
			runLength++
		}
		runEnd := days[i+runLength-1]

		switch {
		case runLength > MaxConsecutiveDays:
			violations = append(violations, ScheduleViolation{
				Rule:       RuleStreakExceeded,
				EmployeeID: employeeID,
				Date:       runStart.Format(DateLayout),
				Description: fmt.Sprintf("Employee %s works %d consecutive days from %s (max %d)",
					employeeID, runLength, runStart.Format(DateLayout), MaxConsecutiveDays),
			})
		case runLength == MaxConsecutiveDays:
			// The date right after a maximal run is free by construction, so only the rest of
			// the rest window needs checking
			for offset := 2; offset <= ForcedRestDays; offset++ {
				restDay := runEnd.AddDate(0, 0, offset)
				if isWorked(restDay) {
					violations = append(violations, ScheduleViolation{
						Rule:       RuleForcedRest,
						EmployeeID: employeeID,
						Date:       restDay.Format(DateLayout),
						Description: fmt.Sprintf("Employee %s works on %s during forced rest after %d consecutive days",
							employeeID, restDay.Format(DateLayout), MaxConsecutiveDays),
					})
				}
			}
		}

		i += runLength
	}

	return violations
}
