package scheduler

import "github.com/jakechorley/shift-planner/pkg/core/model"

// UnavailabilitySet records which (employee, date) pairs are marked unavailable
type UnavailabilitySet map[string]map[string]bool

// NewUnavailabilitySet builds the set from availability records.
// Only records with IsUnavailable set are kept.
func NewUnavailabilitySet(availabilities []model.Availability) UnavailabilitySet {
	set := make(UnavailabilitySet)
	for _, a := range availabilities {
		if !a.IsUnavailable {
			continue
		}
		if set[a.EmployeeID] == nil {
			set[a.EmployeeID] = make(map[string]bool)
		}
		set[a.EmployeeID][a.Date] = true
	}
	return set
}

// IsUnavailable returns true if the employee is marked unavailable on the date
func (u UnavailabilitySet) IsUnavailable(employeeID, date string) bool {
	return u[employeeID][date]
}

// IsEligible reports whether an employee may take a shift on the date.
// All of the following must hold:
//   - not marked unavailable on the date
//   - not already assigned any shift on the date
//   - under their monthly cap, if they have one
//   - not serving forced rest
func IsEligible(
	emp model.Employee,
	date string,
	unavailable UnavailabilitySet,
	assignedToday map[string]bool,
	state RunState,
) bool {
	if unavailable.IsUnavailable(emp.ID, date) {
		return false
	}
	if assignedToday[emp.ID] {
		return false
	}

	s := state.get(emp.ID)
	if !s.HasCapacity(emp.MaxShiftsPerMonth) {
		return false
	}
	return !s.IsResting()
}

// EligibleEmployees returns the roster members who may be assigned a shift on the date.
// Roster order is preserved but callers must not rely on it; ranking decides the order.
func EligibleEmployees(
	date string,
	roster []model.Employee,
	unavailable UnavailabilitySet,
	assignedToday map[string]bool,
	state RunState,
) []model.Employee {
	eligible := make([]model.Employee, 0, len(roster))
	for _, emp := range roster {
		if IsEligible(emp, date, unavailable, assignedToday, state) {
			eligible = append(eligible, emp)
		}
	}
	return eligible
}
