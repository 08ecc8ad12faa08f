package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/shift-planner/pkg/core/model"
)

// assignOn builds one assignment per date for an employee on shift s1
func assignOn(employeeID string, dates ...string) []model.Assignment {
	assignments := make([]model.Assignment, 0, len(dates))
	for _, date := range dates {
		assignments = append(assignments, model.Assignment{EmployeeID: employeeID, Date: date, ShiftTypeID: "s1"})
	}
	return assignments
}

func rules(violations []ScheduleViolation) []string {
	names := make([]string, len(violations))
	for i, v := range violations {
		names[i] = v.Rule
	}
	return names
}

func TestValidateSchedule_Valid(t *testing.T) {
	assignments := assignOn("e1", "2026-03-01", "2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-08")

	violations := ValidateSchedule([]model.Employee{alice}, nil, assignments)

	assert.NotNil(t, violations)
	assert.Empty(t, violations)
}

func TestValidateSchedule_UnknownEmployee(t *testing.T) {
	violations := ValidateSchedule([]model.Employee{alice}, nil, assignOn("ghost", "2026-03-01"))

	require.Len(t, violations, 1)
	assert.Equal(t, RuleUnknownEmployee, violations[0].Rule)
	assert.Equal(t, "ghost", violations[0].EmployeeID)
}

func TestValidateSchedule_DoubleBooking(t *testing.T) {
	assignments := []model.Assignment{
		{EmployeeID: "e1", Date: "2026-03-01", ShiftTypeID: "s1"},
		{EmployeeID: "e1", Date: "2026-03-01", ShiftTypeID: "s2"},
	}

	violations := ValidateSchedule([]model.Employee{alice}, nil, assignments)

	require.Len(t, violations, 1)
	assert.Equal(t, RuleDoubleBooking, violations[0].Rule)
	assert.Equal(t, "2026-03-01", violations[0].Date)
}

func TestValidateSchedule_Unavailable(t *testing.T) {
	violations := ValidateSchedule([]model.Employee{alice}, unavailableOn("e1", "2026-03-02"),
		assignOn("e1", "2026-03-01", "2026-03-02"))

	require.Len(t, violations, 1)
	assert.Equal(t, RuleUnavailable, violations[0].Rule)
	assert.Equal(t, "2026-03-02", violations[0].Date)
}

func TestValidateSchedule_CapExceeded(t *testing.T) {
	capped := model.Employee{ID: "e1", Name: "Alice", MaxShiftsPerMonth: intPtr(2)}

	violations := ValidateSchedule([]model.Employee{capped}, nil, assignOn("e1", "2026-03-01", "2026-03-03", "2026-03-05"))

	require.Len(t, violations, 1)
	assert.Equal(t, RuleCapExceeded, violations[0].Rule)
	assert.Contains(t, violations[0].Description, "capped at 2")
}

func TestValidateSchedule_StreakExceeded(t *testing.T) {
	assignments := assignOn("e1", "2026-03-01", "2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-06")

	violations := ValidateSchedule([]model.Employee{alice}, nil, assignments)

	require.Len(t, violations, 1)
	assert.Equal(t, RuleStreakExceeded, violations[0].Rule)
	assert.Equal(t, "2026-03-01", violations[0].Date)
}

func TestValidateSchedule_ForcedRestBroken(t *testing.T) {
	// Five in a row, one day off, then back on the second rest date
	assignments := assignOn("e1", "2026-03-01", "2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-07")

	violations := ValidateSchedule([]model.Employee{alice}, nil, assignments)

	require.Len(t, violations, 1)
	assert.Equal(t, RuleForcedRest, violations[0].Rule)
	assert.Equal(t, "2026-03-07", violations[0].Date)
}

func TestValidateSchedule_ShortRunsNeedNoRest(t *testing.T) {
	assignments := assignOn("e1", "2026-03-01", "2026-03-02", "2026-03-03", "2026-03-05", "2026-03-06", "2026-03-07", "2026-03-08")

	violations := ValidateSchedule([]model.Employee{alice}, nil, assignments)

	assert.Empty(t, violations)
}

func TestValidateSchedule_ReportsEveryRule(t *testing.T) {
	capped := model.Employee{ID: "e1", Name: "Alice", MaxShiftsPerMonth: intPtr(5)}
	assignments := assignOn("e1", "2026-03-01", "2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-06")
	assignments = append(assignments, model.Assignment{EmployeeID: "e1", Date: "2026-03-01", ShiftTypeID: "s2"})

	violations := ValidateSchedule([]model.Employee{capped}, unavailableOn("e1", "2026-03-04"), assignments)

	assert.ElementsMatch(t,
		[]string{RuleDoubleBooking, RuleUnavailable, RuleCapExceeded, RuleStreakExceeded},
		rules(violations))
}
