package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakechorley/shift-planner/pkg/core/model"
)

func employeeIDs(employees []model.Employee) []string {
	ids := make([]string, len(employees))
	for i, emp := range employees {
		ids[i] = emp.ID
	}
	return ids
}

func TestNewUnavailabilitySet_OnlyKeepsUnavailableRecords(t *testing.T) {
	set := NewUnavailabilitySet([]model.Availability{
		{EmployeeID: "e1", Date: "2026-03-01", IsUnavailable: true},
		{EmployeeID: "e1", Date: "2026-03-02", IsUnavailable: false},
		{EmployeeID: "e2", Date: "2026-03-02", IsUnavailable: true},
	})

	assert.True(t, set.IsUnavailable("e1", "2026-03-01"))
	assert.False(t, set.IsUnavailable("e1", "2026-03-02"))
	assert.True(t, set.IsUnavailable("e2", "2026-03-02"))
	assert.False(t, set.IsUnavailable("e3", "2026-03-01"))
}

func TestEligibleEmployees_AllEligible(t *testing.T) {
	roster := []model.Employee{alice, bob, carol}
	state := NewRunState(roster)

	eligible := EligibleEmployees("2026-03-01", roster, UnavailabilitySet{}, map[string]bool{}, state)

	assert.Equal(t, []string{"e1", "e2", "e3"}, employeeIDs(eligible))
}

func TestEligibleEmployees_ExcludesUnavailable(t *testing.T) {
	roster := []model.Employee{alice, bob, carol}
	state := NewRunState(roster)
	unavailable := NewUnavailabilitySet(unavailableOn("e2", "2026-03-01"))

	eligible := EligibleEmployees("2026-03-01", roster, unavailable, map[string]bool{}, state)
	assert.Equal(t, []string{"e1", "e3"}, employeeIDs(eligible))

	// Unavailability is per date
	eligible = EligibleEmployees("2026-03-02", roster, unavailable, map[string]bool{}, state)
	assert.Equal(t, []string{"e1", "e2", "e3"}, employeeIDs(eligible))
}

func TestEligibleEmployees_ExcludesAlreadyAssignedToday(t *testing.T) {
	roster := []model.Employee{alice, bob, carol}
	state := NewRunState(roster)

	eligible := EligibleEmployees("2026-03-01", roster, UnavailabilitySet{}, map[string]bool{"e1": true}, state)

	assert.Equal(t, []string{"e2", "e3"}, employeeIDs(eligible))
}

func TestEligibleEmployees_ExcludesEmployeesAtCap(t *testing.T) {
	capped := model.Employee{ID: "e1", Name: "Alice", MaxShiftsPerMonth: intPtr(2)}
	roster := []model.Employee{capped, bob}
	state := NewRunState(roster)

	state["e1"].TotalAssignedCount = 1
	eligible := EligibleEmployees("2026-03-01", roster, UnavailabilitySet{}, map[string]bool{}, state)
	assert.Equal(t, []string{"e1", "e2"}, employeeIDs(eligible), "Below cap should be eligible")

	state["e1"].TotalAssignedCount = 2
	eligible = EligibleEmployees("2026-03-01", roster, UnavailabilitySet{}, map[string]bool{}, state)
	assert.Equal(t, []string{"e2"}, employeeIDs(eligible), "At cap should be excluded")
}

func TestEligibleEmployees_ExcludesRestingEmployees(t *testing.T) {
	roster := []model.Employee{alice, bob}
	state := NewRunState(roster)
	state["e1"].CurrentStreak = MaxConsecutiveDays
	state["e1"].RestDaysRemaining = 1

	eligible := EligibleEmployees("2026-03-01", roster, UnavailabilitySet{}, map[string]bool{}, state)

	assert.Equal(t, []string{"e2"}, employeeIDs(eligible))
}

func TestEligibleEmployees_WorkingStreakStillEligible(t *testing.T) {
	roster := []model.Employee{alice}
	state := NewRunState(roster)
	state["e1"].CurrentStreak = MaxConsecutiveDays - 1

	eligible := EligibleEmployees("2026-03-01", roster, UnavailabilitySet{}, map[string]bool{}, state)

	assert.Equal(t, []string{"e1"}, employeeIDs(eligible))
}

func TestEligibleEmployees_EmptyRoster(t *testing.T) {
	eligible := EligibleEmployees("2026-03-01", nil, UnavailabilitySet{}, map[string]bool{}, RunState{})

	assert.NotNil(t, eligible)
	assert.Empty(t, eligible)
}
