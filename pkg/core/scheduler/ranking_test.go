package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakechorley/shift-planner/pkg/core/model"
)

func TestRankEmployees_ClosingUsesClosingCount(t *testing.T) {
	roster := []model.Employee{alice, bob, carol}
	state := NewRunState(roster)
	state["e1"].ClosingAssignedCount = 2
	state["e1"].TotalAssignedCount = 2
	state["e2"].ClosingAssignedCount = 0
	state["e2"].TotalAssignedCount = 5
	state["e3"].ClosingAssignedCount = 1
	state["e3"].TotalAssignedCount = 1

	ranked := RankEmployees(roster, true, state)

	assert.Equal(t, []string{"e2", "e3", "e1"}, employeeIDs(ranked))
}

func TestRankEmployees_GeneralUsesTotalCount(t *testing.T) {
	roster := []model.Employee{alice, bob, carol}
	state := NewRunState(roster)
	state["e1"].ClosingAssignedCount = 2
	state["e1"].TotalAssignedCount = 2
	state["e2"].ClosingAssignedCount = 0
	state["e2"].TotalAssignedCount = 5
	state["e3"].ClosingAssignedCount = 1
	state["e3"].TotalAssignedCount = 1

	ranked := RankEmployees(roster, false, state)

	assert.Equal(t, []string{"e3", "e1", "e2"}, employeeIDs(ranked))
}

func TestRankEmployees_TiesKeepInputOrder(t *testing.T) {
	dave := model.Employee{ID: "e4", Name: "Dave"}
	roster := []model.Employee{dave, carol, bob, alice}
	state := NewRunState(roster)
	state["e3"].TotalAssignedCount = 1

	ranked := RankEmployees(roster, false, state)

	assert.Equal(t, []string{"e4", "e2", "e1", "e3"}, employeeIDs(ranked))
}

func TestRankEmployees_DoesNotMutateInput(t *testing.T) {
	roster := []model.Employee{alice, bob}
	state := NewRunState(roster)
	state["e1"].TotalAssignedCount = 3

	_ = RankEmployees(roster, false, state)

	assert.Equal(t, []string{"e1", "e2"}, employeeIDs(roster))
}

func TestSelectEmployees(t *testing.T) {
	ranked := []model.Employee{alice, bob, carol}

	tests := []struct {
		name     string
		required int
		expected []string
	}{
		{"takes top required", 2, []string{"e1", "e2"}},
		{"exact fit", 3, []string{"e1", "e2", "e3"}},
		{"fewer available than required", 5, []string{"e1", "e2", "e3"}},
		{"non-positive required", 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, employeeIDs(SelectEmployees(ranked, tt.required)))
		})
	}
}
