package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakechorley/shift-planner/pkg/core/model"
)

func TestAdvanceStreaks_WorkingExtendsStreak(t *testing.T) {
	roster := []model.Employee{alice}
	state := NewRunState(roster)

	AdvanceStreaks(roster, map[string]bool{"e1": true}, state)
	AdvanceStreaks(roster, map[string]bool{"e1": true}, state)

	assert.Equal(t, 2, state["e1"].CurrentStreak)
	assert.Equal(t, 0, state["e1"].RestDaysRemaining)
	assert.Equal(t, PhaseWorking, state["e1"].Phase())
}

func TestAdvanceStreaks_GapResetsToIdle(t *testing.T) {
	roster := []model.Employee{alice}
	state := NewRunState(roster)
	state["e1"].CurrentStreak = 4

	AdvanceStreaks(roster, map[string]bool{}, state)

	assert.Equal(t, 0, state["e1"].CurrentStreak)
	assert.Equal(t, PhaseIdle, state["e1"].Phase())
}

func TestAdvanceStreaks_FifthDayStartsRest(t *testing.T) {
	roster := []model.Employee{alice}
	state := NewRunState(roster)
	state["e1"].CurrentStreak = MaxConsecutiveDays - 1

	AdvanceStreaks(roster, map[string]bool{"e1": true}, state)

	assert.Equal(t, ForcedRestDays, state["e1"].RestDaysRemaining)
	assert.Equal(t, PhaseResting, state["e1"].Phase())
	assert.True(t, state["e1"].IsResting())
}

func TestAdvanceStreaks_RestLastsExactlyTwoDates(t *testing.T) {
	roster := []model.Employee{alice}
	state := NewRunState(roster)

	for i := 0; i < MaxConsecutiveDays; i++ {
		AdvanceStreaks(roster, map[string]bool{"e1": true}, state)
	}
	assert.True(t, state["e1"].IsResting(), "Should rest after %d days", MaxConsecutiveDays)

	AdvanceStreaks(roster, map[string]bool{}, state)
	assert.True(t, state["e1"].IsResting(), "First rest date passed, one to go")
	assert.Equal(t, 1, state["e1"].RestDaysRemaining)

	AdvanceStreaks(roster, map[string]bool{}, state)
	assert.False(t, state["e1"].IsResting(), "Rest should be over")
	assert.Equal(t, PhaseIdle, state["e1"].Phase())
	assert.Equal(t, 0, state["e1"].CurrentStreak)
}

func TestAdvanceStreaks_RestDatesDoNotCountTowardNewStreak(t *testing.T) {
	roster := []model.Employee{alice}
	state := NewRunState(roster)
	state["e1"].CurrentStreak = MaxConsecutiveDays
	state["e1"].RestDaysRemaining = 1

	// Even if marked as worked, a resting date only counts down
	AdvanceStreaks(roster, map[string]bool{"e1": true}, state)

	assert.Equal(t, 0, state["e1"].CurrentStreak)
	assert.Equal(t, 0, state["e1"].RestDaysRemaining)
}

func TestAdvanceStreaks_ThreeThenFourNeverRests(t *testing.T) {
	roster := []model.Employee{alice}
	state := NewRunState(roster)

	worked := []bool{true, true, true, false, true, true, true, true}
	for _, w := range worked {
		AdvanceStreaks(roster, map[string]bool{"e1": w}, state)
		assert.False(t, state["e1"].IsResting())
	}
	assert.Equal(t, 4, state["e1"].CurrentStreak)
}

func TestAdvanceStreaks_EmployeesAreIndependent(t *testing.T) {
	roster := []model.Employee{alice, bob}
	state := NewRunState(roster)
	state["e1"].CurrentStreak = MaxConsecutiveDays - 1
	state["e2"].CurrentStreak = 2

	AdvanceStreaks(roster, map[string]bool{"e1": true}, state)

	assert.True(t, state["e1"].IsResting())
	assert.Equal(t, 0, state["e2"].CurrentStreak)
	assert.Equal(t, PhaseIdle, state["e2"].Phase())
}

func TestStreakPhase_String(t *testing.T) {
	assert.Equal(t, "Idle", PhaseIdle.String())
	assert.Equal(t, "Working", PhaseWorking.String())
	assert.Equal(t, "Resting", PhaseResting.String())
	assert.Equal(t, "Unknown", StreakPhase(42).String())
}
