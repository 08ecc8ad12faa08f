package scheduler

import "github.com/jakechorley/shift-planner/pkg/core/model"

// AdvanceStreaks moves every employee on the roster one date forward in the streak state machine.
// It must be called exactly once per date, after all of that date's shifts have been assigned.
//
// Transitions:
//   - Resting with more than one rest date left: count down
//   - Resting on the last rest date: back to Idle, eligible again from the next date
//   - Idle/Working and worked this date: extend the streak, and start ForcedRestDays of rest
//     once it reaches MaxConsecutiveDays
//   - Idle/Working and did not work this date: streak resets to zero
//
// A rest date never counts toward a new streak.
func AdvanceStreaks(roster []model.Employee, workedToday map[string]bool, state RunState) {
	for _, emp := range roster {
		advanceStreak(state.get(emp.ID), workedToday[emp.ID])
	}
}

func advanceStreak(s *EmployeeRunState, worked bool) {
	switch s.Phase() {
	case PhaseResting:
		s.RestDaysRemaining--
		if s.RestDaysRemaining == 0 {
			s.CurrentStreak = 0
		}
	default:
		if !worked {
			s.CurrentStreak = 0
			return
		}
		s.CurrentStreak++
		if s.CurrentStreak >= MaxConsecutiveDays {
			s.RestDaysRemaining = ForcedRestDays
		}
	}
}
