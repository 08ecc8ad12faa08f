package scheduler

import "github.com/jakechorley/shift-planner/pkg/core/model"

const (
	// MaxConsecutiveDays is the longest unbroken run of worked dates allowed
	MaxConsecutiveDays = 5

	// ForcedRestDays is how many dates an employee sits out after reaching MaxConsecutiveDays
	ForcedRestDays = 2
)

// StreakPhase is the position of an employee in the streak state machine
type StreakPhase int

const (
	PhaseIdle StreakPhase = iota
	PhaseWorking
	PhaseResting
)

func (p StreakPhase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseWorking:
		return "Working"
	case PhaseResting:
		return "Resting"
	default:
		return "Unknown"
	}
}

// EmployeeRunState tracks one employee's counters during a single generation run.
// It is created fresh for every run and never outlives it.
type EmployeeRunState struct {
	// TotalAssignedCount is the number of assignments made so far this month
	TotalAssignedCount int

	// ClosingAssignedCount is the number of closing-shift assignments made so far this month
	ClosingAssignedCount int

	// CurrentStreak is the number of consecutive worked dates ending at the last processed date
	CurrentStreak int

	// RestDaysRemaining is the number of upcoming dates the employee must sit out (0 = not resting)
	RestDaysRemaining int
}

// Phase derives the streak phase from the counters
func (s *EmployeeRunState) Phase() StreakPhase {
	if s.RestDaysRemaining > 0 {
		return PhaseResting
	}
	if s.CurrentStreak > 0 {
		return PhaseWorking
	}
	return PhaseIdle
}

// IsResting returns true while the employee is serving forced rest
func (s *EmployeeRunState) IsResting() bool {
	return s.RestDaysRemaining > 0
}

// HasCapacity returns true if the employee may take another assignment under their monthly cap
func (s *EmployeeRunState) HasCapacity(maxShiftsPerMonth *int) bool {
	return maxShiftsPerMonth == nil || s.TotalAssignedCount < *maxShiftsPerMonth
}

// RunState maps employee ID to that employee's run state
type RunState map[string]*EmployeeRunState

// NewRunState creates zeroed state for every employee on the roster
func NewRunState(roster []model.Employee) RunState {
	state := make(RunState, len(roster))
	for _, emp := range roster {
		state[emp.ID] = &EmployeeRunState{}
	}
	return state
}

// get returns the state for an employee, creating it if the roster and state have drifted
func (rs RunState) get(employeeID string) *EmployeeRunState {
	s, ok := rs[employeeID]
	if !ok {
		s = &EmployeeRunState{}
		rs[employeeID] = s
	}
	return s
}

// recordAssignment updates the workload counters after an employee is assigned a shift
func (rs RunState) recordAssignment(employeeID string, isClosing bool) {
	s := rs.get(employeeID)
	s.TotalAssignedCount++
	if isClosing {
		s.ClosingAssignedCount++
	}
}
