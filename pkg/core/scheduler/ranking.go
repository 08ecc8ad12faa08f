package scheduler

import (
	"cmp"
	"slices"

	"github.com/jakechorley/shift-planner/pkg/core/model"
)

// workload returns the count an employee is balanced on for a shift of the given kind
func workload(s *EmployeeRunState, isClosing bool) int {
	if isClosing {
		return s.ClosingAssignedCount
	}
	return s.TotalAssignedCount
}

// RankEmployees orders eligible employees least-loaded first.
// Closing shifts balance on closing count, all other shifts on total count.
// The sort is stable so ties keep the order the employees were passed in,
// which keeps generation deterministic.
func RankEmployees(eligible []model.Employee, isClosing bool, state RunState) []model.Employee {
	ranked := slices.Clone(eligible)
	slices.SortStableFunc(ranked, func(a, b model.Employee) int {
		return cmp.Compare(workload(state.get(a.ID), isClosing), workload(state.get(b.ID), isClosing))
	})
	return ranked
}

// SelectEmployees takes the top required employees from a ranked list.
// If fewer are available, all of them are returned and the shift stays understaffed.
func SelectEmployees(ranked []model.Employee, required int) []model.Employee {
	if required <= 0 {
		return nil
	}
	return ranked[:min(required, len(ranked))]
}
