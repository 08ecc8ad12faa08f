package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/shift-planner/pkg/core/services"
)

// ViewScheduleCmd creates the viewSchedule command
func ViewScheduleCmd(app *AppContext) *cobra.Command {
	var employeeID string

	cmd := &cobra.Command{
		Use:   "viewSchedule <month>",
		Short: "Show a month's stored schedule",
		Long:  "Show a month's stored schedule as a date by shift grid with per-employee statistics. <month> is a month ID or YYYY-MM.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := services.ViewSchedule(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n📅 Schedule for %s (%s)\n\n", view.MonthKey, view.Status)

			if employeeID != "" {
				shifts := view.ShiftsFor(employeeID)
				if len(shifts) == 0 {
					fmt.Printf("No shifts for employee %s\n\n", employeeID)
					return nil
				}
				fmt.Printf("%-12s  %-20s  %-13s  %s\n", "Date", "Shift", "Time", "Assignment")
				for _, s := range shifts {
					fmt.Printf("%-12s  %-20s  %s-%s  %s\n", s.Date, truncate(s.ShiftLabel, 20), s.StartTime, s.EndTime, s.AssignmentID)
				}
				fmt.Println()
				return nil
			}

			printScheduleGrid(view)
			fmt.Println()

			labels := make(map[string]string, len(view.ShiftTypes))
			for _, shift := range view.ShiftTypes {
				labels[shift.ID] = shift.Label
			}
			printUnderstaffed(view.Understaffed, labels)
			fmt.Println()
			printStats(view.Stats, view.MinClosing, view.MaxClosing)
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVar(&employeeID, "employee", "", "Only show this employee's shifts, with assignment IDs")

	return cmd
}
