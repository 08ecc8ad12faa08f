package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-planner/pkg/core/services"
)

// GenerateScheduleCmd creates the generateSchedule command
func GenerateScheduleCmd(app *AppContext) *cobra.Command {
	var dryRun bool
	var force bool

	cmd := &cobra.Command{
		Use:   "generateSchedule <month>",
		Short: "Generate a month's schedule, replacing any existing assignments",
		Long: `Generate a month's schedule from the current roster, shift types and unavailability.
<month> is a month ID or YYYY-MM. Existing assignments for the month are replaced.
Published months are only regenerated with --force.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("generateSchedule command",
				zap.String("month", args[0]),
				zap.Bool("dry_run", dryRun),
				zap.Bool("force", force))

			result, err := services.GenerateSchedule(app.Ctx, app.Database, app.Cfg, app.Logger, args[0], dryRun, force)
			if err != nil {
				return fmt.Errorf("failed to generate schedule: %w", err)
			}

			if result.DryRun {
				fmt.Printf("\n🔍 Dry run for %s (nothing saved)\n\n", result.Month.Month)
			} else {
				fmt.Printf("\n✅ Schedule generated for %s\n\n", result.Month.Month)
			}

			report := result.Report
			fmt.Printf("Assignments: %d\n", len(result.Assignments))
			fmt.Printf("Shifts:      %d\n\n", report.Occurrences)

			labels := make(map[string]string, len(result.ShiftTypes))
			for _, shift := range result.ShiftTypes {
				labels[shift.ID] = shift.Label
			}
			printUnderstaffed(report.Understaffed, labels)

			if len(report.UnreachableEmployees) > 0 {
				names := make(map[string]string, len(result.Employees))
				for _, emp := range result.Employees {
					names[emp.ID] = emp.Name
				}
				fmt.Printf("\n%sEmployees with no shifts:%s\n", colorDim, colorReset)
				for _, id := range report.UnreachableEmployees {
					fmt.Printf("  - %s (%s)\n", names[id], id)
				}
			}

			stats := make([]services.EmployeeStats, len(result.Employees))
			for i, emp := range result.Employees {
				stats[i] = services.EmployeeStats{
					EmployeeID: emp.ID,
					Name:       emp.Name,
					Total:      report.TotalCounts[emp.ID],
					Closing:    report.ClosingCounts[emp.ID],
				}
			}
			fmt.Println()
			printStats(stats, report.MinClosing, report.MaxClosing)
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute and report the schedule without saving it")
	cmd.Flags().BoolVar(&force, "force", false, "Regenerate a month that has already been published")

	return cmd
}
