package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/shift-planner/pkg/core/services"
)

// MarkUnavailableCmd creates the markUnavailable command
func MarkUnavailableCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "markUnavailable <employee_id> <YYYY-MM-DD>...",
		Short: "Mark an employee as unavailable on one or more dates",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := services.MarkUnavailable(app.Ctx, app.Database, app.Logger, args[0], args[1:])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Employee %s marked unavailable on %d dates:\n", args[0], len(records))
			for _, r := range records {
				fmt.Printf("  - %s\n", r.Date)
			}
			fmt.Println()

			return nil
		},
	}
}

// ClearUnavailabilityCmd creates the clearUnavailability command
func ClearUnavailabilityCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clearUnavailability <employee_id> <YYYY-MM-DD>...",
		Short: "Remove an employee's unavailability on one or more dates",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.ClearUnavailability(app.Ctx, app.Database, app.Logger, args[0], args[1:]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Cleared unavailability for employee %s\n\n", args[0])
			return nil
		},
	}
}
