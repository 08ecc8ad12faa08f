package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/shift-planner/pkg/core/services"
)

// RemoveAssignmentCmd creates the removeAssignment command
func RemoveAssignmentCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "removeAssignment <assignment_id>",
		Short: "Remove a single assignment from a stored schedule",
		Long:  "Remove a single assignment. Use 'viewSchedule <month> --employee <id>' to find assignment IDs.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.RemoveAssignment(app.Ctx, app.Database, app.Logger, args[0]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Assignment %s removed\n\n", args[0])
			return nil
		},
	}
}
