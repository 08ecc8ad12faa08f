package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/shift-planner/pkg/core/services"
)

// DefineMonthCmd creates the defineMonth command
func DefineMonthCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "defineMonth <YYYY-MM>",
		Short: "Define a new schedule month as a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := services.DefineMonth(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Schedule month created\n\n")
			fmt.Printf("Month ID: %s\n", month.ID)
			fmt.Printf("Month:    %s\n", month.Month)
			fmt.Printf("Status:   %s\n\n", month.Status)

			return nil
		},
	}
}
