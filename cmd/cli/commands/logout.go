package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/shift-planner/pkg/utils"
)

// LogoutCmd creates the logout command
func LogoutCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored Google login for this environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			utils.ClearToken()
			app.sheetsClient = nil
			app.gmailClient = nil
			if err := utils.DeleteTokenFile(app.Env); err != nil {
				return err
			}

			fmt.Printf("\n✓ Google login cleared for environment %q\n\n", app.Env)
			return nil
		},
	}
}
