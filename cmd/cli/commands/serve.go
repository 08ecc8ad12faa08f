package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jakechorley/shift-planner/pkg/api"
)

// ServeCmd creates the serve command
func ServeCmd(app *AppContext) *cobra.Command {
	var origins []string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve published schedules over a read-only HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(app.Ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			router := api.NewRouter(api.NewHandler(app.Database, app.Logger), origins)
			return api.Serve(ctx, app.Cfg.APIAddr, router, app.Logger)
		},
	}

	cmd.Flags().StringSliceVar(&origins, "allowed-origin", []string{"*"}, "Origins allowed by CORS (repeatable)")

	return cmd
}
