package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-planner/cmd/cli/commands"
	"github.com/jakechorley/shift-planner/internal/config"
	"github.com/jakechorley/shift-planner/pkg/postgres"
	"github.com/jakechorley/shift-planner/pkg/utils/logging"
)

var (
	env     string
	verbose bool
	app     *commands.AppContext
	pgDB    *postgres.DB
)

func main() {
	app = &commands.AppContext{Ctx: context.Background()}

	rootCmd := &cobra.Command{
		Use:   "shift-planner",
		Short: "Shift Planner CLI - Build monthly shift schedules",
		Long:  `A CLI tool for managing employees, shift types and unavailability, and for generating and publishing monthly shift schedules.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if pgDB != nil {
				pgDB.Close()
			}
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs on the console")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.AddEmployeeCmd(app))
	rootCmd.AddCommand(commands.ListEmployeesCmd(app))
	rootCmd.AddCommand(commands.RemoveEmployeeCmd(app))
	rootCmd.AddCommand(commands.AddShiftTypeCmd(app))
	rootCmd.AddCommand(commands.ListShiftTypesCmd(app))
	rootCmd.AddCommand(commands.RemoveShiftTypeCmd(app))
	rootCmd.AddCommand(commands.MarkUnavailableCmd(app))
	rootCmd.AddCommand(commands.ClearUnavailabilityCmd(app))
	rootCmd.AddCommand(commands.DefineMonthCmd(app))
	rootCmd.AddCommand(commands.GenerateScheduleCmd(app))
	rootCmd.AddCommand(commands.ViewScheduleCmd(app))
	rootCmd.AddCommand(commands.RemoveAssignmentCmd(app))
	rootCmd.AddCommand(commands.PublishScheduleCmd(app))
	rootCmd.AddCommand(commands.ServeCmd(app))
	rootCmd.AddCommand(commands.LogoutCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initApp sets up logger, config and database. Google clients are created on demand.
func initApp() error {
	var err error

	app.Env = env
	app.Logger, err = logging.InitLogger(env, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Debug("Starting application", zap.String("environment", env))

	app.Logger.Debug("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	app.Logger.Debug("Connecting to database")
	pgDB, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pgDB.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app.Database = pgDB
	app.Logger.Debug("Database initialized successfully")

	return nil
}
