package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-planner/pkg/core/services"
)

// PublishScheduleCmd creates the publishSchedule command
func PublishScheduleCmd(app *AppContext) *cobra.Command {
	var toSheet bool
	var notify bool

	cmd := &cobra.Command{
		Use:   "publishSchedule <month>",
		Short: "Publish a month's schedule",
		Long: `Mark a month's schedule as published. With --sheet the schedule is written to a tab
of the configured schedule spreadsheet; with --notify every employee with an email address
is sent their own shifts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("publishSchedule command",
				zap.String("month", args[0]),
				zap.Bool("sheet", toSheet),
				zap.Bool("notify", notify))

			var publisher services.SchedulePublisher
			if toSheet {
				client, err := app.SheetsClient()
				if err != nil {
					return err
				}
				publisher = client
			}

			var sender services.EmailSender
			if notify {
				client, err := app.GmailClient()
				if err != nil {
					return err
				}
				sender = client
			}

			result, err := services.PublishSchedule(
				app.Ctx,
				app.Database,
				publisher,
				sender,
				app.Cfg,
				app.Logger,
				args[0],
				toSheet,
				notify,
			)
			if err != nil {
				return fmt.Errorf("failed to publish schedule: %w", err)
			}

			fmt.Printf("\n✅ Schedule for %s published\n\n", result.View.MonthKey)
			if result.SheetID != "" {
				fmt.Printf("Sheet ID: %s\n", result.SheetID)
			}

			if notify {
				fmt.Printf("📧 Sent %d emails\n", len(result.NotifiedEmails))
				if len(result.FailedEmails) > 0 {
					fmt.Printf("\n%s⚠ %d emails failed:%s\n", colorYellow, len(result.FailedEmails), colorReset)
					for _, f := range result.FailedEmails {
						fmt.Printf("  - %s <%s>: %s\n", optional(f.EmployeeName), optional(f.Email), f.Error)
					}
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().BoolVar(&toSheet, "sheet", false, "Write the schedule to the configured Google Sheet")
	cmd.Flags().BoolVar(&notify, "notify", false, "Email each employee their shifts")

	return cmd
}
