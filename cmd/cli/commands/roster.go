package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jakechorley/shift-planner/pkg/core/services"
)

// AddEmployeeCmd creates the addEmployee command
func AddEmployeeCmd(app *AppContext) *cobra.Command {
	var email, phone string
	var maxShifts int

	cmd := &cobra.Command{
		Use:   "addEmployee <name>",
		Short: "Add an employee to the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := services.NewEmployee{
				Name:  args[0],
				Email: email,
				Phone: phone,
			}
			if cmd.Flags().Changed("max-shifts") {
				input.MaxShiftsPerMonth = &maxShifts
			}

			employee, err := services.AddEmployee(app.Ctx, app.Database, app.Logger, input)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Employee added\n\n")
			fmt.Printf("ID:    %s\n", employee.ID)
			fmt.Printf("Name:  %s\n", employee.Name)
			fmt.Printf("Email: %s\n", optional(employee.Email))
			fmt.Printf("Phone: %s\n\n", optional(employee.Phone))

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address for schedule notifications")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().IntVar(&maxShifts, "max-shifts", 0, "Maximum shifts per month (unlimited if not set)")

	return cmd
}

// ListEmployeesCmd creates the listEmployees command
func ListEmployeesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listEmployees",
		Short: "List the roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := services.ListEmployees(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\nFound %d employees:\n\n", len(employees))
			for _, e := range employees {
				limit := "no cap"
				if e.MaxShiftsPerMonth != nil {
					limit = fmt.Sprintf("max %d/month", *e.MaxShiftsPerMonth)
				}
				fmt.Printf("- %s (%s) - %s - %s\n", e.Name, e.ID, optional(e.Email), limit)
			}
			fmt.Println()

			return nil
		},
	}
}

// AddShiftTypeCmd creates the addShiftType command
func AddShiftTypeCmd(app *AppContext) *cobra.Command {
	var closing bool

	cmd := &cobra.Command{
		Use:   "addShiftType <label> <HH:MM> <HH:MM> <required_count>",
		Short: "Add a daily shift type",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			required, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("required_count must be a number: %w", err)
			}

			shift, err := services.AddShiftType(app.Ctx, app.Database, app.Logger, services.NewShiftType{
				Label:         args[0],
				StartTime:     args[1],
				EndTime:       args[2],
				RequiredCount: required,
				IsClosing:     closing,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Shift type added\n\n")
			fmt.Printf("ID:       %s\n", shift.ID)
			fmt.Printf("Label:    %s\n", shift.Label)
			fmt.Printf("Time:     %s-%s\n", shift.StartTime, shift.EndTime)
			fmt.Printf("Required: %d\n", shift.RequiredCount)
			fmt.Printf("Closing:  %t\n\n", shift.IsClosing)

			return nil
		},
	}

	cmd.Flags().BoolVar(&closing, "closing", false, "Mark this shift as a closing shift")

	return cmd
}

// ListShiftTypesCmd creates the listShiftTypes command
func ListShiftTypesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listShiftTypes",
		Short: "List shift types in scheduling order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shiftTypes, err := services.ListShiftTypes(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\nFound %d shift types:\n\n", len(shiftTypes))
			for _, s := range shiftTypes {
				closing := ""
				if s.IsClosing {
					closing = " [closing]"
				}
				fmt.Printf("- %s (%s) %s-%s, needs %d%s\n", s.Label, s.ID, s.StartTime, s.EndTime, s.RequiredCount, closing)
			}
			fmt.Println()

			return nil
		},
	}
}

// RemoveEmployeeCmd creates the removeEmployee command
func RemoveEmployeeCmd(app *AppContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "removeEmployee <employee_id>",
		Short: "Remove an employee with their unavailability and assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			employee, err := services.RemoveEmployee(app.Ctx, app.Database, app.Logger, args[0], force)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Employee %s (%s) removed\n\n", employee.Name, employee.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Remove even if the employee is on a published schedule")

	return cmd
}

// RemoveShiftTypeCmd creates the removeShiftType command
func RemoveShiftTypeCmd(app *AppContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "removeShiftType <shift_type_id>",
		Short: "Remove a shift type and its assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shiftType, err := services.RemoveShiftType(app.Ctx, app.Database, app.Logger, args[0], force)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Shift type %s (%s) removed\n\n", shiftType.Label, shiftType.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Remove even if the shift type is used by a published schedule")

	return cmd
}
