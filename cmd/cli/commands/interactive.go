package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var errExitSession = errors.New("exit session")

// InteractiveCmd creates the interactive command
func InteractiveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive session (connect and authenticate once, run many commands)",
		Long: `Start an interactive session where you can run multiple commands against one database
connection and one Google login. Type 'help' to see available commands and 'exit' or 'quit' to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("\n🚀 Starting interactive session...")
			fmt.Println("Type 'help' for available commands, 'exit' or 'quit' to leave")

			return runSession(os.Stdin, os.Stdout, sessionCommands(cmd.Parent()))
		},
	}
}

// sessionCommands collects the root's subcommands that make sense inside a session
func sessionCommands(root *cobra.Command) map[string]*cobra.Command {
	commands := make(map[string]*cobra.Command)
	for _, sub := range root.Commands() {
		switch sub.Name() {
		case "interactive", "completion", "help", "serve":
			continue
		}
		commands[sub.Name()] = sub
	}
	return commands
}

func runSession(in io.Reader, out io.Writer, commands map[string]*cobra.Command) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		err := runLine(out, commands, scanner.Text())
		if errors.Is(err, errExitSession) {
			fmt.Fprintln(out, "👋 Goodbye!")
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "❌ Error: %v\n\n", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	return nil
}

// runLine executes one session line. Commands are run through RunE directly so the
// root's PersistentPreRunE does not reconnect or re-authenticate.
func runLine(out io.Writer, commands map[string]*cobra.Command, line string) error {
	parts, err := parseCommandLine(strings.TrimSpace(line))
	if err != nil {
		return fmt.Errorf("failed to parse command: %w", err)
	}
	if len(parts) == 0 {
		return nil
	}

	name, args := parts[0], parts[1:]
	switch name {
	case "exit", "quit":
		return errExitSession
	case "help":
		printInteractiveHelp(out, commands)
		return nil
	}

	target, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command: %s (type 'help' for available commands)", name)
	}

	// Flags keep their values between runs otherwise
	target.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
		flag.Value.Set(flag.DefValue)
	})

	if err := target.ParseFlags(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}
	args = target.Flags().Args()

	if target.Args != nil {
		if err := target.Args(target, args); err != nil {
			return err
		}
	}

	switch {
	case target.RunE != nil:
		return target.RunE(target, args)
	case target.Run != nil:
		target.Run(target, args)
	}
	return nil
}

func printInteractiveHelp(out io.Writer, commands map[string]*cobra.Command) {
	fmt.Fprintln(out, "\nAvailable commands:")
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		cmd := commands[name]
		fmt.Fprintf(out, "  %-50s %s\n", cmd.Use, cmd.Short)
	}
	fmt.Fprintf(out, "\n  %-50s %s\n", "help", "Show this help message")
	fmt.Fprintf(out, "  %-50s %s\n\n", "exit, quit", "Exit the interactive session")
}

// parseCommandLine splits a line into arguments. Single or double quotes group words.
func parseCommandLine(line string) ([]string, error) {
	var args []string
	var current strings.Builder
	var quote rune
	inArg := false

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case unicode.IsSpace(r):
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unclosed quote: %c", quote)
	}
	if inArg {
		args = append(args, current.String())
	}

	return args, nil
}
