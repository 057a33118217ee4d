package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/drills/internal/adapters/driving/tui"
	"github.com/custodia-labs/drills/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/drills/internal/logger"
)

// errNotTerminal is returned when the TUI is started without a terminal.
var errNotTerminal = errors.New("tui requires an interactive terminal")

// isTerminal reports whether stdin and stdout are both terminals.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for drills.

The TUI runs the calculator, greeter and sentence manipulator as forms,
browses the evaluation history and edits settings. Edits to config.toml
made while it runs are picked up automatically.

Controls:
  ↑/k, ↓/j - Navigate
  Tab      - Next field
  Enter    - Select / Submit
  Ctrl+T   - Toggle int/float in the calculator
  Esc      - Back
  Ctrl+C   - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("panic in TUI: %v", r)
		}
	}()

	if !isTerminal() {
		return errNotTerminal
	}

	ports := tui.NewPorts(calculatorService, greeterService, manipulatorService)
	ports.History = historyService
	ports.Settings = settingsService

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	app.WithContext(ctx)

	p := app.NewProgram()

	if configStore != nil {
		go func() {
			if err := configStore.Watch(ctx, func() { p.Send(messages.ConfigChanged{}) }); err != nil {
				// Log but don't fail - the TUI works without live reload
				logger.Warn("watching config: %v", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
