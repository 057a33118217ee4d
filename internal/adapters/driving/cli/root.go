// Package cli provides the cobra command tree for drills.
package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/drills/internal/core/ports/driven"
	"github.com/custodia-labs/drills/internal/core/ports/driving"
	"github.com/custodia-labs/drills/internal/logger"
)

// version is overridden at build time via SetVersion.
var version = "dev"

// Options are the global flags that decide how services are built.
type Options struct {
	// ConfigDir overrides $DRILLS_HOME.
	ConfigDir string

	// Ephemeral keeps config and history in memory for this run only.
	Ephemeral bool

	// Verbose enables debug logging.
	Verbose bool
}

// Services are the driving ports the commands call into.
type Services struct {
	Calculator  driving.CalculatorService
	Greeter     driving.GreeterService
	Manipulator driving.ManipulatorService
	History     driving.HistoryService
	Settings    driving.SettingsService

	// Config is watched by long-running commands to pick up external edits.
	Config driven.ConfigStore

	// Close releases storage. May be nil.
	Close func() error
}

// Bootstrap builds services once flags are parsed.
type Bootstrap func(opts Options) (*Services, error)

var (
	calculatorService  driving.CalculatorService
	greeterService     driving.GreeterService
	manipulatorService driving.ManipulatorService
	historyService     driving.HistoryService
	settingsService    driving.SettingsService
	configStore        driven.ConfigStore
	closeServices      func() error

	bootstrap Bootstrap
	options   Options
)

var rootCmd = &cobra.Command{
	Use:   "drills",
	Short: "Small command-line exercises: greeter, calculator and sentence manipulator",
	Long: `drills bundles three small exercises behind one command:

  greet    asks for your name and age and greets you
  calc     evaluates a single arithmetic operation (integer or float)
  reverse  reverses a sentence and upper-cases it

Calculator evaluations are kept in a local history. Settings live in
$DRILLS_HOME/config.toml (default ~/.drills).`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&options.Verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&options.ConfigDir, "config-dir", "", "configuration directory (default $DRILLS_HOME or ~/.drills)")
	rootCmd.PersistentFlags().BoolVar(&options.Ephemeral, "ephemeral", false, "keep settings and history in memory only")
}

// SetBootstrap registers the function that builds services from flags.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command and releases storage afterwards.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	defer func() {
		if closeServices == nil {
			return
		}
		if err := closeServices(); err != nil {
			logger.Warn("closing storage: %v", err)
		}
	}()
	return rootCmd.Execute()
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(options.Verbose)

	// Services injected directly (tests) skip bootstrapping.
	if bootstrap == nil {
		return nil
	}

	services, err := bootstrap(options)
	if err != nil {
		return err
	}
	if services == nil {
		return errors.New("bootstrap returned no services")
	}
	useServices(services)
	return nil
}

func useServices(s *Services) {
	calculatorService = s.Calculator
	greeterService = s.Greeter
	manipulatorService = s.Manipulator
	historyService = s.History
	settingsService = s.Settings
	configStore = s.Config
	closeServices = s.Close
}
