package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/drills/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/drills/internal/core/services"
)

// testEnv holds the services wired into the command tree for one test.
type testEnv struct {
	config   *memory.ConfigStore
	history  *memory.HistoryStore
	settings *services.SettingsService
}

// setupTestServices wires real services over memory stores and restores
// the empty wiring when the test ends.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		config:  memory.NewConfigStore(),
		history: memory.NewHistoryStore(),
	}
	env.settings = services.NewSettingsService(env.config)

	useServices(&Services{
		Calculator:  services.NewCalculatorService(env.settings, env.history),
		Greeter:     services.NewGreeterService(),
		Manipulator: services.NewManipulatorService(),
		History:     services.NewHistoryService(env.history),
		Settings:    env.settings,
		Config:      env.config,
	})
	t.Cleanup(func() { useServices(&Services{}) })

	return env
}

// resetFlags restores every flag in the tree to its default, since cobra
// keeps parsed values between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and stdin and returns everything
// written to stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"greet", "calc", "reverse", "history", "settings", "tui", "mcp", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	for _, name := range []string{"verbose", "config-dir", "ephemeral"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing flag %s", name)
	}
}

func TestSetup_UsesBootstrap(t *testing.T) {
	var got Options
	SetBootstrap(func(opts Options) (*Services, error) {
		got = opts
		return &Services{Manipulator: services.NewManipulatorService()}, nil
	})
	t.Cleanup(func() {
		SetBootstrap(nil)
		useServices(&Services{})
	})

	out, err := execute(t, "", "--ephemeral", "--config-dir", "/tmp/drills-test", "reverse", "abc")

	require.NoError(t, err)
	assert.Equal(t, "your sentence is: CBA\n", out)
	assert.True(t, got.Ephemeral)
	assert.Equal(t, "/tmp/drills-test", got.ConfigDir)
}

func TestSetup_BootstrapError(t *testing.T) {
	SetBootstrap(func(Options) (*Services, error) {
		return nil, errors.New("opening history: disk full")
	})
	t.Cleanup(func() { SetBootstrap(nil) })

	_, err := execute(t, "", "reverse", "abc")

	assert.EqualError(t, err, "opening history: disk full")
}

func TestSetup_BootstrapReturnsNothing(t *testing.T) {
	SetBootstrap(func(Options) (*Services, error) { return nil, nil })
	t.Cleanup(func() { SetBootstrap(nil) })

	_, err := execute(t, "", "reverse", "abc")

	assert.Error(t, err)
}

func TestExecute_ClosesServices(t *testing.T) {
	closed := false
	SetBootstrap(func(Options) (*Services, error) {
		return &Services{
			Manipulator: services.NewManipulatorService(),
			Close: func() error {
				closed = true
				return nil
			},
		}, nil
	})
	t.Cleanup(func() {
		SetBootstrap(nil)
		useServices(&Services{})
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})

	resetFlags(rootCmd)
	rootCmd.SetArgs([]string{"reverse", "abc"})
	err := Execute()
	// Execute points output at stdout; send it back to a buffer for later tests
	rootCmd.SetOut(new(bytes.Buffer))

	require.NoError(t, err)
	assert.True(t, closed)
}

func TestCommands_WithoutServices(t *testing.T) {
	useServices(&Services{})

	tests := [][]string{
		{"greet"},
		{"calc", "1", "+", "1"},
		{"reverse", "x"},
		{"history", "list"},
		{"settings", "show"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := execute(t, "", args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "not configured")
		})
	}
}
