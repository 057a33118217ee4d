package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/drills/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure calculator, history and MCP settings.

Settings are stored in config.toml inside the drills home directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsVariantCmd = &cobra.Command{
	Use:   "variant [int|float]",
	Short: "Set the default calculator variant",
	Long: `Set the numeric type the calculator uses when neither --int nor --float
is given.

Available variants:
  int    - 64-bit integers, division truncates toward zero
  float  - 64-bit floating point

Without an argument you are asked to choose.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsVariant,
}

var settingsOverflowCmd = &cobra.Command{
	Use:   "overflow [fail|wrap|saturate]",
	Short: "Set the integer overflow policy",
	Long: `Set what happens when an integer result does not fit in 64 bits.

Available policies:
  fail      - print "Error: Integer overflow." (default)
  wrap      - two's-complement wraparound
  saturate  - clamp to the largest or smallest integer

Without an argument you are asked to choose.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsOverflow,
}

var settingsHistoryCmd = &cobra.Command{
	Use:   "history [on|off|LIMIT]",
	Short: "Configure evaluation history",
	Long: `Turn evaluation history on or off, or set how many evaluations are kept.

Examples:
  drills settings history off
  drills settings history 100`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsHistory,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsVariantCmd)
	settingsCmd.AddCommand(settingsOverflowCmd)
	settingsCmd.AddCommand(settingsHistoryCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if settings == nil {
		defaults := settingsService.GetDefaults()
		settings = &defaults
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Calculator]")
	cmd.Printf("  Variant: %s\n", settings.Calculator.Variant.Description())
	cmd.Printf("  Overflow: %s\n", settings.Calculator.Overflow.Description())
	cmd.Println()

	cmd.Println("[History]")
	cmd.Printf("  Enabled: %s\n", onOff(settings.History.Enabled))
	cmd.Printf("  Limit: %d\n", settings.History.Limit)
	cmd.Println()

	cmd.Println("[MCP]")
	cmd.Printf("  Rate limit: %g calls/s\n", settings.MCP.RateLimit)
	cmd.Printf("  Burst: %d\n", settings.MCP.Burst)

	if configStore != nil {
		cmd.Println()
		cmd.Printf("Config file: %s\n", configStore.Path())
	}

	if err := settingsService.Validate(); err != nil {
		cmd.Println()
		cmd.Printf("Warning: %v\n", err)
	}
	return nil
}

func runSettingsVariant(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	variants := domain.AllVariants()
	var variant domain.Variant
	if len(args) == 1 {
		variant = domain.Variant(strings.ToLower(strings.TrimSpace(args[0])))
	} else {
		cmd.Println("Select calculator variant:")
		for i, v := range variants {
			cmd.Printf("  [%d] %s\n", i+1, v.Description())
		}
		cmd.Print("Choice [1]: ")
		idx := parseChoice(readLine(bufio.NewReader(cmd.InOrStdin())), len(variants), 1)
		variant = variants[idx-1]
	}

	if err := settingsService.SetVariant(variant); err != nil {
		return fmt.Errorf("failed to set variant: %w", err)
	}

	cmd.Printf("Calculator variant set to: %s\n", variant.Description())
	return nil
}

func runSettingsOverflow(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	policies := domain.AllOverflowPolicies()
	var policy domain.OverflowPolicy
	if len(args) == 1 {
		policy = domain.OverflowPolicy(strings.ToLower(strings.TrimSpace(args[0])))
	} else {
		cmd.Println("Select overflow policy:")
		for i, p := range policies {
			cmd.Printf("  [%d] %s\n", i+1, p.Description())
		}
		cmd.Print("Choice [1]: ")
		idx := parseChoice(readLine(bufio.NewReader(cmd.InOrStdin())), len(policies), 1)
		policy = policies[idx-1]
	}

	if err := settingsService.SetOverflowPolicy(policy); err != nil {
		return fmt.Errorf("failed to set overflow policy: %w", err)
	}

	cmd.Printf("Overflow policy set to: %s\n", policy.Description())
	return nil
}

func runSettingsHistory(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	value := strings.ToLower(strings.TrimSpace(args[0]))
	switch value {
	case "on", "true", "yes":
		if err := settingsService.SetHistoryEnabled(true); err != nil {
			return fmt.Errorf("failed to enable history: %w", err)
		}
		cmd.Println("History enabled.")
		return nil
	case "off", "false", "no":
		if err := settingsService.SetHistoryEnabled(false); err != nil {
			return fmt.Errorf("failed to disable history: %w", err)
		}
		cmd.Println("History disabled.")
		return nil
	}

	limit, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("expected on, off or a number, got %q", args[0])
	}
	if err := settingsService.SetHistoryLimit(limit); err != nil {
		return fmt.Errorf("failed to set history limit: %w", err)
	}
	cmd.Printf("History limit set to: %d\n", limit)
	return nil
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
