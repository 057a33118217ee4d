package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/drills/internal/core/domain"
)

// timeLayout is how evaluation timestamps are printed.
const timeLayout = "2006-01-02 15:04:05"

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect past calculator evaluations",
	Long: `List, inspect and clear the calculator history.

Every calculator run is recorded, including division by zero and unknown
operations, unless history is disabled with "drills settings history off".`,
	RunE: runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent evaluations, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a single evaluation",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded evaluations",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count evaluations per outcome",
	Args:  cobra.NoArgs,
	RunE:  runHistoryStats,
}

func init() {
	historyCmd.PersistentFlags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of evaluations (0 = all)")
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of evaluations (0 = all)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyStatsCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	evaluations, err := historyService.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if historyJSON {
		if evaluations == nil {
			evaluations = []domain.Evaluation{}
		}
		return outputJSON(cmd, evaluations)
	}

	if len(evaluations) == 0 {
		cmd.Println("No evaluations recorded.")
		return nil
	}

	cmd.Println("Recent evaluations:")
	cmd.Println()
	for i := range evaluations {
		e := &evaluations[i]
		cmd.Printf("  [%d] %s\n", i+1, summarise(e))
		cmd.Printf("      %s  %s  %s\n", e.CreatedAt.Local().Format(timeLayout), e.Variant, e.ID)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	evaluation, err := historyService.Get(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("evaluation %s not found", args[0])
		}
		return fmt.Errorf("failed to get evaluation: %w", err)
	}

	if historyJSON {
		return outputJSON(cmd, evaluation)
	}

	cmd.Printf("ID:        %s\n", evaluation.ID)
	cmd.Printf("Variant:   %s\n", evaluation.Variant.Description())
	cmd.Printf("Operation: %s %s %s (%s)\n",
		evaluation.Left, evaluation.Operation, evaluation.Right, evaluation.Operation.Description())
	cmd.Printf("Outcome:   %s\n", evaluation.Outcome)
	cmd.Printf("Output:    %s\n", evaluation.Line())
	cmd.Printf("Time:      %s\n", evaluation.CreatedAt.Local().Format(timeLayout))
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if err := historyService.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	cmd.Println("History cleared.")
	return nil
}

func runHistoryStats(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	stats, err := historyService.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get history stats: %w", err)
	}

	if historyJSON {
		return outputJSON(cmd, stats)
	}

	cmd.Printf("Total: %d\n", stats.Total)
	for _, outcome := range domain.AllOutcomes() {
		cmd.Printf("  %-18s %d\n", outcome, stats.ByOutcome[outcome])
	}
	return nil
}

// summarise renders an evaluation as "a op b = r" or "a op b: message".
func summarise(e *domain.Evaluation) string {
	expression := fmt.Sprintf("%s %s %s", e.Left, e.Operation, e.Right)
	if e.Succeeded() {
		return expression + " = " + e.Result
	}
	return expression + ": " + e.Line()
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
