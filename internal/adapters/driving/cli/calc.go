package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/drills/internal/core/domain"
	"github.com/custodia-labs/drills/internal/logger"
)

const (
	firstNumberPrompt  = "Enter a first number: "
	operationPrompt    = "what kind of operation do you want to perform? (+, -, *, /): "
	secondNumberPrompt = "Enter a second number: "
)

var (
	calcFloat bool
	calcInt   bool
)

var calcCmd = &cobra.Command{
	Use:   "calc [a op b]",
	Short: "Evaluate one arithmetic operation",
	Long: `Evaluates a single operation on two numbers.

Supported operations: + - * /

Without arguments the two numbers and the operation are read from standard
input, one per line. Division by zero and unknown operations print a message
and exit cleanly; a malformed number aborts with an error.

The numeric type defaults to the configured calculator variant
(see "drills settings variant"). Use --int or --float to override it.
Integer division truncates toward zero.`,
	Example: `  drills calc 6 + 3
  drills calc --float 7 / 2
  drills calc -- -4 '*' 2`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 3 {
			return fmt.Errorf("accepts 0 or 3 arg(s), received %d", len(args))
		}
		return nil
	},
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().BoolVar(&calcFloat, "float", false, "use floating-point arithmetic")
	calcCmd.Flags().BoolVar(&calcInt, "int", false, "use integer arithmetic")
	calcCmd.MarkFlagsMutuallyExclusive("float", "int")
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	if calculatorService == nil {
		return errors.New("calculator service not configured")
	}

	variant := selectedVariant()

	var left, op, right string
	if len(args) == 3 {
		left, op, right = args[0], args[1], args[2]
	} else {
		var err error
		if left, op, right, err = promptExpression(cmd, variant); err != nil {
			return err
		}
	}

	evaluation, err := calculatorService.Evaluate(cmd.Context(), variant, left, op, right)
	if evaluation == nil {
		return err
	}

	// Recoverable failures print their message and exit cleanly.
	cmd.Println(evaluation.Line())
	return nil
}

// selectedVariant returns the variant chosen by flag, or "" to use the
// configured one.
func selectedVariant() domain.Variant {
	switch {
	case calcFloat:
		return domain.VariantFloat
	case calcInt:
		return domain.VariantInt
	default:
		return ""
	}
}

// promptExpression asks for the operands and operation. Each number is
// checked as soon as it is entered so a malformed first number aborts
// before the operation is asked for.
func promptExpression(cmd *cobra.Command, variant domain.Variant) (left, op, right string, err error) {
	check := operandChecker(effectiveVariant(variant))
	reader := newLineReader(cmd)

	if left, err = reader.ask(firstNumberPrompt); err != nil {
		return "", "", "", err
	}
	if err = check(left); err != nil {
		return "", "", "", err
	}

	if op, err = reader.ask(operationPrompt); err != nil {
		return "", "", "", err
	}

	if right, err = reader.ask(secondNumberPrompt); err != nil {
		return "", "", "", err
	}
	if err = check(right); err != nil {
		return "", "", "", err
	}

	return left, op, right, nil
}

// effectiveVariant resolves "" to the configured variant.
func effectiveVariant(variant domain.Variant) domain.Variant {
	if variant != "" {
		return variant
	}
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err == nil && settings != nil && settings.Calculator.Variant.IsValid() {
			return settings.Calculator.Variant
		}
		logger.Debug("falling back to default variant: %v", err)
	}
	return domain.DefaultAppSettings().Calculator.Variant
}

func operandChecker(variant domain.Variant) func(string) error {
	if variant == domain.VariantFloat {
		return func(text string) error {
			_, err := domain.ParseFloatOperand(text)
			return err
		}
	}
	return func(text string) error {
		_, err := domain.ParseIntOperand(text)
		return err
	}
}
