package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Outcome classifies how an evaluation ended.
type Outcome string

// Evaluation outcomes.
const (
	OutcomeOK               Outcome = "ok"
	OutcomeDivisionByZero   Outcome = "division_by_zero"
	OutcomeInvalidOperation Outcome = "invalid_operation"
	OutcomeOverflow         Outcome = "overflow"
)

// AllOutcomes returns all outcomes in display order.
func AllOutcomes() []Outcome {
	return []Outcome{OutcomeOK, OutcomeDivisionByZero, OutcomeInvalidOperation, OutcomeOverflow}
}

// IsValid returns true if the outcome is recognised.
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeOK, OutcomeDivisionByZero, OutcomeInvalidOperation, OutcomeOverflow:
		return true
	default:
		return false
	}
}

// Err returns the domain error matching the outcome, or nil for OutcomeOK.
func (o Outcome) Err() error {
	switch o {
	case OutcomeDivisionByZero:
		return ErrDivisionByZero
	case OutcomeInvalidOperation:
		return ErrInvalidOperation
	case OutcomeOverflow:
		return ErrOverflow
	default:
		return nil
	}
}

// OutcomeOf maps an evaluator error to its outcome.
// The boolean is false when err is not an evaluation error.
func OutcomeOf(err error) (Outcome, bool) {
	switch {
	case err == nil:
		return OutcomeOK, true
	case errors.Is(err, ErrDivisionByZero):
		return OutcomeDivisionByZero, true
	case errors.Is(err, ErrInvalidOperation):
		return OutcomeInvalidOperation, true
	case errors.Is(err, ErrOverflow):
		return OutcomeOverflow, true
	default:
		return "", false
	}
}

// Evaluation is the recorded result of one calculator run.
// Operands are stored in their canonical printed form.
type Evaluation struct {
	// ID is the unique identifier (UUID).
	ID string `json:"id"`

	// Variant is the numeric type used.
	Variant Variant `json:"variant"`

	// Left is the first operand.
	Left string `json:"left"`

	// Operation is the operator symbol as typed, which may be unrecognised.
	Operation Operation `json:"operation"`

	// Right is the second operand.
	Right string `json:"right"`

	// Result is the formatted result. Empty unless Outcome is OutcomeOK.
	Result string `json:"result,omitempty"`

	// Outcome classifies the evaluation.
	Outcome Outcome `json:"outcome"`

	// CreatedAt is when the evaluation ran.
	CreatedAt time.Time `json:"created_at"`
}

// Succeeded returns true if the evaluation produced a result.
func (e *Evaluation) Succeeded() bool {
	return e.Outcome == OutcomeOK
}

// Line returns the single line the calculator prints for this evaluation.
func (e *Evaluation) Line() string {
	if e.Succeeded() {
		return fmt.Sprintf("The result is: %s %s %s = %s", e.Left, e.Operation, e.Right, e.Result)
	}
	return UserMessage(e.Outcome.Err())
}

// ParseIntOperand parses a trimmed decimal integer operand.
func ParseIntOperand(text string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, text)
	}
	return v, nil
}

// ParseFloatOperand parses a trimmed decimal floating-point operand.
// Go literal forms that ParseFloat would otherwise accept, digit
// separators and hexadecimal mantissas, are rejected.
func ParseFloatOperand(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	unsigned := strings.TrimLeft(trimmed, "+-")
	if strings.Contains(trimmed, "_") ||
		strings.HasPrefix(unsigned, "0x") || strings.HasPrefix(unsigned, "0X") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, text)
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, text)
	}
	return v, nil
}

// FormatInt formats an integer operand or result.
func FormatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// FormatFloat formats a float as the shortest decimal that round-trips,
// never using exponent notation. Whole numbers print without a fraction.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}
