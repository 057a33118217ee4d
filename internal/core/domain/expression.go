package domain

import (
	"fmt"
	"strings"
)

// Expression is one calculator input: two operands and an operator, kept
// both as typed and as parsed for its variant.
type Expression struct {
	// Variant selects which of the parsed operand pairs is used.
	Variant Variant

	// LeftText and RightText are the operands as typed.
	LeftText  string
	RightText string

	// Operation is the trimmed operator symbol. It may be unrecognised;
	// that is reported by Evaluate, not by ParseExpression.
	Operation Operation

	// Parsed operands. Only the pair matching Variant is set.
	IntLeft, IntRight     int64
	FloatLeft, FloatRight float64
}

// ParseExpression parses both operands for variant.
// The operator is only trimmed here, so a malformed number is reported
// before an unrecognised operator.
func ParseExpression(variant Variant, left, op, right string) (*Expression, error) {
	e := &Expression{
		Variant:   variant,
		LeftText:  left,
		RightText: right,
		Operation: Operation(strings.TrimSpace(op)),
	}

	var err error
	switch variant {
	case VariantInt:
		if e.IntLeft, err = ParseIntOperand(left); err != nil {
			return nil, err
		}
		if e.IntRight, err = ParseIntOperand(right); err != nil {
			return nil, err
		}
	case VariantFloat:
		if e.FloatLeft, err = ParseFloatOperand(left); err != nil {
			return nil, err
		}
		if e.FloatRight, err = ParseFloatOperand(right); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: calculator variant %q", ErrInvalidInput, variant)
	}
	return e, nil
}

// Left returns the canonical printed form of the first operand.
func (e *Expression) Left() string {
	if e.Variant == VariantFloat {
		return FormatFloat(e.FloatLeft)
	}
	return FormatInt(e.IntLeft)
}

// Right returns the canonical printed form of the second operand.
func (e *Expression) Right() string {
	if e.Variant == VariantFloat {
		return FormatFloat(e.FloatRight)
	}
	return FormatInt(e.IntRight)
}

// Evaluate applies the operation and returns the formatted result.
// policy only affects the integer variant.
func (e *Expression) Evaluate(policy OverflowPolicy) (string, error) {
	if e.Variant == VariantFloat {
		v, err := EvaluateFloat(e.FloatLeft, e.FloatRight, e.Operation)
		if err != nil {
			return "", err
		}
		return FormatFloat(v), nil
	}

	v, err := EvaluateInt(e.IntLeft, e.IntRight, e.Operation, policy)
	if err != nil {
		return "", err
	}
	return FormatInt(v), nil
}

// String renders the expression in canonical form, e.g. "6 + 3".
func (e *Expression) String() string {
	return fmt.Sprintf("%s %s %s", e.Left(), e.Operation, e.Right())
}
