package domain

import (
	"fmt"
	"math"
)

const unknownDescription = "Unknown"

// Operation is an arithmetic operator symbol.
type Operation string

// Recognised operations.
const (
	OperationAdd      Operation = "+"
	OperationSubtract Operation = "-"
	OperationMultiply Operation = "*"
	OperationDivide   Operation = "/"
)

// AllOperations returns the recognised operations in prompt order.
func AllOperations() []Operation {
	return []Operation{OperationAdd, OperationSubtract, OperationMultiply, OperationDivide}
}

// ParseOperation matches symbol exactly against the recognised operations.
// Surrounding whitespace is not stripped.
func ParseOperation(symbol string) (Operation, error) {
	op := Operation(symbol)
	if !op.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidOperation, symbol)
	}
	return op, nil
}

// IsValid returns true if the operation is one of + - * /.
func (o Operation) IsValid() bool {
	switch o {
	case OperationAdd, OperationSubtract, OperationMultiply, OperationDivide:
		return true
	default:
		return false
	}
}

// String returns the operator symbol.
func (o Operation) String() string {
	return string(o)
}

// Description returns a human-readable name for the operation.
func (o Operation) Description() string {
	switch o {
	case OperationAdd:
		return "Addition"
	case OperationSubtract:
		return "Subtraction"
	case OperationMultiply:
		return "Multiplication"
	case OperationDivide:
		return "Division"
	default:
		return unknownDescription
	}
}

// EvaluateInt applies op to a and b using int64 arithmetic.
// Division truncates toward zero. Results outside the int64 range are
// handled according to policy; an unrecognised policy behaves like
// OverflowFail.
func EvaluateInt(a, b int64, op Operation, policy OverflowPolicy) (int64, error) {
	var (
		result   int64
		overflow bool
		positive bool
	)

	switch op {
	case OperationAdd:
		result = a + b
		overflow = (a > 0 && b > 0 && result < 0) || (a < 0 && b < 0 && result >= 0)
		positive = a > 0
	case OperationSubtract:
		result = a - b
		overflow = (a >= 0 && b < 0 && result < 0) || (a < 0 && b > 0 && result >= 0)
		positive = a >= 0
	case OperationMultiply:
		result = a * b
		if a != 0 && b != 0 {
			overflow = result/b != a ||
				(a == -1 && b == math.MinInt64) ||
				(b == -1 && a == math.MinInt64)
		}
		positive = (a < 0) == (b < 0)
	case OperationDivide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		// Go defines MinInt64 / -1 as MinInt64.
		result = a / b
		overflow = a == math.MinInt64 && b == -1
		positive = true
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidOperation, string(op))
	}

	if !overflow {
		return result, nil
	}

	switch policy {
	case OverflowWrap:
		return result, nil
	case OverflowSaturate:
		if positive {
			return math.MaxInt64, nil
		}
		return math.MinInt64, nil
	case OverflowFail:
		return 0, fmt.Errorf("%w: %d %s %d", ErrOverflow, a, op, b)
	default:
		return 0, fmt.Errorf("%w: %d %s %d", ErrOverflow, a, op, b)
	}
}

// EvaluateFloat applies op to a and b using IEEE-754 double arithmetic.
// Only an exact zero divisor is rejected; a tiny non-zero divisor is allowed
// and may produce an infinite result.
func EvaluateFloat(a, b float64, op Operation) (float64, error) {
	switch op {
	case OperationAdd:
		return a + b, nil
	case OperationSubtract:
		return a - b, nil
	case OperationMultiply:
		return a * b, nil
	case OperationDivide:
		if b == 0.0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidOperation, string(op))
	}
}
