package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Input errors. These abort the exercise with a diagnostic.

	// ErrInvalidNumber indicates an operand could not be parsed.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrInvalidAge indicates the greeter age is not a non-negative integer.
	ErrInvalidAge = errors.New("please type a number")

	// Evaluation errors. These are reported to the user and the
	// exercise ends cleanly without a result line.

	// ErrDivisionByZero indicates a division with an exact zero divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidOperation indicates an operator symbol outside + - * /.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrOverflow indicates an integer result outside the int64 range
	// under the fail overflow policy.
	ErrOverflow = errors.New("integer overflow")
)

// IsRecoverable reports whether err is an evaluation error that should be
// printed as a message rather than terminate the program.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrDivisionByZero) ||
		errors.Is(err, ErrInvalidOperation) ||
		errors.Is(err, ErrOverflow)
}

// UserMessage returns the line printed for a recoverable evaluation error.
// It returns an empty string for any other error.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrDivisionByZero):
		return "Error: Division by zero is not allowed."
	case errors.Is(err, ErrInvalidOperation):
		return "Invalid operation"
	case errors.Is(err, ErrOverflow):
		return "Error: Integer overflow."
	default:
		return ""
	}
}
