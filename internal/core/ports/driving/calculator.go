package driving

import (
	"context"

	"github.com/custodia-labs/drills/internal/core/domain"
)

// CalculatorService evaluates two-operand arithmetic expressions.
type CalculatorService interface {
	// Evaluate parses left and right for the given variant and applies the
	// operator symbol to them.
	//
	// A malformed operand returns a nil evaluation and an error wrapping
	// domain.ErrInvalidNumber. Division by zero, an unrecognised operator
	// or a rejected overflow return the recorded evaluation together with
	// the matching domain error; callers print evaluation.Line() for those.
	// An empty variant uses the configured default.
	Evaluate(ctx context.Context, variant domain.Variant, left, op, right string) (*domain.Evaluation, error)
}

// GreeterService builds the greeter line.
type GreeterService interface {
	// Greet trims name and parses ageText as a non-negative integer.
	// A malformed age returns an error wrapping domain.ErrInvalidAge.
	Greet(name, ageText string) (domain.Greeting, error)
}

// ManipulatorService transforms sentences.
type ManipulatorService interface {
	// Transform trims sentence, reverses it by code point and upper-cases it.
	Transform(sentence string) domain.Sentence
}
