// Package domain defines the core entities of the drills exercises.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Operation: an arithmetic operator selected by exact symbol match
//   - Expression: two operands and an operation, as typed and as parsed
//   - Evaluation: the recorded outcome of evaluating an Expression
//   - Greeting: the greeter's name and age
//   - AppSettings: persisted user preferences
//
// The evaluator itself (EvaluateInt, EvaluateFloat) lives here as well.
// It is a pure function of its inputs and performs no I/O.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
