package tui

import "errors"

// ErrMissingCalculatorService is returned when the calculator service is not provided.
var ErrMissingCalculatorService = errors.New("tui: calculator service is required")

// ErrMissingGreeterService is returned when the greeter service is not provided.
var ErrMissingGreeterService = errors.New("tui: greeter service is required")

// ErrMissingManipulatorService is returned when the manipulator service is not provided.
var ErrMissingManipulatorService = errors.New("tui: manipulator service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
