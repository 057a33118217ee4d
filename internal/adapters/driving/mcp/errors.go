// Package mcp provides an MCP (Model Context Protocol) server adapter for drills.
// It lets AI assistants run the calculator, greeter and sentence manipulator
// and read the evaluation history.
package mcp

import "errors"

// ErrMissingCalculatorService is returned when the calculator service is not provided.
var ErrMissingCalculatorService = errors.New("mcp: calculator service is required")

// ErrMissingGreeterService is returned when the greeter service is not provided.
var ErrMissingGreeterService = errors.New("mcp: greeter service is required")

// ErrMissingManipulatorService is returned when the manipulator service is not provided.
var ErrMissingManipulatorService = errors.New("mcp: manipulator service is required")

// ErrRateLimited is returned when a tool call could not get a token before
// its context ended.
var ErrRateLimited = errors.New("mcp: rate limit exceeded")
