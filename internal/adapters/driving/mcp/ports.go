package mcp

import (
	"github.com/custodia-labs/drills/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Calculator evaluates expressions.
	Calculator driving.CalculatorService

	// Greeter builds greetings.
	Greeter driving.GreeterService

	// Manipulator transforms sentences.
	Manipulator driving.ManipulatorService

	// History backs the history resources. Optional.
	History driving.HistoryService

	// Settings supplies the rate limit. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Calculator == nil {
		return ErrMissingCalculatorService
	}
	if p.Greeter == nil {
		return ErrMissingGreeterService
	}
	if p.Manipulator == nil {
		return ErrMissingManipulatorService
	}
	return nil
}
