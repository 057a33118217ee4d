// Package tui provides an interactive terminal user interface for drills.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/drills/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Calculator evaluates expressions.
	Calculator driving.CalculatorService

	// Greeter builds greetings.
	Greeter driving.GreeterService

	// Manipulator transforms sentences.
	Manipulator driving.ManipulatorService

	// History reads recorded evaluations. Optional.
	History driving.HistoryService

	// Settings manages application settings. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(
	calculator driving.CalculatorService,
	greeter driving.GreeterService,
	manipulator driving.ManipulatorService,
) *Ports {
	return &Ports{
		Calculator:  calculator,
		Greeter:     greeter,
		Manipulator: manipulator,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
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
