// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/drills/internal/core/domain"
	"github.com/custodia-labs/drills/internal/core/ports/driving"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewCalculator evaluates one arithmetic operation.
	ViewCalculator
	// ViewGreeter asks for a name and age.
	ViewGreeter
	// ViewSentence reverses and upper-cases a sentence.
	ViewSentence
	// ViewHistory lists past evaluations.
	ViewHistory
	// ViewSettings is the settings configuration view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewCalculator:
		return "calculator"
	case ViewGreeter:
		return "greeter"
	case ViewSentence:
		return "sentence"
	case ViewHistory:
		return "history"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// EvaluationCompleted carries a calculator result. Evaluation is set for
// successful and recoverable outcomes; Err alone means the input was rejected.
type EvaluationCompleted struct {
	Evaluation *domain.Evaluation
	Err        error
}

// GreetingCompleted carries the greeter result.
type GreetingCompleted struct {
	Greeting domain.Greeting
	Err      error
}

// SentenceTransformed carries the manipulated sentence.
type SentenceTransformed struct {
	Sentence domain.Sentence
}

// HistoryLoaded carries recent evaluations and their statistics.
type HistoryLoaded struct {
	Evaluations []domain.Evaluation
	Stats       *driving.HistoryStats
	Err         error
}

// HistoryCleared signals the history was deleted.
type HistoryCleared struct {
	Err error
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Err error
}

// ConfigChanged signals the configuration file was edited outside the TUI.
type ConfigChanged struct{}
