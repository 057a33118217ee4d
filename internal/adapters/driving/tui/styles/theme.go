// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/drills/internal/core/domain"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color

	// Focus is the border colour of the active input.
	Focus lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#F5A97F"), // Peach
		Secondary:  lipgloss.Color("#8AADF4"), // Blue
		Foreground: lipgloss.Color("#CAD3F5"), // Light gray
		Muted:      lipgloss.Color("#6E738D"), // Medium gray
		Success:    lipgloss.Color("#A6DA95"), // Green
		Warning:    lipgloss.Color("#EED49F"), // Yellow
		Error:      lipgloss.Color("#ED8796"), // Red
		Border:     lipgloss.Color("#494D64"), // Border gray
		Focus:      lipgloss.Color("#C6A0F6"), // Mauve
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style

	// Label precedes an input field.
	Label lipgloss.Style

	// InputField and FocusedField frame inputs without and with focus.
	InputField   lipgloss.Style
	FocusedField lipgloss.Style

	StatusBar lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	field := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Label: lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Width(18),

		InputField:   field,
		FocusedField: field.BorderForeground(theme.Focus),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#1E2030")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Outcome returns the style used to print an evaluation with the given outcome.
func (s *Styles) Outcome(outcome domain.Outcome) lipgloss.Style {
	switch outcome {
	case domain.OutcomeOK:
		return s.Success
	case domain.OutcomeOverflow:
		return s.Warning
	default:
		return s.Error
	}
}
