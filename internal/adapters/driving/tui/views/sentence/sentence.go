// Package sentence provides the sentence manipulator view for the TUI.
package sentence

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/drills/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/drills/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/drills/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/drills/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/drills/internal/core/domain"
	"github.com/custodia-labs/drills/internal/core/ports/driving"
)

// View reverses and upper-cases a sentence.
type View struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	manipulator driving.ManipulatorService

	field  *input.Field
	result *domain.Sentence
}

// NewView creates a new sentence view.
func NewView(s *styles.Styles, manipulator driving.ManipulatorService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	field := input.NewField(s, "Sentence", "Enter a sentence")
	field.Focus()

	return &View{
		styles:      s,
		keymap:      keymap.DefaultKeyMap(),
		manipulator: manipulator,
		field:       field,
	}
}

// Init clears the input and result.
func (v *View) Init() tea.Cmd {
	v.result = nil
	v.field.Reset()
	return v.field.Focus()
}

// Update handles messages for the sentence view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SentenceTransformed:
		sentence := msg.Sentence
		v.result = &sentence
		return v, nil

	case tea.KeyMsg:
		keyStr := msg.String()
		switch {
		case keymap.Matches(keyStr, v.keymap.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case keymap.Matches(keyStr, v.keymap.Submit):
			return v, v.submit()
		}
	}

	var cmd tea.Cmd
	v.field, cmd = v.field.Update(msg)
	return v, cmd
}

func (v *View) submit() tea.Cmd {
	if v.manipulator == nil {
		return nil
	}
	text := v.field.Value()
	return func() tea.Msg {
		return messages.SentenceTransformed{Sentence: v.manipulator.Transform(text)}
	}
}

// View renders the sentence view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Sentence"))
	b.WriteString("\n\n")
	b.WriteString(v.field.View())
	b.WriteString("\n\n")

	if v.result != nil {
		b.WriteString(v.styles.Success.Render(v.result.String()))
	}

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, _ int) {
	v.field.SetWidth(min(width, 80))
}

// Result returns the last transformed sentence, if any.
func (v *View) Result() *domain.Sentence {
	return v.result
}
