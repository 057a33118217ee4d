// Package greeter provides the greeter form view for the TUI.
package greeter

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/drills/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/drills/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/drills/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/drills/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/drills/internal/core/domain"
	"github.com/custodia-labs/drills/internal/core/ports/driving"
)

// View asks for a name and an age and shows the greeting.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	greeter driving.GreeterService

	form     *input.Form
	greeting *domain.Greeting
	err      error
}

// NewView creates a new greeter view.
func NewView(s *styles.Styles, greeter driving.GreeterService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:  s,
		keymap:  keymap.DefaultKeyMap(),
		greeter: greeter,
		form: input.NewForm(
			input.NewField(s, "Name", "Hi! whats your name?"),
			input.NewField(s, "Age", "whats your age?"),
		),
	}
}

// Init clears the form and greeting.
func (v *View) Init() tea.Cmd {
	v.greeting = nil
	v.err = nil
	return v.form.Reset()
}

// Update handles messages for the greeter view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.GreetingCompleted:
		if msg.Err != nil {
			v.greeting = nil
			v.err = msg.Err
			return v, nil
		}
		greeting := msg.Greeting
		v.greeting = &greeting
		v.err = nil
		return v, nil

	case tea.KeyMsg:
		keyStr := msg.String()
		switch {
		case keymap.Matches(keyStr, v.keymap.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case keymap.Matches(keyStr, v.keymap.Submit):
			if v.form.OnLast() {
				return v, v.submit()
			}
			return v, v.form.Next()
		case keymap.Matches(keyStr, v.keymap.NextField):
			return v, v.form.Next()
		case keymap.Matches(keyStr, v.keymap.PrevField):
			return v, v.form.Prev()
		}
	}

	return v, v.form.Update(msg)
}

func (v *View) submit() tea.Cmd {
	values := v.form.Values()
	name, age := values[0], values[1]

	return func() tea.Msg {
		if v.greeter == nil {
			return messages.GreetingCompleted{Err: errors.New("greeter service not available")}
		}
		greeting, err := v.greeter.Greet(name, age)
		return messages.GreetingCompleted{Greeting: greeting, Err: err}
	}
}

// View renders the greeter.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Greeter"))
	b.WriteString("\n\n")
	b.WriteString(v.form.View())
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case v.greeting != nil:
		b.WriteString(v.styles.Success.Render(v.greeting.String()))
	}

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, _ int) {
	v.form.SetWidth(min(width, 60))
}

// Greeting returns the last greeting, if any.
func (v *View) Greeting() *domain.Greeting {
	return v.greeting
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
