package input

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Form is an ordered group of fields with a single focused field.
type Form struct {
	fields  []*Field
	focused int
}

// NewForm creates a form and focuses its first field.
func NewForm(fields ...*Field) *Form {
	f := &Form{fields: fields}
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return f
}

// Fields returns the form's fields in order.
func (f *Form) Fields() []*Field {
	return f.fields
}

// Focused returns the index of the focused field.
func (f *Form) Focused() int {
	return f.focused
}

// OnLast reports whether the last field has focus.
func (f *Form) OnLast() bool {
	return f.focused == len(f.fields)-1
}

// Next moves focus to the following field, wrapping around.
func (f *Form) Next() tea.Cmd {
	return f.focus((f.focused + 1) % len(f.fields))
}

// Prev moves focus to the preceding field, wrapping around.
func (f *Form) Prev() tea.Cmd {
	return f.focus((f.focused - 1 + len(f.fields)) % len(f.fields))
}

func (f *Form) focus(index int) tea.Cmd {
	f.fields[f.focused].Blur()
	f.focused = index
	return f.fields[index].Focus()
}

// Update forwards a message to the focused field.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.fields[f.focused], cmd = f.fields[f.focused].Update(msg)
	return cmd
}

// View renders the fields one per line.
func (f *Form) View() string {
	views := make([]string, len(f.fields))
	for i, field := range f.fields {
		views[i] = field.View()
	}
	return strings.Join(views, "\n")
}

// Values returns the field values in order.
func (f *Form) Values() []string {
	values := make([]string, len(f.fields))
	for i, field := range f.fields {
		values[i] = field.Value()
	}
	return values
}

// Reset clears every field and focuses the first one.
func (f *Form) Reset() tea.Cmd {
	for _, field := range f.fields {
		field.Reset()
	}
	if len(f.fields) == 0 {
		return nil
	}
	return f.focus(0)
}

// SetWidth sets the width of every field.
func (f *Form) SetWidth(width int) {
	for _, field := range f.fields {
		field.SetWidth(width)
	}
}
