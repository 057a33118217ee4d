package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func newTestForm() *Form {
	return NewForm(
		NewField(nil, "First number", ""),
		NewField(nil, "Operation", ""),
		NewField(nil, "Second number", ""),
	)
}

func TestNewForm_FocusesFirstField(t *testing.T) {
	form := newTestForm()

	assert.Equal(t, 0, form.Focused())
	assert.True(t, form.Fields()[0].Focused())
	assert.False(t, form.Fields()[1].Focused())
}

func TestForm_NextAndPrevWrap(t *testing.T) {
	form := newTestForm()

	form.Next()
	assert.Equal(t, 1, form.Focused())
	assert.False(t, form.Fields()[0].Focused())
	assert.True(t, form.Fields()[1].Focused())

	form.Next()
	assert.True(t, form.OnLast())

	form.Next()
	assert.Equal(t, 0, form.Focused())

	form.Prev()
	assert.Equal(t, 2, form.Focused())
}

func TestForm_UpdateTypesIntoFocusedField(t *testing.T) {
	form := newTestForm()

	form.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'6'}})
	form.Next()
	form.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	form.Next()
	form.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})

	assert.Equal(t, []string{"6", "+", "3"}, form.Values())
}

func TestForm_Reset(t *testing.T) {
	form := newTestForm()
	form.Fields()[0].SetValue("6")
	form.Next()

	form.Reset()

	assert.Equal(t, []string{"", "", ""}, form.Values())
	assert.Equal(t, 0, form.Focused())
}

func TestForm_ViewListsEveryField(t *testing.T) {
	form := newTestForm()

	view := form.View()

	assert.Contains(t, view, "First number")
	assert.Contains(t, view, "Operation")
	assert.Contains(t, view, "Second number")
}

func TestForm_Empty(t *testing.T) {
	form := NewForm()

	assert.Nil(t, form.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Nil(t, form.Reset())
	assert.Empty(t, form.Values())
}
