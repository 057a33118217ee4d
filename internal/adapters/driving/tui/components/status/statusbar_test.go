package status

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/drills/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/drills/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestBar_InitAndUpdate(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Nil(t, bar.Init())

	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestBar_View_States(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		message  string
		contains string
	}{
		{"ready", StateReady, "", "Ready"},
		{"busy", StateBusy, "", "Working..."},
		{"error with message", StateError, "boom", "Error: boom"},
		{"error without message", StateError, "", "Error"},
		{"help", StateHelp, "", "Help"},
		{"done with message", StateDone, "3 evaluations", "3 evaluations"},
		{"done without message", StateDone, "", "Ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(120)
			bar.SetState(tt.state)
			bar.SetMessage(tt.message)

			assert.Contains(t, bar.View(), tt.contains)
		})
	}
}

func TestBar_Bindings(t *testing.T) {
	km := keymap.DefaultKeyMap()
	bar := NewBar(nil, km)
	bar.SetWidth(200)

	assert.Contains(t, bar.View(), "esc: back")

	bar.SetBindings(km.HistoryHelp())
	view := bar.View()
	assert.Contains(t, view, "r: refresh")
	assert.Contains(t, view, "x: clear")
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("oops")
	bar.SetBindings(keymap.DefaultKeyMap().FormHelp())

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Nil(t, bar.bindings)
}
