// Package history provides the evaluation history view for the TUI.
package history

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/drills/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/drills/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/drills/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/drills/internal/core/domain"
	"github.com/custodia-labs/drills/internal/core/ports/driving"
)

// loadLimit is the number of evaluations fetched per load.
const loadLimit = 200

const timeLayout = "2006-01-02 15:04:05"

// View lists past evaluations newest first.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	history driving.HistoryService
	ctx     context.Context

	evaluations []domain.Evaluation
	stats       *driving.HistoryStats
	selected    int
	loading     bool
	err         error

	width  int
	height int
}

// NewView creates a new history view.
func NewView(s *styles.Styles, history driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:  s,
		keymap:  keymap.DefaultKeyMap(),
		history: history,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
}

// WithContext sets the context used for history queries.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the history.
func (v *View) Init() tea.Cmd {
	return v.load()
}

func (v *View) load() tea.Cmd {
	v.loading = true
	return func() tea.Msg {
		if v.history == nil {
			return messages.HistoryLoaded{Err: errors.New("history service not available")}
		}
		evaluations, err := v.history.List(v.ctx, loadLimit)
		if err != nil {
			return messages.HistoryLoaded{Err: err}
		}
		stats, err := v.history.Stats(v.ctx)
		return messages.HistoryLoaded{Evaluations: evaluations, Stats: stats, Err: err}
	}
}

func (v *View) clear() tea.Cmd {
	return func() tea.Msg {
		if v.history == nil {
			return messages.HistoryCleared{Err: errors.New("history service not available")}
		}
		return messages.HistoryCleared{Err: v.history.Clear(v.ctx)}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.HistoryLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.evaluations = msg.Evaluations
			v.stats = msg.Stats
			if v.selected >= len(v.evaluations) {
				v.selected = max(len(v.evaluations)-1, 0)
			}
		}
		return v, nil

	case messages.HistoryCleared:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.selected = 0
		return v, v.load()

	case tea.KeyMsg:
		keyStr := msg.String()
		switch {
		case keymap.Matches(keyStr, v.keymap.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case keymap.Matches(keyStr, v.keymap.Up):
			if v.selected > 0 {
				v.selected--
			}
		case keymap.Matches(keyStr, v.keymap.Down):
			if v.selected < len(v.evaluations)-1 {
				v.selected++
			}
		case keymap.Matches(keyStr, v.keymap.Refresh):
			return v, v.load()
		case keymap.Matches(keyStr, v.keymap.Clear):
			return v, v.clear()
		}
	}

	return v, nil
}

// View renders the history list and the selected evaluation.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("History"))
	if v.stats != nil {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  %d recorded", v.stats.Total)))
	}
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		return b.String()
	case v.loading && len(v.evaluations) == 0:
		b.WriteString(v.styles.Muted.Render("Loading..."))
		return b.String()
	case len(v.evaluations) == 0:
		b.WriteString(v.styles.Muted.Render("No evaluations recorded"))
		return b.String()
	}

	start, end := v.visibleRange()
	for i := start; i < end; i++ {
		b.WriteString(v.renderRow(i))
		b.WriteString("\n")
	}

	if selected := v.Selected(); selected != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Outcome(selected.Outcome).Render(selected.Line()))
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%s  %s  %s",
			selected.Variant, selected.CreatedAt.Local().Format(timeLayout), selected.ID)))
	}

	return b.String()
}

func (v *View) renderRow(i int) string {
	e := &v.evaluations[i]
	text := fmt.Sprintf("%s %s %s", e.Left, e.Operation, e.Right)
	if e.Succeeded() {
		text += " = " + e.Result
	} else {
		text += "  (" + string(e.Outcome) + ")"
	}

	if i == v.selected {
		return "> " + v.styles.Selected.Render(text)
	}
	return "  " + v.styles.Outcome(e.Outcome).Render(text)
}

// visibleRange returns the slice of rows that fits the height, keeping the
// selection in view.
func (v *View) visibleRange() (start, end int) {
	// Title, blank line, detail block and status bar
	visible := v.height - 8
	if visible < 1 {
		visible = 1
	}
	if v.selected >= visible {
		start = v.selected - visible + 1
	}
	end = min(start+visible, len(v.evaluations))
	return start, end
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Evaluations returns the loaded evaluations.
func (v *View) Evaluations() []domain.Evaluation {
	return v.evaluations
}

// Selected returns the selected evaluation, or nil if the list is empty.
func (v *View) Selected() *domain.Evaluation {
	if v.selected < 0 || v.selected >= len(v.evaluations) {
		return nil
	}
	return &v.evaluations[v.selected]
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
