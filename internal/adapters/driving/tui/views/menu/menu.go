// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/drills/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/drills/internal/adapters/driving/tui/styles"
)

// Item represents a single menu option.
type Item struct {
	Label       string
	Description string
	View        messages.ViewType
	Quit        bool // If true, selecting this item quits the app
}

// View represents the main menu view.
type View struct {
	styles   *styles.Styles
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		items: []Item{
			{Label: "Calculator", Description: "evaluate a op b", View: messages.ViewCalculator},
			{Label: "Greeter", Description: "say hi", View: messages.ViewGreeter},
			{Label: "Sentence", Description: "reverse and upper-case", View: messages.ViewSentence},
			{Label: "History", Description: "past evaluations", View: messages.ViewHistory},
			{Label: "Settings", Description: "calculator and history options", View: messages.ViewSettings},
			{Label: "Help", View: messages.ViewHelp},
			{Label: "Quit", Quit: true},
		},
		selected: 0,
		width:    80,
		height:   24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			item := v.items[v.selected]
			if item.Quit {
				return v, tea.Quit
			}
			return v, func() tea.Msg {
				return messages.ViewChanged{View: item.View}
			}

		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("drills"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("Small command-line exercises"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		cursor := "  "
		label := v.styles.Normal.Render(item.Label)
		if i == v.selected {
			cursor = "> "
			label = v.styles.Selected.Render(item.Label)
		}

		b.WriteString(cursor + label)
		if item.Description != "" {
			b.WriteString(v.styles.Muted.Render("  " + item.Description))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [q] Quit"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Items returns the menu items.
func (v *View) Items() []Item {
	return v.items
}
