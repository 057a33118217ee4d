// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/drills/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/drills/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/drills/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/drills/internal/core/domain"
	"github.com/custodia-labs/drills/internal/core/ports/driving"
)

// Section tracks which settings section is active.
type Section int

const (
	SectionOverview Section = iota
	SectionVariant
	SectionOverflow
	SectionHistoryLimit
)

// Overview rows.
const (
	itemVariant = iota
	itemOverflow
	itemHistoryEnabled
	itemHistoryLimit
	overviewItems
)

// Key constants for key handling.
const (
	keyUp    = "up"
	keyDown  = "down"
	keyEnter = "enter"
)

var errServiceUnavailable = errors.New("settings service not available")

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	// Current settings
	settings *domain.AppSettings
	err      error

	// Navigation state
	section  Section
	selected int // selection within current section

	limitInput *input.Field

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:          s,
		settingsService: settingsService,
		section:         SectionOverview,
		limitInput:      input.NewField(s, "History limit", strconv.Itoa(domain.DefaultHistoryLimit)),
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// loadSettings returns a command that loads current settings.
func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: errServiceUnavailable}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.section = SectionOverview
		return v, v.loadSettings()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses based on current section.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == "esc" {
		if v.section == SectionOverview {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		v.closeSection()
		return v, nil
	}

	switch v.section {
	case SectionOverview:
		return v.handleOverviewKeys(msg)
	case SectionVariant:
		variants := domain.AllVariants()
		if i, ok := v.handleChoiceKeys(msg, len(variants)); ok {
			return v, v.save(func(s driving.SettingsService) error { return s.SetVariant(variants[i]) })
		}
	case SectionOverflow:
		policies := domain.AllOverflowPolicies()
		if i, ok := v.handleChoiceKeys(msg, len(policies)); ok {
			return v, v.save(func(s driving.SettingsService) error { return s.SetOverflowPolicy(policies[i]) })
		}
	case SectionHistoryLimit:
		return v.handleLimitKeys(msg)
	}

	return v, nil
}

func (v *View) handleOverviewKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case keyUp, "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < overviewItems-1 {
			v.selected++
		}
	case keyEnter:
		if v.settings == nil {
			return v, nil
		}
		switch v.selected {
		case itemVariant:
			v.section = SectionVariant
			v.selected = indexOf(domain.AllVariants(), v.settings.Calculator.Variant)
		case itemOverflow:
			v.section = SectionOverflow
			v.selected = indexOf(domain.AllOverflowPolicies(), v.settings.Calculator.Overflow)
		case itemHistoryEnabled:
			enabled := !v.settings.History.Enabled
			return v, v.save(func(s driving.SettingsService) error { return s.SetHistoryEnabled(enabled) })
		case itemHistoryLimit:
			v.section = SectionHistoryLimit
			v.limitInput.SetValue(strconv.Itoa(v.settings.History.Limit))
			return v, v.limitInput.Focus()
		}
	}
	return v, nil
}

// handleChoiceKeys moves through a list of n options and reports the
// chosen index on enter.
func (v *View) handleChoiceKeys(msg tea.KeyMsg, n int) (int, bool) {
	switch msg.String() {
	case keyUp, "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < n-1 {
			v.selected++
		}
	case keyEnter:
		if v.selected >= 0 && v.selected < n {
			return v.selected, true
		}
	}
	return 0, false
}

func (v *View) handleLimitKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() != keyEnter {
		var cmd tea.Cmd
		v.limitInput, cmd = v.limitInput.Update(msg)
		return v, cmd
	}

	limit, err := strconv.Atoi(strings.TrimSpace(v.limitInput.Value()))
	if err != nil || limit <= 0 {
		v.err = fmt.Errorf("%w: history limit must be a positive integer", domain.ErrInvalidInput)
		return v, nil
	}
	return v, v.save(func(s driving.SettingsService) error { return s.SetHistoryLimit(limit) })
}

// save runs fn against the settings service and reports the result.
func (v *View) save(fn func(driving.SettingsService) error) tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Err: errServiceUnavailable}
		}
		return messages.SettingsSaved{Err: fn(v.settingsService)}
	}
}

func (v *View) closeSection() {
	switch v.section {
	case SectionVariant:
		v.selected = itemVariant
	case SectionOverflow:
		v.selected = itemOverflow
	case SectionHistoryLimit:
		v.selected = itemHistoryLimit
		v.limitInput.Blur()
	}
	v.section = SectionOverview
}

func indexOf[T comparable](items []T, item T) int {
	for i, it := range items {
		if it == item {
			return i
		}
	}
	return 0
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	switch v.section {
	case SectionOverview:
		b.WriteString(v.renderOverview())
	case SectionVariant:
		b.WriteString(renderChoices(v, "Select Calculator Variant", domain.AllVariants(),
			v.settings.Calculator.Variant, domain.Variant.Description))
	case SectionOverflow:
		b.WriteString(renderChoices(v, "Select Overflow Policy", domain.AllOverflowPolicies(),
			v.settings.Calculator.Overflow, domain.OverflowPolicy.Description))
	case SectionHistoryLimit:
		b.WriteString(v.styles.Subtitle.Render("Set History Limit"))
		b.WriteString("\n\n")
		b.WriteString(v.limitInput.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

func (v *View) renderOverview() string {
	var b strings.Builder

	items := []struct {
		label string
		value string
	}{
		{label: "Variant", value: v.settings.Calculator.Variant.Description()},
		{label: "Overflow", value: v.settings.Calculator.Overflow.Description()},
		{label: "Record history", value: onOff(v.settings.History.Enabled)},
		{label: "History limit", value: strconv.Itoa(v.settings.History.Limit)},
	}

	for i, item := range items {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}

		line := fmt.Sprintf("%s%s: %s", indicator, item.label, item.value)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("MCP: %g calls/s, burst %d",
		v.settings.MCP.RateLimit, v.settings.MCP.Burst)))
	b.WriteString("\n\n")

	if v.settingsService != nil {
		if err := v.settingsService.Validate(); err != nil {
			b.WriteString(v.styles.Warning.Render(fmt.Sprintf("Warning: %s", err.Error())))
		} else {
			b.WriteString(v.styles.Success.Render("Configuration is valid"))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func renderChoices[T comparable](v *View, title string, options []T, current T, describe func(T) string) string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render(title))
	b.WriteString("\n\n")

	for i, option := range options {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}

		marker := ""
		if option == current {
			marker = v.styles.Success.Render(" (current)")
		}

		line := fmt.Sprintf("%s%s%s", indicator, describe(option), marker)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) renderHelp() string {
	switch v.section {
	case SectionOverview:
		return v.styles.Help.Render("[j/k] navigate  [enter] edit  [esc] back")
	case SectionHistoryLimit:
		return v.styles.Help.Render("[enter] save  [esc] cancel")
	default:
		return v.styles.Help.Render("[j/k] navigate  [enter] select  [esc] back")
	}
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.limitInput.SetWidth(min(width, 40))
}

// Section returns the active section.
func (v *View) Section() Section {
	return v.section
}

// Settings returns the loaded settings.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Reset resets the view to initial state.
func (v *View) Reset() {
	v.section = SectionOverview
	v.selected = 0
	v.err = nil
	v.limitInput.Reset()
	v.limitInput.Blur()
}
