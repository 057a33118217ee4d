package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/drills/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/drills/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/drills/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/drills/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/drills/internal/adapters/driving/tui/views/calculator"
	"github.com/custodia-labs/drills/internal/adapters/driving/tui/views/greeter"
	"github.com/custodia-labs/drills/internal/adapters/driving/tui/views/history"
	"github.com/custodia-labs/drills/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/drills/internal/adapters/driving/tui/views/sentence"
	"github.com/custodia-labs/drills/internal/adapters/driving/tui/views/settings"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	// statusBar shows the last outcome and key hints below every view.
	statusBar *status.Bar

	menuView       *menu.View
	calculatorView *calculator.View
	greeterView    *greeter.View
	sentenceView   *sentence.View
	historyView    *history.View
	settingsView   *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		keymap:         km,
		statusBar:      status.NewBar(s, km),
		menuView:       menu.NewView(s),
		calculatorView: calculator.NewView(s, ports.Calculator),
		greeterView:    greeter.NewView(s, ports.Greeter),
		sentenceView:   sentence.NewView(s, ports.Manipulator),
		historyView:    history.NewView(s, ports.History),
		settingsView:   settings.NewView(s, ports.Settings),
		currentView:    messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app and the views that block on it.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.calculatorView.WithContext(ctx)
	a.historyView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("drills"),
		a.loadSettings(),
	)
}

// loadSettings reads the settings so the calculator picks up the
// configured variant. Nil when no settings service is wired.
func (a *App) loadSettings() tea.Cmd {
	if a.ports.Settings == nil {
		return nil
	}
	svc := a.ports.Settings
	return func() tea.Msg {
		s, err := svc.Get()
		return messages.SettingsLoaded{Settings: s, Err: err}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
		case messages.ViewCalculator:
			a.calculatorView, cmd = a.calculatorView.Update(msg)
		case messages.ViewGreeter:
			a.greeterView, cmd = a.greeterView.Update(msg)
		case messages.ViewSentence:
			a.sentenceView, cmd = a.sentenceView.Update(msg)
		case messages.ViewHistory:
			a.historyView, cmd = a.historyView.Update(msg)
		case messages.ViewSettings:
			a.settingsView, cmd = a.settingsView.Update(msg)
		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				return a, a.changeView(messages.ViewMenu)
			}
		}
		return a, cmd

	case messages.ViewChanged:
		return a, a.changeView(msg.View)

	case messages.EvaluationCompleted:
		a.calculatorView, cmd = a.calculatorView.Update(msg)
		switch {
		case msg.Evaluation != nil && msg.Evaluation.Succeeded():
			a.setStatus(status.StateDone, "Evaluated")
		case msg.Evaluation != nil:
			a.setStatus(status.StateDone, string(msg.Evaluation.Outcome))
		default:
			a.setError(msg.Err)
		}
		return a, cmd

	case messages.GreetingCompleted:
		a.greeterView, cmd = a.greeterView.Update(msg)
		if msg.Err != nil {
			a.setError(msg.Err)
		}
		return a, cmd

	case messages.SentenceTransformed:
		a.sentenceView, cmd = a.sentenceView.Update(msg)
		return a, cmd

	case messages.HistoryLoaded, messages.HistoryCleared:
		a.historyView, cmd = a.historyView.Update(msg)
		return a, cmd

	case messages.SettingsLoaded:
		// The calculator follows the configured variant even while hidden
		a.calculatorView, _ = a.calculatorView.Update(msg)
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, tea.Batch(cmd, a.loadSettings())

	case messages.ConfigChanged:
		a.setStatus(status.StateDone, "Configuration reloaded")
		return a, a.loadSettings()

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blinks) to active view
	switch a.currentView {
	case messages.ViewCalculator:
		a.calculatorView, cmd = a.calculatorView.Update(msg)
	case messages.ViewGreeter:
		a.greeterView, cmd = a.greeterView.Update(msg)
	case messages.ViewSentence:
		a.sentenceView, cmd = a.sentenceView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewMenu, messages.ViewHistory, messages.ViewHelp:
		// These views have no animated components
	}

	return a, cmd
}

// changeView switches to view and initialises it.
func (a *App) changeView(view messages.ViewType) tea.Cmd {
	a.currentView = view
	a.err = nil
	a.statusBar.Clear()

	switch view {
	case messages.ViewCalculator:
		a.statusBar.SetBindings(a.keymap.CalculatorHelp())
		return a.calculatorView.Init()
	case messages.ViewGreeter:
		a.statusBar.SetBindings(a.keymap.FormHelp())
		return a.greeterView.Init()
	case messages.ViewSentence:
		a.statusBar.SetBindings(a.keymap.FormHelp())
		return a.sentenceView.Init()
	case messages.ViewHistory:
		a.statusBar.SetBindings(a.keymap.HistoryHelp())
		return a.historyView.Init()
	case messages.ViewSettings:
		a.settingsView.Reset()
		return a.settingsView.Init()
	case messages.ViewHelp:
		a.statusBar.SetState(status.StateHelp)
	case messages.ViewMenu:
		// Menu needs no initialisation
	}
	return nil
}

func (a *App) setStatus(state status.State, message string) {
	a.statusBar.SetState(state)
	a.statusBar.SetMessage(message)
}

func (a *App) setError(err error) {
	a.err = err
	if err != nil {
		a.setStatus(status.StateError, err.Error())
	}
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewMenu:
		// The menu renders its own hints
		return a.menuView.View()
	case messages.ViewCalculator:
		body = a.calculatorView.View()
	case messages.ViewGreeter:
		body = a.greeterView.View()
	case messages.ViewSentence:
		body = a.sentenceView.View()
	case messages.ViewHistory:
		body = a.historyView.View()
	case messages.ViewSettings:
		body = a.settingsView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		return a.menuView.View()
	}

	// Push the status bar to the bottom line
	gap := a.height - strings.Count(body, "\n") - 2
	if gap < 1 {
		gap = 1
	}
	return body + strings.Repeat("\n", gap) + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc          Back to Menu
  ctrl+c       Quit

Menu:
  j/k, ↑/↓     Navigate options
  enter        Select option
  q            Quit

Calculator, Greeter, Sentence:
  tab, ↓       Next field
  shift+tab, ↑ Previous field
  enter        Next field, submit on the last one
  ctrl+t       Toggle int/float (calculator)

History:
  j/k, ↑/↓     Select evaluation
  r            Refresh
  x            Clear history

[esc] back to menu`
}

// NewProgram wraps the app in a bubbletea program on the alternate screen.
func (a *App) NewProgram(opts ...tea.ProgramOption) *tea.Program {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(a.ctx)}, opts...)
	return tea.NewProgram(a, opts...)
}

// Run starts the TUI application.
func (a *App) Run() error {
	_, err := a.NewProgram().Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// StatusBar returns the status bar.
func (a *App) StatusBar() *status.Bar {
	return a.statusBar
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.statusBar.SetWidth(width)
	a.menuView.SetDimensions(width, height)
	a.calculatorView.SetDimensions(width, height)
	a.greeterView.SetDimensions(width, height)
	a.sentenceView.SetDimensions(width, height)
	a.historyView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
