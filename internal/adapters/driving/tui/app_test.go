package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/drills/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/drills/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/drills/internal/core/domain"
)

func newTestPorts() *Ports {
	return &Ports{
		Calculator:  &MockCalculatorService{},
		Greeter:     &MockGreeterService{},
		Manipulator: &MockManipulatorService{},
		History:     &MockHistoryService{},
		Settings:    &MockSettingsService{Settings: domain.DefaultAppSettings()},
	}
}

func newTestApp(t *testing.T, ports *Ports) *App {
	t.Helper()
	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(80, 24)
	return app
}

// runCmd executes cmd and feeds the resulting app messages back into the
// app, expanding batches. Cursor blink ticks are dropped.
func runCmd(app *App, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			runCmd(app, c)
		}
	case messages.ViewChanged, messages.EvaluationCompleted, messages.GreetingCompleted,
		messages.SentenceTransformed, messages.HistoryLoaded, messages.HistoryCleared,
		messages.SettingsLoaded, messages.SettingsSaved:
		_, next := app.Update(msg)
		runCmd(app, next)
	}
}

func typeText(app *App, text string) {
	for _, r := range text {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(newTestPorts())

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
	assert.False(t, app.Ready())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{Greeter: &MockGreeterService{}, Manipulator: &MockManipulatorService{}})

	assert.ErrorIs(t, err, ErrMissingCalculatorService)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Equal(t, app, app.WithContext(ctx))
	assert.Equal(t, ctx, app.ctx)
}

func TestApp_Init(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	assert.NotNil(t, app.Init())
}

func TestApp_View_NotReady(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	_, cmd := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
	assert.Equal(t, 100, app.StatusBar().Width())
	assert.Contains(t, app.View(), "drills")
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := newTestApp(t, newTestPorts())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_QuitMessage(t *testing.T) {
	app := newTestApp(t, newTestPorts())

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_MenuNavigatesToCalculator(t *testing.T) {
	app := newTestApp(t, newTestPorts())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	runCmd(app, cmd)

	assert.Equal(t, messages.ViewCalculator, app.CurrentView())
	assert.Contains(t, app.View(), "Calculator")
}

func TestApp_CalculatorFlow(t *testing.T) {
	ports := newTestPorts()
	var gotVariant domain.Variant
	ports.Calculator = &MockCalculatorService{
		EvaluateFunc: func(_ context.Context, variant domain.Variant, left, op, right string) (*domain.Evaluation, error) {
			gotVariant = variant
			assert.Equal(t, "6", left)
			assert.Equal(t, "+", op)
			assert.Equal(t, "3", right)
			return &domain.Evaluation{
				Variant: variant, Left: left, Operation: domain.Operation(op), Right: right,
				Result: "9", Outcome: domain.OutcomeOK,
			}, nil
		},
	}
	app := newTestApp(t, ports)
	app.changeView(messages.ViewCalculator)

	typeText(app, "6")
	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(app, "+")
	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(app, "3")
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	runCmd(app, cmd)

	assert.Equal(t, domain.VariantInt, gotVariant)
	assert.Contains(t, app.View(), "The result is: 6 + 3 = 9")
	assert.Equal(t, status.StateDone, app.StatusBar().State())
}

func TestApp_CalculatorRejectedInput(t *testing.T) {
	app := newTestApp(t, newTestPorts())
	app.changeView(messages.ViewCalculator)

	app.Update(messages.EvaluationCompleted{Err: domain.ErrInvalidNumber})

	assert.ErrorIs(t, app.Err(), domain.ErrInvalidNumber)
	assert.Equal(t, status.StateError, app.StatusBar().State())
}

func TestApp_SettingsLoadedReachesCalculator(t *testing.T) {
	settings := domain.DefaultAppSettings()
	settings.Calculator.Variant = domain.VariantFloat
	app := newTestApp(t, newTestPorts())

	app.Update(messages.SettingsLoaded{Settings: &settings})

	assert.Equal(t, domain.VariantFloat, app.calculatorView.Variant())
}

func TestApp_ConfigChangedReloadsSettings(t *testing.T) {
	svc := &MockSettingsService{Settings: domain.DefaultAppSettings()}
	ports := newTestPorts()
	ports.Settings = svc
	app := newTestApp(t, ports)

	svc.Settings.Calculator.Variant = domain.VariantFloat
	_, cmd := app.Update(messages.ConfigChanged{})
	runCmd(app, cmd)

	assert.Equal(t, 1, svc.GetCalls)
	assert.Equal(t, domain.VariantFloat, app.calculatorView.Variant())
	assert.Equal(t, "Configuration reloaded", app.StatusBar().Message())
}

func TestApp_ConfigChanged_NoSettingsService(t *testing.T) {
	ports := newTestPorts()
	ports.Settings = nil
	app := newTestApp(t, ports)

	_, cmd := app.Update(messages.ConfigChanged{})

	assert.Nil(t, cmd)
}

func TestApp_GreeterFlow(t *testing.T) {
	ports := newTestPorts()
	ports.Greeter = &MockGreeterService{
		GreetFunc: func(name, ageText string) (domain.Greeting, error) {
			return domain.Greeting{Name: name, Age: 30}, nil
		},
	}
	app := newTestApp(t, ports)
	app.changeView(messages.ViewGreeter)

	typeText(app, "Ana")
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typeText(app, "30")
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	runCmd(app, cmd)

	assert.Contains(t, app.View(), "hi Ana, you are 30 years old!")
}

func TestApp_GreeterError(t *testing.T) {
	app := newTestApp(t, newTestPorts())
	app.changeView(messages.ViewGreeter)

	app.Update(messages.GreetingCompleted{Err: domain.ErrInvalidAge})

	assert.ErrorIs(t, app.Err(), domain.ErrInvalidAge)
}

func TestApp_SentenceFlow(t *testing.T) {
	ports := newTestPorts()
	ports.Manipulator = &MockManipulatorService{
		TransformFunc: func(sentence string) domain.Sentence {
			return domain.Sentence{Original: sentence, Transformed: "DLROW OLLEH"}
		},
	}
	app := newTestApp(t, ports)
	app.changeView(messages.ViewSentence)

	typeText(app, "Hello World")
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	runCmd(app, cmd)

	assert.Contains(t, app.View(), "your sentence is: DLROW OLLEH")
}

func TestApp_HistoryView(t *testing.T) {
	history := &MockHistoryService{
		ListFunc: func(_ context.Context, _ int) ([]domain.Evaluation, error) {
			return []domain.Evaluation{
				{ID: "1", Left: "7", Operation: "/", Right: "2", Result: "3", Outcome: domain.OutcomeOK},
			}, nil
		},
	}
	ports := newTestPorts()
	ports.History = history
	app := newTestApp(t, ports)

	runCmd(app, app.changeView(messages.ViewHistory))
	assert.Contains(t, app.View(), "7 / 2 = 3")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	runCmd(app, cmd)
	assert.True(t, history.Cleared)
}

func TestApp_SettingsView(t *testing.T) {
	svc := &MockSettingsService{Settings: domain.DefaultAppSettings()}
	ports := newTestPorts()
	ports.Settings = svc
	app := newTestApp(t, ports)

	runCmd(app, app.changeView(messages.ViewSettings))
	assert.Contains(t, app.View(), "Record history: on")

	// Toggle history recording
	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	runCmd(app, cmd)

	assert.False(t, svc.Settings.History.Enabled)
	assert.Contains(t, app.View(), "Record history: off")
}

func TestApp_HelpView(t *testing.T) {
	app := newTestApp(t, newTestPorts())

	app.Update(messages.ViewChanged{View: messages.ViewHelp})
	assert.Contains(t, app.View(), "Toggle int/float")
	assert.Equal(t, status.StateHelp, app.StatusBar().State())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_EscReturnsToMenu(t *testing.T) {
	for _, view := range []messages.ViewType{
		messages.ViewCalculator, messages.ViewGreeter, messages.ViewSentence,
		messages.ViewHistory, messages.ViewSettings,
	} {
		t.Run(view.String(), func(t *testing.T) {
			app := newTestApp(t, newTestPorts())
			app.changeView(view)

			_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
			runCmd(app, cmd)

			assert.Equal(t, messages.ViewMenu, app.CurrentView())
		})
	}
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := newTestApp(t, newTestPorts())
	app.changeView(messages.ViewCalculator)

	app.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.EqualError(t, app.Err(), "boom")
	assert.Contains(t, app.View(), "Error: boom")
}

func TestApp_ChangeViewClearsError(t *testing.T) {
	app := newTestApp(t, newTestPorts())
	app.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	app.Update(messages.ViewChanged{View: messages.ViewMenu})

	assert.NoError(t, app.Err())
	assert.Equal(t, status.StateReady, app.StatusBar().State())
}
