// Package calculator provides the calculator form view for the TUI.
package calculator

import (
	"context"
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

// View asks for two numbers and an operation and shows the result line.
type View struct {
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	calculator driving.CalculatorService
	ctx        context.Context

	form *input.Form

	// variant is the numeric type used for the next evaluation.
	variant domain.Variant
	// overridden is set once the user toggles the variant, so settings
	// reloads no longer replace it.
	overridden bool

	evaluation *domain.Evaluation
	err        error
	busy       bool

	width  int
	height int
}

// NewView creates a new calculator view.
func NewView(s *styles.Styles, calculator driving.CalculatorService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:     s,
		keymap:     keymap.DefaultKeyMap(),
		calculator: calculator,
		ctx:        context.Background(),
		form: input.NewForm(
			input.NewField(s, "First number", "e.g. 6"),
			input.NewField(s, "Operation", "+ - * /"),
			input.NewField(s, "Second number", "e.g. 3"),
		),
		variant: domain.DefaultAppSettings().Calculator.Variant,
		width:   80,
		height:  24,
	}
}

// WithContext sets the context used for evaluations.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init clears the form and result.
func (v *View) Init() tea.Cmd {
	v.Reset()
	return v.form.Reset()
}

// Reset clears the last result.
func (v *View) Reset() {
	v.evaluation = nil
	v.err = nil
	v.busy = false
}

// Update handles messages for the calculator view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err == nil && msg.Settings != nil && !v.overridden && msg.Settings.Calculator.Variant.IsValid() {
			v.variant = msg.Settings.Calculator.Variant
		}
		return v, nil

	case messages.EvaluationCompleted:
		v.busy = false
		v.evaluation = msg.Evaluation
		v.err = nil
		if msg.Evaluation == nil {
			v.err = msg.Err
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, v.form.Update(msg)
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case keymap.Matches(keyStr, v.keymap.ToggleVariant):
		v.ToggleVariant()
		return v, nil

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

	return v, v.form.Update(msg)
}

// submit evaluates the current form values.
func (v *View) submit() tea.Cmd {
	values := v.form.Values()
	left, op, right := values[0], values[1], values[2]
	variant := v.variant
	v.busy = true

	return func() tea.Msg {
		if v.calculator == nil {
			return messages.EvaluationCompleted{Err: errors.New("calculator service not available")}
		}
		evaluation, err := v.calculator.Evaluate(v.ctx, variant, left, op, right)
		return messages.EvaluationCompleted{Evaluation: evaluation, Err: err}
	}
}

// ToggleVariant switches between integer and float arithmetic.
func (v *View) ToggleVariant() {
	v.overridden = true
	if v.variant == domain.VariantFloat {
		v.variant = domain.VariantInt
		return
	}
	v.variant = domain.VariantFloat
}

// View renders the calculator.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Calculator"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("Variant: " + v.variant.Description()))
	b.WriteString("\n\n")
	b.WriteString(v.form.View())
	b.WriteString("\n\n")

	switch {
	case v.busy:
		b.WriteString(v.styles.Muted.Render("Evaluating..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case v.evaluation != nil:
		b.WriteString(v.styles.Outcome(v.evaluation.Outcome).Render(v.evaluation.Line()))
	}

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.form.SetWidth(min(width, 60))
}

// Variant returns the variant used for the next evaluation.
func (v *View) Variant() domain.Variant {
	return v.variant
}

// Evaluation returns the last evaluation, if any.
func (v *View) Evaluation() *domain.Evaluation {
	return v.evaluation
}

// Err returns the last input error.
func (v *View) Err() error {
	return v.err
}

// Form returns the input form.
func (v *View) Form() *input.Form {
	return v.form
}
