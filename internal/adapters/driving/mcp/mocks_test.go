package mcp

import (
	"context"

	"github.com/custodia-labs/drills/internal/core/domain"
	"github.com/custodia-labs/drills/internal/core/ports/driving"
)

// mockCalculatorService is a mock implementation of driving.CalculatorService.
type mockCalculatorService struct {
	evaluation *domain.Evaluation
	err        error
	calls      int
	variant    domain.Variant
}

func (m *mockCalculatorService) Evaluate(
	_ context.Context,
	variant domain.Variant,
	_, _, _ string,
) (*domain.Evaluation, error) {
	m.calls++
	m.variant = variant
	return m.evaluation, m.err
}

// mockGreeterService is a mock implementation of driving.GreeterService.
type mockGreeterService struct {
	greeting domain.Greeting
	err      error
}

func (m *mockGreeterService) Greet(_, _ string) (domain.Greeting, error) {
	return m.greeting, m.err
}

// mockManipulatorService is a mock implementation of driving.ManipulatorService.
type mockManipulatorService struct {
	sentence domain.Sentence
}

func (m *mockManipulatorService) Transform(_ string) domain.Sentence {
	return m.sentence
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	evaluations []domain.Evaluation
	evaluation  *domain.Evaluation
	err         error
	limit       int
}

func (m *mockHistoryService) List(_ context.Context, limit int) ([]domain.Evaluation, error) {
	m.limit = limit
	return m.evaluations, m.err
}

func (m *mockHistoryService) Get(_ context.Context, _ string) (*domain.Evaluation, error) {
	return m.evaluation, m.err
}

func (m *mockHistoryService) Stats(_ context.Context) (*driving.HistoryStats, error) {
	return &driving.HistoryStats{Total: len(m.evaluations)}, m.err
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	return m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.AppSettings
	err      error
	empty    bool // Get returns no settings and no error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.empty {
		return nil, nil
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error {
	return m.err
}

func (m *mockSettingsService) SetVariant(_ domain.Variant) error {
	return m.err
}

func (m *mockSettingsService) SetOverflowPolicy(_ domain.OverflowPolicy) error {
	return m.err
}

func (m *mockSettingsService) SetHistoryEnabled(_ bool) error {
	return m.err
}

func (m *mockSettingsService) SetHistoryLimit(_ int) error {
	return m.err
}

func (m *mockSettingsService) Validate() error {
	return m.err
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// newPorts returns ports with every required service mocked.
func newPorts() *Ports {
	return &Ports{
		Calculator:  &mockCalculatorService{},
		Greeter:     &mockGreeterService{},
		Manipulator: &mockManipulatorService{},
	}
}
