package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/drills/internal/core/domain"
	"github.com/custodia-labs/drills/internal/core/ports/driven"
	"github.com/custodia-labs/drills/internal/core/ports/driving"
	"github.com/custodia-labs/drills/internal/logger"
)

// Ensure CalculatorService implements the interface.
var _ driving.CalculatorService = (*CalculatorService)(nil)

// CalculatorService parses operands, runs the evaluator and records the
// outcome in the history store.
type CalculatorService struct {
	settings driving.SettingsService
	history  driven.HistoryStore
	now      func() time.Time
}

// NewCalculatorService creates a new calculator service.
// settings may be nil, in which case defaults apply. history may be nil to
// disable recording entirely.
func NewCalculatorService(settings driving.SettingsService, history driven.HistoryStore) *CalculatorService {
	return &CalculatorService{
		settings: settings,
		history:  history,
		now:      time.Now,
	}
}

// Evaluate implements driving.CalculatorService.
func (s *CalculatorService) Evaluate(
	ctx context.Context,
	variant domain.Variant,
	left, op, right string,
) (*domain.Evaluation, error) {
	logger.Section("Evaluate")

	settings := s.currentSettings()
	if variant == "" {
		variant = settings.Calculator.Variant
	}

	expr, err := domain.ParseExpression(variant, left, op, right)
	if err != nil {
		return nil, err
	}
	logger.Debug("%s operands: %s (overflow=%s)", variant, expr, settings.Calculator.Overflow)

	evaluation := &domain.Evaluation{
		ID:        uuid.New().String(),
		Variant:   expr.Variant,
		Left:      expr.Left(),
		Operation: expr.Operation,
		Right:     expr.Right(),
		CreatedAt: s.now().UTC(),
	}

	result, evalErr := expr.Evaluate(settings.Calculator.Overflow)
	evaluation.Result = result

	outcome, ok := domain.OutcomeOf(evalErr)
	if !ok {
		return nil, evalErr
	}
	evaluation.Outcome = outcome
	logger.Debug("outcome: %s", outcome)

	s.record(ctx, evaluation, settings.History)

	return evaluation, evalErr
}

// record saves the evaluation and prunes old entries. Storage failures are
// logged and never change the calculator result.
func (s *CalculatorService) record(ctx context.Context, evaluation *domain.Evaluation, cfg domain.HistorySettings) {
	if s.history == nil || !cfg.Enabled {
		return
	}

	if err := s.history.Save(ctx, evaluation); err != nil {
		logger.Warn("recording evaluation %s: %v", evaluation.ID, err)
		return
	}

	if !cfg.IsValid() {
		return
	}
	pruned, err := s.history.Prune(ctx, cfg.Limit)
	if err != nil {
		logger.Warn("pruning history: %v", err)
		return
	}
	if pruned > 0 {
		logger.Debug("pruned %d old evaluations", pruned)
	}
}

func (s *CalculatorService) currentSettings() domain.AppSettings {
	if s.settings == nil {
		return domain.DefaultAppSettings()
	}
	settings, err := s.settings.Get()
	if err != nil || settings == nil {
		logger.Warn("loading settings, using defaults: %v", err)
		return domain.DefaultAppSettings()
	}
	return *settings
}
