package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/drills/internal/core/domain"
	"github.com/custodia-labs/drills/internal/core/ports/driven"
	"github.com/custodia-labs/drills/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService exposes the evaluation history.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// List returns up to limit evaluations, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.Evaluation, error) {
	evaluations, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	return evaluations, nil
}

// Get retrieves a single evaluation by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.Evaluation, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: evaluation id is required", domain.ErrInvalidInput)
	}
	return s.store.Get(ctx, id)
}

// Stats counts evaluations per outcome.
// Every known outcome is present in the result, with zero where unused.
func (s *HistoryService) Stats(ctx context.Context) (*driving.HistoryStats, error) {
	counts, err := s.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting history: %w", err)
	}

	stats := &driving.HistoryStats{ByOutcome: make(map[domain.Outcome]int, len(counts))}
	for _, outcome := range domain.AllOutcomes() {
		stats.ByOutcome[outcome] = counts[outcome]
		stats.Total += counts[outcome]
	}
	return stats, nil
}

// Clear deletes the whole history.
func (s *HistoryService) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}
