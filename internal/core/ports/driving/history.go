package driving

import (
	"context"

	"github.com/custodia-labs/drills/internal/core/domain"
)

// HistoryStats summarises the evaluation history.
type HistoryStats struct {
	Total     int                    `json:"total"`
	ByOutcome map[domain.Outcome]int `json:"by_outcome"`
}

// HistoryService exposes past calculator evaluations.
type HistoryService interface {
	// List returns up to limit evaluations, newest first.
	List(ctx context.Context, limit int) ([]domain.Evaluation, error)

	// Get retrieves a single evaluation by ID.
	Get(ctx context.Context, id string) (*domain.Evaluation, error)

	// Stats counts evaluations per outcome.
	Stats(ctx context.Context) (*HistoryStats, error)

	// Clear deletes the whole history.
	Clear(ctx context.Context) error
}
