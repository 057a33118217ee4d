package driven

import (
	"context"

	"github.com/custodia-labs/drills/internal/core/domain"
)

// HistoryStore persists calculator evaluations.
type HistoryStore interface {
	// Save stores an evaluation. An existing evaluation with the same ID
	// is replaced.
	Save(ctx context.Context, evaluation *domain.Evaluation) error

	// Get retrieves an evaluation by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Evaluation, error)

	// List returns up to limit evaluations, newest first.
	// A limit of zero or less returns every evaluation.
	List(ctx context.Context, limit int) ([]domain.Evaluation, error)

	// Count returns the number of evaluations per outcome.
	Count(ctx context.Context) (map[domain.Outcome]int, error)

	// Prune deletes all but the newest keep evaluations.
	// Returns the number of evaluations deleted.
	Prune(ctx context.Context, keep int) (int, error)

	// Clear deletes every evaluation.
	Clear(ctx context.Context) error
}
