package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/drills/internal/core/domain"
	"github.com/custodia-labs/drills/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu          sync.RWMutex
	evaluations map[string]domain.Evaluation
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		evaluations: make(map[string]domain.Evaluation),
	}
}

// Save stores or replaces an evaluation.
func (s *HistoryStore) Save(_ context.Context, evaluation *domain.Evaluation) error {
	if evaluation == nil || evaluation.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evaluations[evaluation.ID] = *evaluation
	return nil
}

// Get retrieves an evaluation by ID.
func (s *HistoryStore) Get(_ context.Context, id string) (*domain.Evaluation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	evaluation, ok := s.evaluations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &evaluation, nil
}

// List returns up to limit evaluations, newest first.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.Evaluation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := s.sorted()
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Count returns the number of evaluations per outcome.
func (s *HistoryStore) Count(_ context.Context) (map[domain.Outcome]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[domain.Outcome]int)
	for i := range s.evaluations {
		counts[s.evaluations[i].Outcome]++
	}
	return counts, nil
}

// Prune deletes all but the newest keep evaluations.
func (s *HistoryStore) Prune(_ context.Context, keep int) (int, error) {
	if keep < 0 {
		return 0, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	ordered := s.sorted()
	if len(ordered) <= keep {
		return 0, nil
	}
	for _, evaluation := range ordered[keep:] {
		delete(s.evaluations, evaluation.ID)
	}
	return len(ordered) - keep, nil
}

// Clear deletes every evaluation.
func (s *HistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evaluations = make(map[string]domain.Evaluation)
	return nil
}

// sorted returns evaluations newest first, ties broken by ID
// (caller must hold lock).
func (s *HistoryStore) sorted() []domain.Evaluation {
	result := make([]domain.Evaluation, 0, len(s.evaluations))
	for _, evaluation := range s.evaluations {
		result = append(result, evaluation)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result
}
