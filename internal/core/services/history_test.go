package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/drills/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/drills/internal/core/domain"
)

func seedHistory(t *testing.T, store *memory.HistoryStore) {
	t.Helper()
	ctx := context.Background()
	base := time.Now()
	outcomes := []domain.Outcome{
		domain.OutcomeOK, domain.OutcomeOK, domain.OutcomeInvalidOperation, domain.OutcomeDivisionByZero,
	}
	for i, outcome := range outcomes {
		require.NoError(t, store.Save(ctx, &domain.Evaluation{
			ID:        string(rune('a' + i)),
			Variant:   domain.VariantInt,
			Outcome:   outcome,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}
}

func TestHistoryService_List(t *testing.T) {
	store := memory.NewHistoryStore()
	seedHistory(t, store)
	service := NewHistoryService(store)

	evaluations, err := service.List(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, evaluations, 3)
	assert.Equal(t, "d", evaluations[0].ID)
}

func TestHistoryService_Get(t *testing.T) {
	store := memory.NewHistoryStore()
	seedHistory(t, store)
	service := NewHistoryService(store)

	evaluation, err := service.Get(context.Background(), "c")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeInvalidOperation, evaluation.Outcome)

	_, err = service.Get(context.Background(), "zz")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = service.Get(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistoryService_Stats(t *testing.T) {
	store := memory.NewHistoryStore()
	seedHistory(t, store)
	service := NewHistoryService(store)

	stats, err := service.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.ByOutcome[domain.OutcomeOK])
	assert.Equal(t, 1, stats.ByOutcome[domain.OutcomeDivisionByZero])
	assert.Equal(t, 1, stats.ByOutcome[domain.OutcomeInvalidOperation])
	count, present := stats.ByOutcome[domain.OutcomeOverflow]
	assert.True(t, present)
	assert.Zero(t, count)
}

func TestHistoryService_Clear(t *testing.T) {
	store := memory.NewHistoryStore()
	seedHistory(t, store)
	service := NewHistoryService(store)

	require.NoError(t, service.Clear(context.Background()))

	stats, err := service.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
}
