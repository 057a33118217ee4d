package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/drills/internal/core/domain"
	"github.com/custodia-labs/drills/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

const selectEvaluation = `
	SELECT id, variant, left_operand, operation, right_operand, result, outcome, created_at
	FROM evaluations`

// Save stores or replaces an evaluation.
func (s *historyStore) Save(ctx context.Context, evaluation *domain.Evaluation) error {
	if evaluation == nil || evaluation.ID == "" {
		return domain.ErrInvalidInput
	}

	createdAt := evaluation.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO evaluations (id, variant, left_operand, operation, right_operand, result, outcome, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			variant = excluded.variant,
			left_operand = excluded.left_operand,
			operation = excluded.operation,
			right_operand = excluded.right_operand,
			result = excluded.result,
			outcome = excluded.outcome,
			created_at = excluded.created_at
	`, evaluation.ID, string(evaluation.Variant), evaluation.Left, string(evaluation.Operation),
		evaluation.Right, evaluation.Result, string(evaluation.Outcome), createdAt.UnixNano())

	if err != nil {
		return fmt.Errorf("saving evaluation: %w", err)
	}
	return nil
}

// Get retrieves an evaluation by ID.
func (s *historyStore) Get(ctx context.Context, id string) (*domain.Evaluation, error) {
	row := s.store.db.QueryRowContext(ctx, selectEvaluation+" WHERE id = ?", id)

	evaluation, err := scanEvaluation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning evaluation: %w", err)
	}
	return evaluation, nil
}

// List returns up to limit evaluations, newest first.
func (s *historyStore) List(ctx context.Context, limit int) ([]domain.Evaluation, error) {
	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as unbounded
	}

	rows, err := s.store.db.QueryContext(ctx,
		selectEvaluation+" ORDER BY created_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("querying evaluations: %w", err)
	}
	defer rows.Close()

	var evaluations []domain.Evaluation //nolint:prealloc // size unknown from query
	for rows.Next() {
		evaluation, err := scanEvaluation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning evaluation: %w", err)
		}
		evaluations = append(evaluations, *evaluation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating evaluations: %w", err)
	}

	return evaluations, nil
}

// Count returns the number of evaluations per outcome.
func (s *historyStore) Count(ctx context.Context) (map[domain.Outcome]int, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT outcome, COUNT(*) FROM evaluations GROUP BY outcome")
	if err != nil {
		return nil, fmt.Errorf("counting evaluations: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.Outcome]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		counts[domain.Outcome(outcome)] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating counts: %w", err)
	}

	return counts, nil
}

// Prune deletes all but the newest keep evaluations.
func (s *historyStore) Prune(ctx context.Context, keep int) (int, error) {
	if keep < 0 {
		return 0, domain.ErrInvalidInput
	}

	result, err := s.store.db.ExecContext(ctx, `
		DELETE FROM evaluations WHERE id NOT IN (
			SELECT id FROM evaluations ORDER BY created_at DESC, id DESC LIMIT ?
		)
	`, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning evaluations: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting pruned evaluations: %w", err)
	}
	return int(deleted), nil
}

// Clear deletes every evaluation.
func (s *historyStore) Clear(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM evaluations"); err != nil {
		return fmt.Errorf("clearing evaluations: %w", err)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanEvaluation scans a single evaluation row.
func scanEvaluation(row rowScanner) (*domain.Evaluation, error) {
	var evaluation domain.Evaluation
	var variant, operation, outcome string
	var createdAt int64

	if err := row.Scan(&evaluation.ID, &variant, &evaluation.Left, &operation,
		&evaluation.Right, &evaluation.Result, &outcome, &createdAt); err != nil {
		return nil, err
	}

	evaluation.Variant = domain.Variant(variant)
	evaluation.Operation = domain.Operation(operation)
	evaluation.Outcome = domain.Outcome(outcome)
	evaluation.CreatedAt = time.Unix(0, createdAt)
	return &evaluation, nil
}
