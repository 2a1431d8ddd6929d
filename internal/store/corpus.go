package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/sanskrit-quiz-api/internal/domain"
)

// SentenceFilter restricts which sentence records a query returns. The
// zero value matches every record.
type SentenceFilter struct {
	// Tense restricts records to one tense when non-empty.
	Tense domain.Tense

	// ObjectlessOnly restricts records to those without an object, as the
	// number game requires.
	ObjectlessOnly bool
}

// SentenceStore defines persistence for the generated sentence corpus.
// The corpus is written only by full regeneration: callers expect
// delete-all-then-insert-all semantics.
type SentenceStore interface {
	// GetAll retrieves sentence records matching the filter, in insertion
	// order.
	GetAll(ctx context.Context, filter SentenceFilter) ([]domain.SentenceRecord, error)

	// Count returns the number of persisted sentence records.
	Count(ctx context.Context) (int, error)

	// ReplaceAll deletes the prior corpus and inserts the given records.
	// IMPORTANT: This method MUST be run within a transaction so a failed
	// regeneration never leaves the corpus half-replaced. Use WithTx
	// together with store.RunInTransaction.
	ReplaceAll(ctx context.Context, records []domain.SentenceRecord) error

	// WithTx returns a SentenceStore bound to the given transaction.
	WithTx(tx *sql.Tx) SentenceStore
}

// MatchingGameStore defines persistence for aggregated matching-game
// entries, with the same replace-all write semantics as SentenceStore.
type MatchingGameStore interface {
	// GetAll retrieves every complete matching entry in insertion order.
	GetAll(ctx context.Context) ([]domain.MatchingGameEntry, error)

	// ReplaceAll deletes the prior entries and inserts the given ones.
	// IMPORTANT: run within a transaction; see SentenceStore.ReplaceAll.
	ReplaceAll(ctx context.Context, entries []domain.MatchingGameEntry) error

	// WithTx returns a MatchingGameStore bound to the given transaction.
	WithTx(tx *sql.Tx) MatchingGameStore
}
