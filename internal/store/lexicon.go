package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/sanskrit-quiz-api/internal/domain"
)

// NounStore provides read access to the noun lexicon. Noun records are
// immutable reference data; the only write path is bulk seeding.
type NounStore interface {
	// GetAll retrieves every noun record in lexicon order.
	GetAll(ctx context.Context) ([]domain.Noun, error)

	// ReplaceAll deletes the existing lexicon and inserts the given nouns.
	// Used by the offline seeder only; run within a transaction via WithTx.
	ReplaceAll(ctx context.Context, nouns []domain.Noun) error

	// WithTx returns a NounStore bound to the given transaction.
	WithTx(tx *sql.Tx) NounStore
}

// VerbStore provides read access to the verb lexicon, which is stored
// grouped by verb class.
type VerbStore interface {
	// GetAll retrieves every verb record, flattened across classes, in
	// lexicon order.
	GetAll(ctx context.Context) ([]domain.Verb, error)

	// ReplaceAll deletes the existing lexicon and inserts the given verbs.
	// Used by the offline seeder only; run within a transaction via WithTx.
	ReplaceAll(ctx context.Context, verbs []domain.Verb) error

	// WithTx returns a VerbStore bound to the given transaction.
	WithTx(tx *sql.Tx) VerbStore
}

// ConjugationStore provides read access to the conjugation rule documents,
// one per tense group.
type ConjugationStore interface {
	// GetTable retrieves the merged conjugation table across all tense
	// documents. Returns ErrConjugationsNotFound when no documents exist.
	GetTable(ctx context.Context) (domain.ConjugationTable, error)

	// ReplaceAll deletes the existing rule documents and inserts the given
	// table. Used by the offline seeder only; run within a transaction via
	// WithTx.
	ReplaceAll(ctx context.Context, table domain.ConjugationTable) error

	// WithTx returns a ConjugationStore bound to the given transaction.
	WithTx(tx *sql.Tx) ConjugationStore
}
