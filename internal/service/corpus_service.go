package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/sanskrit-quiz-api/internal/domain"
	"github.com/phrazzld/sanskrit-quiz-api/internal/domain/grammar"
	"github.com/phrazzld/sanskrit-quiz-api/internal/platform/logger"
	"github.com/phrazzld/sanskrit-quiz-api/internal/store"
)

// CorpusServiceError is a custom error type for corpus service errors.
type CorpusServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for CorpusServiceError.
func (e *CorpusServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("corpus service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("corpus service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *CorpusServiceError) Unwrap() error {
	return e.Err
}

// NewCorpusServiceError creates a new CorpusServiceError.
func NewCorpusServiceError(operation, message string, err error) *CorpusServiceError {
	return &CorpusServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// GenerationResult reports how many records each corpus received.
type GenerationResult struct {
	SentenceCount int `json:"sentence_count"`
	MatchingCount int `json:"matching_count"`
}

// CorpusService regenerates the derived corpora from the reference data
// and seeds the reference collections themselves.
type CorpusService interface {
	// GenerateCorpora loads the reference collections, synthesizes the
	// sentence and matching-game corpora, and persists each with
	// replace-all semantics in its own transaction.
	GenerateCorpora(ctx context.Context) (*GenerationResult, error)

	// SeedReference atomically replaces the noun, verb, and conjugation
	// collections in a single transaction.
	SeedReference(
		ctx context.Context,
		nouns []domain.Noun,
		verbs []domain.Verb,
		table domain.ConjugationTable,
	) error

	// SentenceCount returns the number of persisted sentence records.
	SentenceCount(ctx context.Context) (int, error)
}

// corpusServiceImpl implements the CorpusService interface
type corpusServiceImpl struct {
	db            *sql.DB
	nounStore     store.NounStore
	verbStore     store.VerbStore
	conjStore     store.ConjugationStore
	sentenceStore store.SentenceStore
	matchingStore store.MatchingGameStore
	logger        *slog.Logger
}

// NewCorpusService creates a new CorpusService.
// It returns an error if any of the required dependencies are nil.
func NewCorpusService(
	db *sql.DB,
	nounStore store.NounStore,
	verbStore store.VerbStore,
	conjStore store.ConjugationStore,
	sentenceStore store.SentenceStore,
	matchingStore store.MatchingGameStore,
	log *slog.Logger,
) (CorpusService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if nounStore == nil {
		return nil, domain.NewValidationError("nounStore", "cannot be nil", domain.ErrValidation)
	}
	if verbStore == nil {
		return nil, domain.NewValidationError("verbStore", "cannot be nil", domain.ErrValidation)
	}
	if conjStore == nil {
		return nil, domain.NewValidationError("conjStore", "cannot be nil", domain.ErrValidation)
	}
	if sentenceStore == nil {
		return nil, domain.NewValidationError("sentenceStore", "cannot be nil", domain.ErrValidation)
	}
	if matchingStore == nil {
		return nil, domain.NewValidationError("matchingStore", "cannot be nil", domain.ErrValidation)
	}

	if log == nil {
		log = slog.Default()
	}

	return &corpusServiceImpl{
		db:            db,
		nounStore:     nounStore,
		verbStore:     verbStore,
		conjStore:     conjStore,
		sentenceStore: sentenceStore,
		matchingStore: matchingStore,
		logger:        log.With(slog.String("component", "corpus_service")),
	}, nil
}

// GenerateCorpora implements CorpusService.GenerateCorpora
func (s *corpusServiceImpl) GenerateCorpora(ctx context.Context) (*GenerationResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	nouns, err := s.nounStore.GetAll(ctx)
	if err != nil {
		return nil, NewCorpusServiceError("generate", "failed to load nouns", err)
	}
	verbs, err := s.verbStore.GetAll(ctx)
	if err != nil {
		return nil, NewCorpusServiceError("generate", "failed to load verbs", err)
	}
	table, err := s.conjStore.GetTable(ctx)
	if err != nil {
		return nil, NewCorpusServiceError("generate", "failed to load conjugations", err)
	}

	log.Info("synthesizing corpora",
		slog.Int("nouns", len(nouns)),
		slog.Int("verbs", len(verbs)),
		slog.Int("tenses", len(table)))

	records := grammar.SynthesizeSentences(verbs, nouns, table)
	entries := grammar.SynthesizeMatchingPairs(verbs, nouns, table)

	// Each corpus is replaced in its own transaction: a failed matching
	// rebuild must not roll back an already-complete sentence rebuild.
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.sentenceStore.WithTx(tx).ReplaceAll(ctx, records)
	})
	if err != nil {
		return nil, NewCorpusServiceError("generate", "failed to replace sentence corpus", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.matchingStore.WithTx(tx).ReplaceAll(ctx, entries)
	})
	if err != nil {
		return nil, NewCorpusServiceError("generate", "failed to replace matching corpus", err)
	}

	log.Info("corpora regenerated",
		slog.Int("sentences", len(records)),
		slog.Int("matching_entries", len(entries)))

	return &GenerationResult{
		SentenceCount: len(records),
		MatchingCount: len(entries),
	}, nil
}

// SeedReference implements CorpusService.SeedReference
func (s *corpusServiceImpl) SeedReference(
	ctx context.Context,
	nouns []domain.Noun,
	verbs []domain.Verb,
	table domain.ConjugationTable,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.nounStore.WithTx(tx).ReplaceAll(ctx, nouns); err != nil {
			return err
		}
		if err := s.verbStore.WithTx(tx).ReplaceAll(ctx, verbs); err != nil {
			return err
		}
		return s.conjStore.WithTx(tx).ReplaceAll(ctx, table)
	})
	if err != nil {
		return NewCorpusServiceError("seed", "failed to replace reference collections", err)
	}

	log.Info("reference data seeded",
		slog.Int("nouns", len(nouns)),
		slog.Int("verbs", len(verbs)),
		slog.Int("tenses", len(table)))
	return nil
}

// SentenceCount implements CorpusService.SentenceCount
func (s *corpusServiceImpl) SentenceCount(ctx context.Context) (int, error) {
	count, err := s.sentenceStore.Count(ctx)
	if err != nil {
		return 0, NewCorpusServiceError("count", "failed to count sentences", err)
	}
	return count, nil
}
