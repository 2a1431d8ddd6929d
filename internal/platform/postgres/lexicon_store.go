package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/phrazzld/sanskrit-quiz-api/internal/domain"
	"github.com/phrazzld/sanskrit-quiz-api/internal/platform/logger"
	"github.com/phrazzld/sanskrit-quiz-api/internal/store"
)

// PostgresNounStore implements the store.NounStore interface
// using a PostgreSQL database as the storage backend. Noun records are
// stored as JSONB documents, one row per lexicon entry.
type PostgresNounStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresNounStore creates a new PostgreSQL implementation of the NounStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresNounStore(db store.DBTX, logger *slog.Logger) *PostgresNounStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresNounStore{
		db:     db,
		logger: logger.With(slog.String("component", "noun_store")),
	}
}

// Ensure PostgresNounStore implements store.NounStore interface
var _ store.NounStore = (*PostgresNounStore)(nil)

// WithTx implements store.NounStore.WithTx
func (s *PostgresNounStore) WithTx(tx *sql.Tx) store.NounStore {
	return &PostgresNounStore{
		db:     tx,
		logger: s.logger,
	}
}

// GetAll implements store.NounStore.GetAll
// It retrieves every noun document in lexicon (insertion) order.
func (s *PostgresNounStore) GetAll(ctx context.Context) ([]domain.Noun, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT doc
		FROM nouns
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query nouns", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var nouns []domain.Noun
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			log.Error("failed to scan noun row", slog.String("error", err.Error()))
			return nil, err
		}

		var noun domain.Noun
		if err := json.Unmarshal(doc, &noun); err != nil {
			log.Error("failed to unmarshal noun document",
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: malformed noun document: %v",
				domain.ErrInvalidSourceData, err)
		}
		nouns = append(nouns, noun)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning noun rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("retrieved nouns", slog.Int("count", len(nouns)))
	return nouns, nil
}

// ReplaceAll implements store.NounStore.ReplaceAll
// It deletes the existing lexicon and inserts the given nouns. Callers are
// expected to run this inside a transaction via store.RunInTransaction.
func (s *PostgresNounStore) ReplaceAll(ctx context.Context, nouns []domain.Noun) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	for i := range nouns {
		if err := nouns[i].Validate(); err != nil {
			log.Warn("noun validation failed during seed",
				slog.String("error", err.Error()),
				slog.String("root", nouns[i].Root))
			return err
		}
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM nouns`); err != nil {
		log.Error("failed to clear nouns", slog.String("error", err.Error()))
		return MapError(err)
	}

	query := `INSERT INTO nouns (doc) VALUES ($1)`
	for i := range nouns {
		doc, err := json.Marshal(nouns[i])
		if err != nil {
			return fmt.Errorf("failed to marshal noun %q: %w", nouns[i].Root, err)
		}
		if _, err := s.db.ExecContext(ctx, query, doc); err != nil {
			log.Error("failed to insert noun",
				slog.String("error", err.Error()),
				slog.String("root", nouns[i].Root))
			return MapError(err)
		}
	}

	log.Info("noun lexicon replaced", slog.Int("count", len(nouns)))
	return nil
}

// PostgresVerbStore implements the store.VerbStore interface
// using a PostgreSQL database as the storage backend.
type PostgresVerbStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresVerbStore creates a new PostgreSQL implementation of the VerbStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresVerbStore(db store.DBTX, logger *slog.Logger) *PostgresVerbStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresVerbStore{
		db:     db,
		logger: logger.With(slog.String("component", "verb_store")),
	}
}

// Ensure PostgresVerbStore implements store.VerbStore interface
var _ store.VerbStore = (*PostgresVerbStore)(nil)

// WithTx implements store.VerbStore.WithTx
func (s *PostgresVerbStore) WithTx(tx *sql.Tx) store.VerbStore {
	return &PostgresVerbStore{
		db:     tx,
		logger: s.logger,
	}
}

// GetAll implements store.VerbStore.GetAll
// It retrieves every verb document in lexicon (insertion) order.
func (s *PostgresVerbStore) GetAll(ctx context.Context) ([]domain.Verb, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT doc
		FROM verbs
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query verbs", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var verbs []domain.Verb
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			log.Error("failed to scan verb row", slog.String("error", err.Error()))
			return nil, err
		}

		var verb domain.Verb
		if err := json.Unmarshal(doc, &verb); err != nil {
			log.Error("failed to unmarshal verb document",
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: malformed verb document: %v",
				domain.ErrInvalidSourceData, err)
		}
		verbs = append(verbs, verb)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning verb rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("retrieved verbs", slog.Int("count", len(verbs)))
	return verbs, nil
}

// ReplaceAll implements store.VerbStore.ReplaceAll
func (s *PostgresVerbStore) ReplaceAll(ctx context.Context, verbs []domain.Verb) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	for i := range verbs {
		if err := verbs[i].Validate(); err != nil {
			log.Warn("verb validation failed during seed",
				slog.String("error", err.Error()),
				slog.String("root", verbs[i].Root))
			return err
		}
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM verbs`); err != nil {
		log.Error("failed to clear verbs", slog.String("error", err.Error()))
		return MapError(err)
	}

	query := `INSERT INTO verbs (doc) VALUES ($1)`
	for i := range verbs {
		doc, err := json.Marshal(verbs[i])
		if err != nil {
			return fmt.Errorf("failed to marshal verb %q: %w", verbs[i].Root, err)
		}
		if _, err := s.db.ExecContext(ctx, query, doc); err != nil {
			log.Error("failed to insert verb",
				slog.String("error", err.Error()),
				slog.String("root", verbs[i].Root))
			return MapError(err)
		}
	}

	log.Info("verb lexicon replaced", slog.Int("count", len(verbs)))
	return nil
}

// PostgresConjugationStore implements the store.ConjugationStore interface
// using a PostgreSQL database as the storage backend. Rules are stored one
// row per tense, with the class-to-suffixes document as JSONB.
type PostgresConjugationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresConjugationStore creates a new PostgreSQL implementation of the
// ConjugationStore interface. If logger is nil, a default logger will be used.
func NewPostgresConjugationStore(db store.DBTX, logger *slog.Logger) *PostgresConjugationStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresConjugationStore{
		db:     db,
		logger: logger.With(slog.String("component", "conjugation_store")),
	}
}

// Ensure PostgresConjugationStore implements store.ConjugationStore interface
var _ store.ConjugationStore = (*PostgresConjugationStore)(nil)

// WithTx implements store.ConjugationStore.WithTx
func (s *PostgresConjugationStore) WithTx(tx *sql.Tx) store.ConjugationStore {
	return &PostgresConjugationStore{
		db:     tx,
		logger: s.logger,
	}
}

// GetTable implements store.ConjugationStore.GetTable
// It merges all per-tense rule documents into a single table.
// Returns store.ErrConjugationsNotFound when no documents exist.
func (s *PostgresConjugationStore) GetTable(ctx context.Context) (domain.ConjugationTable, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT tense, rules
		FROM conjugations
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query conjugations", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	table := domain.ConjugationTable{}
	for rows.Next() {
		var tense string
		var doc []byte
		if err := rows.Scan(&tense, &doc); err != nil {
			log.Error("failed to scan conjugation row", slog.String("error", err.Error()))
			return nil, err
		}

		var byClass map[domain.VerbClass]domain.SuffixSet
		if err := json.Unmarshal(doc, &byClass); err != nil {
			log.Error("failed to unmarshal conjugation document",
				slog.String("error", err.Error()),
				slog.String("tense", tense))
			return nil, fmt.Errorf("%w: malformed conjugation document for tense %s: %v",
				domain.ErrInvalidSourceData, tense, err)
		}
		table[domain.Tense(tense)] = byClass
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning conjugation rows", slog.String("error", err.Error()))
		return nil, err
	}

	if len(table) == 0 {
		log.Warn("no conjugation documents found")
		return nil, store.ErrConjugationsNotFound
	}

	log.Debug("retrieved conjugation table", slog.Int("tenses", len(table)))
	return table, nil
}

// ReplaceAll implements store.ConjugationStore.ReplaceAll
func (s *PostgresConjugationStore) ReplaceAll(ctx context.Context, table domain.ConjugationTable) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.db.ExecContext(ctx, `DELETE FROM conjugations`); err != nil {
		log.Error("failed to clear conjugations", slog.String("error", err.Error()))
		return MapError(err)
	}

	query := `INSERT INTO conjugations (tense, rules) VALUES ($1, $2)`
	for tense, byClass := range table {
		doc, err := json.Marshal(byClass)
		if err != nil {
			return fmt.Errorf("failed to marshal conjugation rules for tense %s: %w", tense, err)
		}
		if _, err := s.db.ExecContext(ctx, query, string(tense), doc); err != nil {
			log.Error("failed to insert conjugation document",
				slog.String("error", err.Error()),
				slog.String("tense", string(tense)))
			return MapError(err)
		}
	}

	log.Info("conjugation rules replaced", slog.Int("tenses", len(table)))
	return nil
}
