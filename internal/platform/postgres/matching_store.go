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

// PostgresMatchingGameStore implements the store.MatchingGameStore interface
// using a PostgreSQL database as the storage backend. Form triples are
// stored as JSONB documents alongside the grouping keys.
type PostgresMatchingGameStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresMatchingGameStore creates a new PostgreSQL implementation of
// the MatchingGameStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresMatchingGameStore(db store.DBTX, logger *slog.Logger) *PostgresMatchingGameStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresMatchingGameStore{
		db:     db,
		logger: logger.With(slog.String("component", "matching_game_store")),
	}
}

// Ensure PostgresMatchingGameStore implements store.MatchingGameStore interface
var _ store.MatchingGameStore = (*PostgresMatchingGameStore)(nil)

// WithTx implements store.MatchingGameStore.WithTx
func (s *PostgresMatchingGameStore) WithTx(tx *sql.Tx) store.MatchingGameStore {
	return &PostgresMatchingGameStore{
		db:     tx,
		logger: s.logger,
	}
}

// GetAll implements store.MatchingGameStore.GetAll
// It retrieves every matching entry in insertion order.
func (s *PostgresMatchingGameStore) GetAll(ctx context.Context) ([]domain.MatchingGameEntry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT subject_root, verb_root, tense, subject_forms, verb_forms, meaning
		FROM matching_game
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query matching entries", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var entries []domain.MatchingGameEntry
	for rows.Next() {
		var entry domain.MatchingGameEntry
		var tense string
		var subjectForms, verbForms []byte

		err := rows.Scan(
			&entry.SubjectRoot,
			&entry.VerbRoot,
			&tense,
			&subjectForms,
			&verbForms,
			&entry.Meaning,
		)
		if err != nil {
			log.Error("failed to scan matching entry row", slog.String("error", err.Error()))
			return nil, err
		}

		entry.Tense = domain.Tense(tense)
		if err := json.Unmarshal(subjectForms, &entry.SubjectForms); err != nil {
			return nil, fmt.Errorf("%w: malformed subject forms document: %v",
				domain.ErrInvalidSourceData, err)
		}
		if err := json.Unmarshal(verbForms, &entry.VerbForms); err != nil {
			return nil, fmt.Errorf("%w: malformed verb forms document: %v",
				domain.ErrInvalidSourceData, err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning matching entry rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("retrieved matching entries", slog.Int("count", len(entries)))
	return entries, nil
}

// ReplaceAll implements store.MatchingGameStore.ReplaceAll
// The caller must run this inside a transaction; see SentenceStore.ReplaceAll.
func (s *PostgresMatchingGameStore) ReplaceAll(ctx context.Context, entries []domain.MatchingGameEntry) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.db.ExecContext(ctx, `DELETE FROM matching_game`); err != nil {
		log.Error("failed to clear matching entries", slog.String("error", err.Error()))
		return MapError(err)
	}

	query := `
		INSERT INTO matching_game (subject_root, verb_root, tense, subject_forms, verb_forms, meaning)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for i := range entries {
		entry := &entries[i]

		// Incomplete paradigms are a synthesizer bug; refuse to persist them.
		if !entry.Complete() {
			return fmt.Errorf("%w: incomplete matching entry %s/%s/%s",
				store.ErrInvalidEntity, entry.SubjectRoot, entry.VerbRoot, entry.Tense)
		}

		subjectForms, err := json.Marshal(entry.SubjectForms)
		if err != nil {
			return fmt.Errorf("failed to marshal subject forms for %q: %w", entry.SubjectRoot, err)
		}
		verbForms, err := json.Marshal(entry.VerbForms)
		if err != nil {
			return fmt.Errorf("failed to marshal verb forms for %q: %w", entry.VerbRoot, err)
		}

		_, err = s.db.ExecContext(ctx, query,
			entry.SubjectRoot,
			entry.VerbRoot,
			string(entry.Tense),
			subjectForms,
			verbForms,
			entry.Meaning,
		)
		if err != nil {
			log.Error("failed to insert matching entry",
				slog.String("error", err.Error()),
				slog.String("subject_root", entry.SubjectRoot),
				slog.String("verb_root", entry.VerbRoot))
			return MapError(err)
		}
	}

	log.Info("matching game entries replaced", slog.Int("count", len(entries)))
	return nil
}
