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

// PostgresSentenceStore implements the store.SentenceStore interface
// using a PostgreSQL database as the storage backend. Constituent snapshots
// (subject, object, verb) are stored as JSONB documents; the surface text
// and tense are plain columns so they can be filtered without unpacking.
type PostgresSentenceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSentenceStore creates a new PostgreSQL implementation of the
// SentenceStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresSentenceStore(db store.DBTX, logger *slog.Logger) *PostgresSentenceStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSentenceStore{
		db:     db,
		logger: logger.With(slog.String("component", "sentence_store")),
	}
}

// Ensure PostgresSentenceStore implements store.SentenceStore interface
var _ store.SentenceStore = (*PostgresSentenceStore)(nil)

// WithTx implements store.SentenceStore.WithTx
// It returns a new store instance bound to the given transaction.
func (s *PostgresSentenceStore) WithTx(tx *sql.Tx) store.SentenceStore {
	return &PostgresSentenceStore{
		db:     tx,
		logger: s.logger,
	}
}

// GetAll implements store.SentenceStore.GetAll
// It retrieves sentence records matching the filter in insertion order.
func (s *PostgresSentenceStore) GetAll(
	ctx context.Context,
	filter store.SentenceFilter,
) ([]domain.SentenceRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT sentence, tense, subject, object, verb
		FROM sentences
	`
	var conditions []string
	var args []any

	if filter.Tense != "" {
		args = append(args, string(filter.Tense))
		conditions = append(conditions, fmt.Sprintf("tense = $%d", len(args)))
	}
	if filter.ObjectlessOnly {
		conditions = append(conditions, "object IS NULL")
	}
	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query sentences", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var records []domain.SentenceRecord
	for rows.Next() {
		var rec domain.SentenceRecord
		var tense string
		var subjectDoc, verbDoc []byte
		var objectDoc []byte

		if err := rows.Scan(&rec.Sentence, &tense, &subjectDoc, &objectDoc, &verbDoc); err != nil {
			log.Error("failed to scan sentence row", slog.String("error", err.Error()))
			return nil, err
		}

		rec.Tense = domain.Tense(tense)
		if err := json.Unmarshal(subjectDoc, &rec.Subject); err != nil {
			return nil, fmt.Errorf("%w: malformed subject document: %v",
				domain.ErrInvalidSourceData, err)
		}
		if len(objectDoc) > 0 {
			rec.Object = &domain.NounRef{}
			if err := json.Unmarshal(objectDoc, rec.Object); err != nil {
				return nil, fmt.Errorf("%w: malformed object document: %v",
					domain.ErrInvalidSourceData, err)
			}
		}
		if err := json.Unmarshal(verbDoc, &rec.Verb); err != nil {
			return nil, fmt.Errorf("%w: malformed verb document: %v",
				domain.ErrInvalidSourceData, err)
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning sentence rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("retrieved sentences",
		slog.Int("count", len(records)),
		slog.String("tense_filter", string(filter.Tense)),
		slog.Bool("objectless_only", filter.ObjectlessOnly))
	return records, nil
}

// Count implements store.SentenceStore.Count
func (s *PostgresSentenceStore) Count(ctx context.Context) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sentences`).Scan(&count)
	if err != nil {
		log.Error("failed to count sentences", slog.String("error", err.Error()))
		return 0, MapError(err)
	}
	return count, nil
}

// ReplaceAll implements store.SentenceStore.ReplaceAll
// It deletes the prior corpus and inserts the given records. The caller
// must run this inside a transaction (see store.RunInTransaction) so the
// corpus is never observed half-replaced.
func (s *PostgresSentenceStore) ReplaceAll(ctx context.Context, records []domain.SentenceRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.db.ExecContext(ctx, `DELETE FROM sentences`); err != nil {
		log.Error("failed to clear sentences", slog.String("error", err.Error()))
		return MapError(err)
	}

	query := `
		INSERT INTO sentences (sentence, tense, subject, object, verb)
		VALUES ($1, $2, $3, $4, $5)
	`
	for i := range records {
		rec := &records[i]

		subjectDoc, err := json.Marshal(rec.Subject)
		if err != nil {
			return fmt.Errorf("failed to marshal subject for %q: %w", rec.Sentence, err)
		}
		verbDoc, err := json.Marshal(rec.Verb)
		if err != nil {
			return fmt.Errorf("failed to marshal verb for %q: %w", rec.Sentence, err)
		}
		var objectDoc any
		if rec.Object != nil {
			doc, err := json.Marshal(rec.Object)
			if err != nil {
				return fmt.Errorf("failed to marshal object for %q: %w", rec.Sentence, err)
			}
			objectDoc = doc
		}

		_, err = s.db.ExecContext(ctx, query,
			rec.Sentence,
			string(rec.Tense),
			subjectDoc,
			objectDoc,
			verbDoc,
		)
		if err != nil {
			log.Error("failed to insert sentence",
				slog.String("error", err.Error()),
				slog.String("sentence", rec.Sentence))
			return MapError(err)
		}
	}

	log.Info("sentence corpus replaced", slog.Int("count", len(records)))
	return nil
}
