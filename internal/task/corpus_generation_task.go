package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/sanskrit-quiz-api/internal/service"
)

// Common errors
var (
	ErrNilCorpusService = errors.New("corpus service cannot be nil")
	ErrNilLogger        = errors.New("logger cannot be nil")
	ErrEmptyRequestedBy = errors.New("requesting user ID cannot be empty")
)

// CorpusGenerator defines the slice of the corpus service this task needs.
type CorpusGenerator interface {
	// GenerateCorpora rebuilds the sentence and matching-game corpora from
	// the reference data.
	GenerateCorpora(ctx context.Context) (*service.GenerationResult, error)
}

// corpusGenerationPayload represents the serialized data stored in the task
type corpusGenerationPayload struct {
	RequestedBy uuid.UUID `json:"requested_by"`
}

// CorpusGenerationTask implements the Task interface for regenerating the
// quiz corpora in the background. Regeneration can take a while on a full
// lexicon, so it never runs on the request path.
type CorpusGenerationTask struct {
	id          uuid.UUID
	requestedBy uuid.UUID
	generator   CorpusGenerator
	logger      *slog.Logger
	status      TaskStatus
}

// NewCorpusGenerationTask creates a new corpus generation task on behalf of
// the given user.
func NewCorpusGenerationTask(
	requestedBy uuid.UUID,
	generator CorpusGenerator,
	logger *slog.Logger,
) (*CorpusGenerationTask, error) {
	if generator == nil {
		return nil, ErrNilCorpusService
	}
	if logger == nil {
		return nil, ErrNilLogger
	}
	if requestedBy == uuid.Nil {
		return nil, ErrEmptyRequestedBy
	}

	return &CorpusGenerationTask{
		id:          uuid.New(),
		requestedBy: requestedBy,
		generator:   generator,
		logger:      logger.With("task_type", TaskTypeCorpusGeneration, "requested_by", requestedBy),
		status:      TaskStatusPending,
	}, nil
}

// ID returns the task's unique identifier
func (t *CorpusGenerationTask) ID() uuid.UUID {
	return t.id
}

// Type returns the task type identifier
func (t *CorpusGenerationTask) Type() string {
	return TaskTypeCorpusGeneration
}

// Payload returns the serialized task data
func (t *CorpusGenerationTask) Payload() []byte {
	payload := corpusGenerationPayload{RequestedBy: t.requestedBy}
	data, err := json.Marshal(payload)
	if err != nil {
		t.logger.Error("failed to marshal task payload", "error", err)
		return []byte("{}")
	}
	return data
}

// Status returns the current task status
func (t *CorpusGenerationTask) Status() TaskStatus {
	return t.status
}

// Execute runs the corpus regeneration.
func (t *CorpusGenerationTask) Execute(ctx context.Context) error {
	t.status = TaskStatusProcessing
	t.logger.Info("starting corpus regeneration", "task_id", t.id)

	result, err := t.generator.GenerateCorpora(ctx)
	if err != nil {
		t.status = TaskStatusFailed
		return fmt.Errorf("corpus regeneration failed: %w", err)
	}

	t.status = TaskStatusCompleted
	t.logger.Info("corpus regeneration finished",
		"task_id", t.id,
		"sentence_count", result.SentenceCount,
		"matching_count", result.MatchingCount)
	return nil
}
