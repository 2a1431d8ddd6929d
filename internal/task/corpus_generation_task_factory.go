package task

import (
	"log/slog"

	"github.com/google/uuid"
)

// CorpusGenerationTaskFactory creates CorpusGenerationTask instances over a
// fixed corpus generator.
type CorpusGenerationTaskFactory struct {
	generator CorpusGenerator
	logger    *slog.Logger
}

// NewCorpusGenerationTaskFactory creates a new factory.
func NewCorpusGenerationTaskFactory(
	generator CorpusGenerator,
	logger *slog.Logger,
) *CorpusGenerationTaskFactory {
	return &CorpusGenerationTaskFactory{
		generator: generator,
		logger:    logger,
	}
}

// CreateTask builds a corpus generation task on behalf of the given user.
func (f *CorpusGenerationTaskFactory) CreateTask(requestedBy uuid.UUID) (Task, error) {
	return NewCorpusGenerationTask(requestedBy, f.generator, f.logger)
}
