package task

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/sanskrit-quiz-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCorpusGenerator struct {
	result *service.GenerationResult
	err    error
	calls  int
}

func (s *stubCorpusGenerator) GenerateCorpora(ctx context.Context) (*service.GenerationResult, error) {
	s.calls++
	return s.result, s.err
}

func TestNewCorpusGenerationTask(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	gen := &stubCorpusGenerator{}

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		task, err := NewCorpusGenerationTask(userID, gen, discardLogger())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, task.ID())
		assert.Equal(t, TaskTypeCorpusGeneration, task.Type())
		assert.Equal(t, TaskStatusPending, task.Status())
	})

	t.Run("nil generator", func(t *testing.T) {
		t.Parallel()
		_, err := NewCorpusGenerationTask(userID, nil, discardLogger())
		assert.ErrorIs(t, err, ErrNilCorpusService)
	})

	t.Run("nil logger", func(t *testing.T) {
		t.Parallel()
		_, err := NewCorpusGenerationTask(userID, gen, nil)
		assert.ErrorIs(t, err, ErrNilLogger)
	})

	t.Run("empty requesting user", func(t *testing.T) {
		t.Parallel()
		_, err := NewCorpusGenerationTask(uuid.Nil, gen, discardLogger())
		assert.ErrorIs(t, err, ErrEmptyRequestedBy)
	})
}

func TestCorpusGenerationTask_Payload(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	task, err := NewCorpusGenerationTask(userID, &stubCorpusGenerator{}, discardLogger())
	require.NoError(t, err)

	var payload corpusGenerationPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, userID, payload.RequestedBy)
}

func TestCorpusGenerationTask_Execute(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		gen := &stubCorpusGenerator{
			result: &service.GenerationResult{SentenceCount: 120, MatchingCount: 36},
		}
		task, err := NewCorpusGenerationTask(userID, gen, discardLogger())
		require.NoError(t, err)

		require.NoError(t, task.Execute(context.Background()))
		assert.Equal(t, TaskStatusCompleted, task.Status())
		assert.Equal(t, 1, gen.calls)
	})

	t.Run("generation failure", func(t *testing.T) {
		t.Parallel()
		genErr := errors.New("reference data missing")
		gen := &stubCorpusGenerator{err: genErr}
		task, err := NewCorpusGenerationTask(userID, gen, discardLogger())
		require.NoError(t, err)

		err = task.Execute(context.Background())
		assert.ErrorIs(t, err, genErr)
		assert.Equal(t, TaskStatusFailed, task.Status())
	})
}
