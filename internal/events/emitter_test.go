package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	events []*TaskRequestEvent
	err    error
}

func (h *recordingHandler) HandleEvent(ctx context.Context, event *TaskRequestEvent) error {
	h.events = append(h.events, event)
	return h.err
}

func testEmitter() *InMemoryEventEmitter {
	return NewInMemoryEventEmitter(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestInMemoryEventEmitter(t *testing.T) {
	t.Parallel()

	newEvent := func(t *testing.T) *TaskRequestEvent {
		t.Helper()
		event, err := NewTaskRequestEvent("corpus_generation", map[string]string{})
		require.NoError(t, err)
		return event
	}

	t.Run("delivers to every handler", func(t *testing.T) {
		t.Parallel()

		emitter := testEmitter()
		first := &recordingHandler{}
		second := &recordingHandler{}
		emitter.RegisterHandler(first)
		emitter.RegisterHandler(second)

		event := newEvent(t)
		require.NoError(t, emitter.EmitEvent(context.Background(), event))

		require.Len(t, first.events, 1)
		require.Len(t, second.events, 1)
		assert.Equal(t, event.ID, first.events[0].ID)
	})

	t.Run("no handlers is not an error", func(t *testing.T) {
		t.Parallel()

		emitter := testEmitter()
		assert.NoError(t, emitter.EmitEvent(context.Background(), newEvent(t)))
	})

	t.Run("a failing handler does not block the rest", func(t *testing.T) {
		t.Parallel()

		handlerErr := errors.New("handler exploded")
		emitter := testEmitter()
		failing := &recordingHandler{err: handlerErr}
		healthy := &recordingHandler{}
		emitter.RegisterHandler(failing)
		emitter.RegisterHandler(healthy)

		err := emitter.EmitEvent(context.Background(), newEvent(t))

		assert.ErrorIs(t, err, handlerErr, "first failure is surfaced")
		assert.Len(t, healthy.events, 1, "later handlers still run")
	})
}
