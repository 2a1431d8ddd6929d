package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrors(t *testing.T) {
	t.Run("ErrNoQuestionsAvailable", func(t *testing.T) {
		assert.Equal(t, "no questions available", ErrNoQuestionsAvailable.Error())
		assert.True(t, errors.Is(ErrNoQuestionsAvailable, ErrNoQuestionsAvailable))
	})

	t.Run("ErrInvalidQuestionCount", func(t *testing.T) {
		assert.Equal(t, "invalid question count (1-50 allowed)", ErrInvalidQuestionCount.Error())
	})

	t.Run("sentinel errors are different", func(t *testing.T) {
		assert.False(t, errors.Is(ErrNoQuestionsAvailable, ErrQuestionNotServable))
		assert.False(t, errors.Is(ErrEmailTaken, ErrInvalidCredentials))
	})
}

func TestQuizServiceError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		message  string
		err      error
		expected string
	}{
		{
			name:     "with underlying error",
			op:       "load_sentences",
			message:  "failed to load sentence corpus",
			err:      errors.New("connection refused"),
			expected: "quiz service load_sentences failed: failed to load sentence corpus: connection refused",
		},
		{
			name:     "without underlying error",
			op:       "load_matching",
			message:  "failed to load matching entries",
			err:      nil,
			expected: "quiz service load_matching failed: failed to load matching entries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcErr := NewQuizServiceError(tt.op, tt.message, tt.err)
			assert.Equal(t, tt.expected, svcErr.Error())
			if tt.err != nil {
				assert.ErrorIs(t, svcErr, tt.err)
			}
		})
	}
}

func TestCorpusServiceError(t *testing.T) {
	underlying := errors.New("deadlock detected")
	svcErr := NewCorpusServiceError("generate", "failed to rebuild sentence corpus", underlying)

	assert.Equal(t,
		"corpus service generate failed: failed to rebuild sentence corpus: deadlock detected",
		svcErr.Error())
	assert.ErrorIs(t, svcErr, underlying)
	assert.Equal(t, underlying, errors.Unwrap(svcErr))
}
