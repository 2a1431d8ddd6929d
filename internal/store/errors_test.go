package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "wrapped generic error",
			err:      fmt.Errorf("failed to do something: %w", errors.New("some error")),
			expected: false,
		},
		{
			name:     "ErrNotFound",
			err:      ErrNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrNotFound",
			err:      fmt.Errorf("failed to do something: %w", ErrNotFound),
			expected: true,
		},
		{
			name:     "ErrUserNotFound",
			err:      ErrUserNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrUserNotFound",
			err:      fmt.Errorf("failed to find user: %w", ErrUserNotFound),
			expected: true,
		},
		{
			name:     "ErrSentenceNotFound",
			err:      ErrSentenceNotFound,
			expected: true,
		},
		{
			name:     "ErrConjugationsNotFound",
			err:      ErrConjugationsNotFound,
			expected: true,
		},
		{
			name:     "ErrDuplicate is not a not-found error",
			err:      ErrDuplicate,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFoundError(tt.err); got != tt.expected {
				t.Errorf("IsNotFoundError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestEntitySpecificErrorsWrapBase(t *testing.T) {
	if !errors.Is(ErrEmailExists, ErrDuplicate) {
		t.Errorf("ErrEmailExists should wrap ErrDuplicate")
	}
	if !errors.Is(ErrUserNotFound, ErrNotFound) {
		t.Errorf("ErrUserNotFound should wrap ErrNotFound")
	}
	if !errors.Is(ErrSentenceNotFound, ErrNotFound) {
		t.Errorf("ErrSentenceNotFound should wrap ErrNotFound")
	}
}
