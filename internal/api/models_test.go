package api

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

var testValidator = validator.New()

func TestRegisterRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		request RegisterRequest
		valid   bool
	}{
		{
			name: "valid request",
			request: RegisterRequest{
				Email:    "learner@example.com",
				Password: "a-long-enough-password",
			},
			valid: true,
		},
		{
			name: "missing email",
			request: RegisterRequest{
				Password: "a-long-enough-password",
			},
			valid: false,
		},
		{
			name: "malformed email",
			request: RegisterRequest{
				Email:    "not-an-email",
				Password: "a-long-enough-password",
			},
			valid: false,
		},
		{
			name: "password too short",
			request: RegisterRequest{
				Email:    "learner@example.com",
				Password: "short",
			},
			valid: false,
		},
		{
			name: "password at minimum length",
			request: RegisterRequest{
				Email:    "learner@example.com",
				Password: "exactly12chs",
			},
			valid: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := testValidator.Struct(tc.request)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestLoginRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		request LoginRequest
		valid   bool
	}{
		{
			name:    "valid request",
			request: LoginRequest{Email: "learner@example.com", Password: "whatever"},
			valid:   true,
		},
		{
			name:    "empty password",
			request: LoginRequest{Email: "learner@example.com"},
			valid:   false,
		},
		{
			name:    "missing email",
			request: LoginRequest{Password: "whatever"},
			valid:   false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := testValidator.Struct(tc.request)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestScoreUpdateRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		request ScoreUpdateRequest
		valid   bool
	}{
		{
			name:    "valid sentence game score",
			request: ScoreUpdateRequest{Game: "sentence_game", Points: 5},
			valid:   true,
		},
		{
			name:    "valid matching game score",
			request: ScoreUpdateRequest{Game: "matching_game", Points: 0},
			valid:   true,
		},
		{
			name:    "unknown game",
			request: ScoreUpdateRequest{Game: "chess", Points: 5},
			valid:   false,
		},
		{
			name:    "missing game",
			request: ScoreUpdateRequest{Points: 5},
			valid:   false,
		},
		{
			name:    "negative points",
			request: ScoreUpdateRequest{Game: "verb_game", Points: -1},
			valid:   false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := testValidator.Struct(tc.request)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
