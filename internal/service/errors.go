package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in service-specific error types
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrNoQuestionsAvailable indicates that the corpus holds no records a
	// game could be built from. API layer should map this to HTTP 404.
	ErrNoQuestionsAvailable = errors.New("no questions available")

	// ErrQuestionNotServable indicates that the selected record could not be
	// turned into a servable question (malformed data or too few answer
	// options). API layer should map this to HTTP 404.
	ErrQuestionNotServable = errors.New("question is not servable")

	// ErrInvalidQuestionCount indicates a batch question request with a
	// count outside the allowed 1-50 range. API layer should map this to
	// HTTP 400.
	ErrInvalidQuestionCount = errors.New("invalid question count (1-50 allowed)")

	// ErrEmailTaken indicates a registration attempt with an email that is
	// already in use. API layer should map this to HTTP 409 Conflict.
	ErrEmailTaken = errors.New("email is already registered")

	// ErrInvalidCredentials indicates a failed login attempt. The API layer
	// maps this to HTTP 401 without distinguishing unknown email from wrong
	// password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
