package auth

import "errors"

// Sentinel errors returned by token validation. Handlers and middleware match
// on these with errors.Is to pick the right HTTP response.
var (
	ErrInvalidToken     = errors.New("invalid authentication token")
	ErrExpiredToken     = errors.New("authentication token has expired")
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")
	ErrMissingToken     = errors.New("authentication token is missing")
)
