package api

import (
	"github.com/google/uuid"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// Token is the JWT token used for API authorization
	Token string `json:"token"`
}

// ProfileResponse defines the response for the user profile endpoint.
type ProfileResponse struct {
	UserID uuid.UUID      `json:"user_id"`
	Email  string         `json:"email"`
	Scores map[string]int `json:"scores"`
}

// ScoreUpdateRequest defines the payload for the score increment endpoint.
type ScoreUpdateRequest struct {
	Game   string `json:"game"   validate:"required,oneof=sentence_game verb_game tense_game number_game matching_game"`
	Points int    `json:"points" validate:"gte=0"`
}

// GenerateResponse defines the response for the corpus regeneration
// endpoint. Generation runs asynchronously, so the response only
// acknowledges that the request was accepted.
type GenerateResponse struct {
	Status string `json:"status"`
}

// StatusResponse defines the response for the health/status endpoint.
type StatusResponse struct {
	Status        string `json:"status"`
	Database      string `json:"database"`
	SentenceCount int    `json:"sentence_count"`
}
