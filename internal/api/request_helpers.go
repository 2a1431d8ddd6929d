package api

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/phrazzld/sanskrit-quiz-api/internal/api/shared"
	"github.com/phrazzld/sanskrit-quiz-api/internal/service"
)

// getUserIDFromContext extracts the authenticated user's UUID from the request
// context. The user ID is placed in the context by the authentication
// middleware.
//
// Returns:
//   - (uuid.UUID, true): The user's UUID if successfully extracted
//   - (uuid.UUID{}, false): A zero UUID and false if user ID not found or invalid
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// getQuestionCount parses the optional "count" query parameter. A missing
// parameter yields the default of one question; a malformed or out-of-range
// value maps to ErrInvalidQuestionCount so the handler reports it uniformly
// with the service-level range check.
func getQuestionCount(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("count")
	if raw == "" {
		return 1, nil
	}

	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, service.ErrInvalidQuestionCount
	}
	return count, nil
}
