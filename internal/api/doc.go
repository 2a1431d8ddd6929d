// Package api contains the HTTP handlers for the quiz games, user accounts,
// and corpus regeneration, plus the error-to-status mapping they share.
// Handlers decode and validate requests, call into the service layer, and
// write JSON responses; routing itself lives in cmd/server.
package api
