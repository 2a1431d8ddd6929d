package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 12 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrUnknownGame         = errors.New("unknown game")
	ErrNegativeScoreDelta  = errors.New("score increment cannot be negative")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// Game names accepted for score tracking, matching the served quiz games.
var scoreGames = map[string]bool{
	"sentence_game": true,
	"verb_game":     true,
	"tense_game":    true,
	"number_game":   true,
	"matching_game": true,
}

// User represents a registered learner. Scores accumulate per game, keyed
// by game name.
type User struct {
	ID             uuid.UUID      `json:"id"`
	Email          string         `json:"email"`
	Password       string         `json:"-"` // plaintext, only set during registration; never persisted
	HashedPassword string         `json:"-"`
	Scores         map[string]int `json:"scores"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// NewUser creates a new User with the given email and password. It
// generates a new UUID and initializes an empty score map.
//
// NOTE: the caller is responsible for hashing the password before storing
// the user.
func NewUser(email, password string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Email:     email,
		Password:  password,
		Scores:    map[string]int{},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		if len(u.Password) < 12 {
			return ErrPasswordTooShort
		}
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		// Existing users loaded from the store carry only the hash.
		return ErrEmptyPassword
	}

	return nil
}

// AddScore increments the user's score for the given game and bumps the
// update timestamp. Unknown games and negative increments are rejected.
func (u *User) AddScore(game string, points int) error {
	if !scoreGames[game] {
		return ErrUnknownGame
	}
	if points < 0 {
		return ErrNegativeScoreDelta
	}
	if u.Scores == nil {
		u.Scores = map[string]int{}
	}
	u.Scores[game] += points
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// validateEmailFormat performs basic validation of email format: a single
// non-leading, non-trailing @ with a dotted domain part. Intentionally
// simple; the API layer applies validator/v10's email rule as well.
func validateEmailFormat(email string) bool {
	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	domainPart := email[atIndex+1:]
	if len(domainPart) < 3 {
		return false
	}

	dotIndex := strings.IndexByte(domainPart, '.')
	return dotIndex > 0 && dotIndex < len(domainPart)-1
}
