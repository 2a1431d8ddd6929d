package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/sanskrit-quiz-api/internal/domain"
	"github.com/phrazzld/sanskrit-quiz-api/internal/platform/logger"
	"github.com/phrazzld/sanskrit-quiz-api/internal/service/auth"
	"github.com/phrazzld/sanskrit-quiz-api/internal/store"
)

// UserService provides registration, login, and score tracking.
type UserService interface {
	// Register creates a new user with the given email and password.
	// Returns ErrEmailTaken if the email is already registered and
	// domain validation errors for malformed input.
	Register(ctx context.Context, email, password string) (*domain.User, error)

	// Login verifies the credentials and returns the user on success.
	// Returns ErrInvalidCredentials for unknown email or wrong password.
	Login(ctx context.Context, email, password string) (*domain.User, error)

	// GetProfile retrieves a user by their ID.
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// AddScore increments the user's score for the given game and persists
	// the result, returning the updated user.
	AddScore(ctx context.Context, userID uuid.UUID, game string, points int) (*domain.User, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userStore store.UserStore
	verifier  auth.PasswordVerifier
	logger    *slog.Logger
}

// NewUserService creates a new UserService.
// It returns an error if any of the required dependencies are nil.
func NewUserService(
	userStore store.UserStore,
	verifier auth.PasswordVerifier,
	log *slog.Logger,
) (UserService, error) {
	if userStore == nil {
		return nil, domain.NewValidationError("userStore", "cannot be nil", domain.ErrValidation)
	}
	if verifier == nil {
		return nil, domain.NewValidationError("verifier", "cannot be nil", domain.ErrValidation)
	}

	if log == nil {
		log = slog.Default()
	}

	return &userServiceImpl{
		userStore: userStore,
		verifier:  verifier,
		logger:    log.With(slog.String("component", "user_service")),
	}, nil
}

// Register implements UserService.Register
func (s *userServiceImpl) Register(ctx context.Context, email, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(email, password)
	if err != nil {
		log.Warn("user validation failed during registration",
			slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("registration rejected: email taken")
			return nil, ErrEmailTaken
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("user registered",
		slog.String("user_id", user.ID.String()))
	return user, nil
}

// Login implements UserService.Login
// Unknown emails and wrong passwords are deliberately indistinguishable in
// the returned error.
func (s *userServiceImpl) Login(ctx context.Context, email, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login failed: unknown email")
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to look up user for login",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login failed: password mismatch",
			slog.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	log.Info("user logged in",
		slog.String("user_id", user.ID.String()))
	return user, nil
}

// GetProfile implements UserService.GetProfile
func (s *userServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("profile lookup failed: user not found",
				slog.String("user_id", userID.String()))
			return nil, err
		}
		log.Error("failed to retrieve user profile",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	return user, nil
}

// AddScore implements UserService.AddScore
func (s *userServiceImpl) AddScore(
	ctx context.Context,
	userID uuid.UUID,
	game string,
	points int,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		log.Error("failed to retrieve user for score update",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}

	if err := user.AddScore(game, points); err != nil {
		log.Warn("score update rejected",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("game", game))
		return nil, err
	}

	if err := s.userStore.UpdateScores(ctx, user); err != nil {
		log.Error("failed to persist score update",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}

	log.Info("score updated",
		slog.String("user_id", userID.String()),
		slog.String("game", game),
		slog.Int("points", points))
	return user, nil
}
