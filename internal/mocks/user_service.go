package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/sanskrit-quiz-api/internal/domain"
)

// MockUserService implements service.UserService for testing
type MockUserService struct {
	RegisterFn   func(ctx context.Context, email, password string) (*domain.User, error)
	LoginFn      func(ctx context.Context, email, password string) (*domain.User, error)
	GetProfileFn func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	AddScoreFn   func(ctx context.Context, userID uuid.UUID, game string, points int) (*domain.User, error)

	User *domain.User
	Err  error
}

func (m *MockUserService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, email, password)
	}
	return m.User, m.Err
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}
	return m.User, m.Err
}

func (m *MockUserService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.GetProfileFn != nil {
		return m.GetProfileFn(ctx, userID)
	}
	return m.User, m.Err
}

func (m *MockUserService) AddScore(
	ctx context.Context,
	userID uuid.UUID,
	game string,
	points int,
) (*domain.User, error) {
	if m.AddScoreFn != nil {
		return m.AddScoreFn(ctx, userID, game, points)
	}
	return m.User, m.Err
}
