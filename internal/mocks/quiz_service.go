package mocks

import (
	"context"

	"github.com/phrazzld/sanskrit-quiz-api/internal/domain"
	"github.com/phrazzld/sanskrit-quiz-api/internal/service"
)

// MockQuizService implements service.QuizService for testing
type MockQuizService struct {
	// Per-method function hooks; when nil, the corresponding default
	// value pair below is returned.
	SentenceGameFn   func(ctx context.Context) (*service.SentenceGameQuestion, error)
	VerbGameFn       func(ctx context.Context) (*service.VerbGameQuestion, error)
	TenseQuestionFn  func(ctx context.Context) (*service.TenseQuestion, error)
	TenseQuestionsFn func(ctx context.Context, count int) ([]service.TenseQuestion, error)
	NumberGameFn     func(ctx context.Context) (*domain.SentenceRecord, error)
	MatchingGameFn   func(ctx context.Context) ([]domain.MatchingGameEntry, error)
	AllSentencesFn   func(ctx context.Context) ([]domain.SentenceRecord, error)

	SentenceQuestion *service.SentenceGameQuestion
	VerbQuestion     *service.VerbGameQuestion
	TenseQ           *service.TenseQuestion
	TenseQs          []service.TenseQuestion
	NumberRecord     *domain.SentenceRecord
	MatchingEntries  []domain.MatchingGameEntry
	Sentences        []domain.SentenceRecord
	Err              error
}

func (m *MockQuizService) SentenceGame(ctx context.Context) (*service.SentenceGameQuestion, error) {
	if m.SentenceGameFn != nil {
		return m.SentenceGameFn(ctx)
	}
	return m.SentenceQuestion, m.Err
}

func (m *MockQuizService) VerbGame(ctx context.Context) (*service.VerbGameQuestion, error) {
	if m.VerbGameFn != nil {
		return m.VerbGameFn(ctx)
	}
	return m.VerbQuestion, m.Err
}

func (m *MockQuizService) TenseQuestion(ctx context.Context) (*service.TenseQuestion, error) {
	if m.TenseQuestionFn != nil {
		return m.TenseQuestionFn(ctx)
	}
	return m.TenseQ, m.Err
}

func (m *MockQuizService) TenseQuestions(
	ctx context.Context,
	count int,
) ([]service.TenseQuestion, error) {
	if m.TenseQuestionsFn != nil {
		return m.TenseQuestionsFn(ctx, count)
	}
	return m.TenseQs, m.Err
}

func (m *MockQuizService) NumberGame(ctx context.Context) (*domain.SentenceRecord, error) {
	if m.NumberGameFn != nil {
		return m.NumberGameFn(ctx)
	}
	return m.NumberRecord, m.Err
}

func (m *MockQuizService) MatchingGame(ctx context.Context) ([]domain.MatchingGameEntry, error) {
	if m.MatchingGameFn != nil {
		return m.MatchingGameFn(ctx)
	}
	return m.MatchingEntries, m.Err
}

func (m *MockQuizService) AllSentences(ctx context.Context) ([]domain.SentenceRecord, error) {
	if m.AllSentencesFn != nil {
		return m.AllSentencesFn(ctx)
	}
	return m.Sentences, m.Err
}
