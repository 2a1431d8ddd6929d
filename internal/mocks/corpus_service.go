package mocks

import (
	"context"

	"github.com/phrazzld/sanskrit-quiz-api/internal/domain"
	"github.com/phrazzld/sanskrit-quiz-api/internal/service"
)

// MockCorpusService implements service.CorpusService for testing
type MockCorpusService struct {
	GenerateCorporaFn func(ctx context.Context) (*service.GenerationResult, error)
	SeedReferenceFn   func(ctx context.Context, nouns []domain.Noun, verbs []domain.Verb, table domain.ConjugationTable) error
	SentenceCountFn   func(ctx context.Context) (int, error)

	Result *service.GenerationResult
	Count  int
	Err    error
}

func (m *MockCorpusService) GenerateCorpora(ctx context.Context) (*service.GenerationResult, error) {
	if m.GenerateCorporaFn != nil {
		return m.GenerateCorporaFn(ctx)
	}
	return m.Result, m.Err
}

func (m *MockCorpusService) SeedReference(
	ctx context.Context,
	nouns []domain.Noun,
	verbs []domain.Verb,
	table domain.ConjugationTable,
) error {
	if m.SeedReferenceFn != nil {
		return m.SeedReferenceFn(ctx, nouns, verbs, table)
	}
	return m.Err
}

func (m *MockCorpusService) SentenceCount(ctx context.Context) (int, error) {
	if m.SentenceCountFn != nil {
		return m.SentenceCountFn(ctx)
	}
	return m.Count, m.Err
}
