package service

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/sanskrit-quiz-api/internal/domain"
	"github.com/phrazzld/sanskrit-quiz-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockSentenceStore mocks the store.SentenceStore interface
type MockSentenceStore struct {
	mock.Mock
}

func (m *MockSentenceStore) GetAll(
	ctx context.Context,
	filter store.SentenceFilter,
) ([]domain.SentenceRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SentenceRecord), args.Error(1)
}

func (m *MockSentenceStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockSentenceStore) ReplaceAll(
	ctx context.Context,
	records []domain.SentenceRecord,
) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockSentenceStore) WithTx(tx *sql.Tx) store.SentenceStore {
	m.Called(tx)
	return m
}

// MockMatchingGameStore mocks the store.MatchingGameStore interface
type MockMatchingGameStore struct {
	mock.Mock
}

func (m *MockMatchingGameStore) GetAll(ctx context.Context) ([]domain.MatchingGameEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MatchingGameEntry), args.Error(1)
}

func (m *MockMatchingGameStore) ReplaceAll(
	ctx context.Context,
	entries []domain.MatchingGameEntry,
) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockMatchingGameStore) WithTx(tx *sql.Tx) store.MatchingGameStore {
	m.Called(tx)
	return m
}

// MockConjugationStore mocks the store.ConjugationStore interface
type MockConjugationStore struct {
	mock.Mock
}

func (m *MockConjugationStore) GetTable(ctx context.Context) (domain.ConjugationTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.ConjugationTable), args.Error(1)
}

func (m *MockConjugationStore) ReplaceAll(
	ctx context.Context,
	table domain.ConjugationTable,
) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *MockConjugationStore) WithTx(tx *sql.Tx) store.ConjugationStore {
	m.Called(tx)
	return m
}

// MockVerbStore mocks the store.VerbStore interface
type MockVerbStore struct {
	mock.Mock
}

func (m *MockVerbStore) GetAll(ctx context.Context) ([]domain.Verb, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Verb), args.Error(1)
}

func (m *MockVerbStore) ReplaceAll(ctx context.Context, verbs []domain.Verb) error {
	args := m.Called(ctx, verbs)
	return args.Error(0)
}

func (m *MockVerbStore) WithTx(tx *sql.Tx) store.VerbStore {
	m.Called(tx)
	return m
}

// MockNounStore mocks the store.NounStore interface
type MockNounStore struct {
	mock.Mock
}

func (m *MockNounStore) GetAll(ctx context.Context) ([]domain.Noun, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Noun), args.Error(1)
}

func (m *MockNounStore) ReplaceAll(ctx context.Context, nouns []domain.Noun) error {
	args := m.Called(ctx, nouns)
	return args.Error(0)
}

func (m *MockNounStore) WithTx(tx *sql.Tx) store.NounStore {
	m.Called(tx)
	return m
}

// MockUserStore mocks the store.UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) UpdateScores(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	m.Called(tx)
	return m
}

// MockPasswordVerifier mocks the auth.PasswordVerifier interface
type MockPasswordVerifier struct {
	mock.Mock
}

func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	args := m.Called(hashedPassword, password)
	return args.Error(0)
}
