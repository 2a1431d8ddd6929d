package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/phrazzld/sanskrit-quiz-api/internal/domain"
	"github.com/phrazzld/sanskrit-quiz-api/internal/domain/grammar"
	"github.com/phrazzld/sanskrit-quiz-api/internal/platform/logger"
	"github.com/phrazzld/sanskrit-quiz-api/internal/store"
)

// verbBlank replaces the verb form in a fill-in-the-blank question.
const verbBlank = "_____"

var devanagariForm = regexp.MustCompile(`^[\x{0900}-\x{097F}]+$`)

// QuizServiceError is a custom error type for quiz service errors.
type QuizServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for QuizServiceError.
func (e *QuizServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("quiz service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("quiz service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *QuizServiceError) Unwrap() error {
	return e.Err
}

// NewQuizServiceError creates a new QuizServiceError.
func NewQuizServiceError(operation, message string, err error) *QuizServiceError {
	return &QuizServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// SentenceHint bundles the structured constituents served alongside a
// sentence-game question.
type SentenceHint struct {
	Subject domain.NounRef  `json:"subject"`
	Object  *domain.NounRef `json:"object"`
	Verb    domain.VerbRef  `json:"verb"`
}

// SentenceGameQuestion is one sentence-game round: the full sentence with
// its structured breakdown and a hint block.
type SentenceGameQuestion struct {
	Sentence string          `json:"sentence"`
	Subject  domain.NounRef  `json:"subject"`
	Object   *domain.NounRef `json:"object"`
	Verb     domain.VerbRef  `json:"verb"`
	Tense    domain.Tense    `json:"tense"`
	Hint     SentenceHint    `json:"hint"`
}

// VerbGameQuestion is one verb-game round: the sentence with the verb
// blanked out, the correct form, shuffled answer options, a hint and an
// explanation.
type VerbGameQuestion struct {
	Sentence    string   `json:"sentence"`
	Correct     string   `json:"correct"`
	Options     []string `json:"options"`
	Hint        string   `json:"hint"`
	Explanation string   `json:"explanation"`
}

// TenseQuestion is one tense-game round: a sentence, its tense, and the
// structured constituents with an explanation.
type TenseQuestion struct {
	Sentence    string          `json:"sentence"`
	Tense       domain.Tense    `json:"tense"`
	Explanation string          `json:"explanation"`
	Verb        domain.VerbRef  `json:"verb"`
	Subject     domain.NounRef  `json:"subject"`
	Object      *domain.NounRef `json:"object"`
}

// QuizService assembles quiz questions from the generated corpora.
type QuizService interface {
	// SentenceGame returns a random sentence record with its hint block.
	SentenceGame(ctx context.Context) (*SentenceGameQuestion, error)

	// VerbGame returns a random fill-in-the-blank verb question with at
	// least three shuffled options. Returns ErrQuestionNotServable when the
	// selected record cannot reach three options.
	VerbGame(ctx context.Context) (*VerbGameQuestion, error)

	// TenseQuestion returns a single random tense-identification question.
	TenseQuestion(ctx context.Context) (*TenseQuestion, error)

	// TenseQuestions returns count distinct random questions (1-50). Fewer
	// are returned when the corpus is smaller than count.
	TenseQuestions(ctx context.Context, count int) ([]TenseQuestion, error)

	// NumberGame returns a random object-less sentence record.
	NumberGame(ctx context.Context) (*domain.SentenceRecord, error)

	// MatchingGame returns every complete matching-game entry.
	MatchingGame(ctx context.Context) ([]domain.MatchingGameEntry, error)

	// AllSentences returns the full sentence corpus.
	AllSentences(ctx context.Context) ([]domain.SentenceRecord, error)
}

// quizServiceImpl implements the QuizService interface
type quizServiceImpl struct {
	sentenceStore  store.SentenceStore
	matchingStore  store.MatchingGameStore
	conjStore      store.ConjugationStore
	verbStore      store.VerbStore
	maxDistractors int
	logger         *slog.Logger

	// rng is shared across requests; distractor generation and option
	// shuffles must hold mu while using it.
	mu  sync.Mutex
	rng *rand.Rand

	// distractors is built lazily from the immutable reference data.
	distractorsOnce sync.Once
	distractors     *grammar.DistractorGenerator
	distractorsErr  error
}

// NewQuizService creates a new QuizService over the given stores.
// A maxDistractors of zero selects the generator default.
// It returns an error if any of the required dependencies are nil.
func NewQuizService(
	sentenceStore store.SentenceStore,
	matchingStore store.MatchingGameStore,
	conjStore store.ConjugationStore,
	verbStore store.VerbStore,
	maxDistractors int,
	log *slog.Logger,
) (QuizService, error) {
	if sentenceStore == nil {
		return nil, domain.NewValidationError("sentenceStore", "cannot be nil", domain.ErrValidation)
	}
	if matchingStore == nil {
		return nil, domain.NewValidationError("matchingStore", "cannot be nil", domain.ErrValidation)
	}
	if conjStore == nil {
		return nil, domain.NewValidationError("conjStore", "cannot be nil", domain.ErrValidation)
	}
	if verbStore == nil {
		return nil, domain.NewValidationError("verbStore", "cannot be nil", domain.ErrValidation)
	}

	if maxDistractors <= 0 {
		maxDistractors = grammar.DefaultMaxDistractors
	}
	if log == nil {
		log = slog.Default()
	}

	return &quizServiceImpl{
		sentenceStore:  sentenceStore,
		matchingStore:  matchingStore,
		conjStore:      conjStore,
		verbStore:      verbStore,
		maxDistractors: maxDistractors,
		logger:         log.With(slog.String("component", "quiz_service")),
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// distractorGenerator lazily builds the generator from the conjugation
// table and verb lexicon. The reference collections are immutable at
// runtime, so the result is cached for the life of the service.
func (s *quizServiceImpl) distractorGenerator(ctx context.Context) (*grammar.DistractorGenerator, error) {
	s.distractorsOnce.Do(func() {
		table, err := s.conjStore.GetTable(ctx)
		if err != nil {
			s.distractorsErr = NewQuizServiceError("load_reference", "failed to load conjugations", err)
			return
		}
		verbs, err := s.verbStore.GetAll(ctx)
		if err != nil {
			s.distractorsErr = NewQuizServiceError("load_reference", "failed to load verbs", err)
			return
		}
		s.distractors = grammar.NewDistractorGenerator(table, verbs, s.logger)
	})
	return s.distractors, s.distractorsErr
}

// servableRecords loads the sentence corpus and drops records the quiz
// games cannot serve. Malformed records are rejected individually.
func (s *quizServiceImpl) servableRecords(
	ctx context.Context,
	filter store.SentenceFilter,
) ([]domain.SentenceRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	records, err := s.sentenceStore.GetAll(ctx, filter)
	if err != nil {
		return nil, NewQuizServiceError("load_sentences", "failed to load sentence corpus", err)
	}

	servable := records[:0]
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			log.Warn("rejecting malformed sentence record",
				slog.String("error", err.Error()),
				slog.String("sentence", rec.Sentence))
			continue
		}
		servable = append(servable, rec)
	}

	if len(servable) == 0 {
		return nil, ErrNoQuestionsAvailable
	}
	return servable, nil
}

// pick returns a random index below n using the shared random source.
func (s *quizServiceImpl) pick(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// SentenceGame implements QuizService.SentenceGame
func (s *quizServiceImpl) SentenceGame(ctx context.Context) (*SentenceGameQuestion, error) {
	records, err := s.servableRecords(ctx, store.SentenceFilter{})
	if err != nil {
		return nil, err
	}

	rec := records[s.pick(len(records))]
	return &SentenceGameQuestion{
		Sentence: rec.Sentence,
		Subject:  rec.Subject,
		Object:   rec.Object,
		Verb:     rec.Verb,
		Tense:    rec.Tense,
		Hint: SentenceHint{
			Subject: rec.Subject,
			Object:  rec.Object,
			Verb:    rec.Verb,
		},
	}, nil
}

// VerbGame implements QuizService.VerbGame
// It selects a random record, blanks the verb, and attaches the correct
// form plus distractors. A question that cannot reach three options is
// rejected rather than served degraded.
func (s *quizServiceImpl) VerbGame(ctx context.Context) (*VerbGameQuestion, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	records, err := s.servableRecords(ctx, store.SentenceFilter{})
	if err != nil {
		return nil, err
	}

	gen, err := s.distractorGenerator(ctx)
	if err != nil {
		return nil, err
	}

	rec := records[s.pick(len(records))]

	if !devanagariForm.MatchString(rec.Verb.Form) {
		log.Warn("verb form is not pure Devanagari",
			slog.String("form", rec.Verb.Form),
			slog.String("sentence", rec.Sentence))
		return nil, ErrQuestionNotServable
	}

	s.mu.Lock()
	distractors := gen.Generate(
		s.rng,
		rec.Verb.Form,
		rec.Verb.Root,
		rec.Verb.Class,
		rec.Tense,
		rec.Subject.Person,
		rec.Subject.Number,
		s.maxDistractors,
	)
	s.mu.Unlock()

	options := append([]string{rec.Verb.Form}, distractors...)
	if len(options) < 3 {
		log.Warn("insufficient options for verb game",
			slog.Int("options", len(options)),
			slog.String("sentence", rec.Sentence))
		return nil, ErrQuestionNotServable
	}

	s.mu.Lock()
	s.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	s.mu.Unlock()

	return &VerbGameQuestion{
		Sentence: replaceVerbWithBlank(rec.Sentence, rec.Verb.Form),
		Correct:  rec.Verb.Form,
		Options:  options,
		Hint: fmt.Sprintf("Subject '%s' is %s in %s tense.",
			rec.Subject.Form,
			grammar.Label(rec.Subject.Person, rec.Subject.Number),
			rec.Tense),
		Explanation: grammar.Explain(rec),
	}, nil
}

// TenseQuestion implements QuizService.TenseQuestion
func (s *quizServiceImpl) TenseQuestion(ctx context.Context) (*TenseQuestion, error) {
	records, err := s.servableRecords(ctx, store.SentenceFilter{})
	if err != nil {
		return nil, err
	}

	q := newTenseQuestion(records[s.pick(len(records))])
	return &q, nil
}

// TenseQuestions implements QuizService.TenseQuestions
// It samples count distinct records; when the corpus is smaller than
// count, every record is returned once.
func (s *quizServiceImpl) TenseQuestions(ctx context.Context, count int) ([]TenseQuestion, error) {
	if count < 1 || count > 50 {
		return nil, ErrInvalidQuestionCount
	}

	records, err := s.servableRecords(ctx, store.SentenceFilter{})
	if err != nil {
		return nil, err
	}

	if count > len(records) {
		count = len(records)
	}

	s.mu.Lock()
	order := s.rng.Perm(len(records))
	s.mu.Unlock()

	questions := make([]TenseQuestion, 0, count)
	for _, idx := range order[:count] {
		questions = append(questions, newTenseQuestion(records[idx]))
	}
	return questions, nil
}

// NumberGame implements QuizService.NumberGame
func (s *quizServiceImpl) NumberGame(ctx context.Context) (*domain.SentenceRecord, error) {
	records, err := s.servableRecords(ctx, store.SentenceFilter{ObjectlessOnly: true})
	if err != nil {
		return nil, err
	}

	rec := records[s.pick(len(records))]
	return &rec, nil
}

// MatchingGame implements QuizService.MatchingGame.
// Entries missing any of the nine subject or verb forms are skipped.
func (s *quizServiceImpl) MatchingGame(ctx context.Context) ([]domain.MatchingGameEntry, error) {
	entries, err := s.matchingStore.GetAll(ctx)
	if err != nil {
		return nil, NewQuizServiceError("load_matching", "failed to load matching entries", err)
	}

	complete := entries[:0]
	for _, entry := range entries {
		if entry.Complete() {
			complete = append(complete, entry)
		}
	}
	return complete, nil
}

// AllSentences implements QuizService.AllSentences
func (s *quizServiceImpl) AllSentences(ctx context.Context) ([]domain.SentenceRecord, error) {
	records, err := s.sentenceStore.GetAll(ctx, store.SentenceFilter{})
	if err != nil {
		return nil, NewQuizServiceError("load_sentences", "failed to load sentence corpus", err)
	}
	return records, nil
}

// newTenseQuestion builds the tense-game view of a sentence record.
func newTenseQuestion(rec domain.SentenceRecord) TenseQuestion {
	return TenseQuestion{
		Sentence:    rec.Sentence,
		Tense:       rec.Tense,
		Explanation: grammar.ExplainTense(rec),
		Verb:        rec.Verb,
		Subject:     rec.Subject,
		Object:      rec.Object,
	}
}

// replaceVerbWithBlank substitutes the verb form in the sentence text with
// a blank. When the form is not found as a whole word, the last word is
// blanked instead, matching the fixed subject[-object]-verb order.
func replaceVerbWithBlank(text, form string) string {
	if form == "" {
		return text
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	replaced := false
	for i, w := range words {
		if w == form {
			words[i] = verbBlank
			replaced = true
			break
		}
	}
	if !replaced {
		words[len(words)-1] = verbBlank
	}
	return strings.Join(words, " ")
}
