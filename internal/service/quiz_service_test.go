package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/sanskrit-quiz-api/internal/domain"
	"github.com/phrazzld/sanskrit-quiz-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// quizTestRecord is one well-formed third-person-singular present record.
func quizTestRecord() domain.SentenceRecord {
	return domain.SentenceRecord{
		Sentence: "बालः गच्छति",
		Tense:    domain.TensePresent,
		Subject: domain.NounRef{
			Root:   "बाल",
			Form:   "बालः",
			Number: domain.NumberSingular,
			Person: domain.PersonThird,
			Gender: domain.GenderMasculine,
			Stem:   domain.StemClassA,
		},
		Verb: domain.VerbRef{
			Root:    "गच्छ्",
			Form:    "गच्छति",
			Person:  domain.PersonThird,
			Number:  domain.NumberSingular,
			Class:   domain.VerbClass1P,
			Meaning: "to go",
		},
	}
}

func quizTestVerbs() []domain.Verb {
	return []domain.Verb{
		{
			Root:                  "गच्छ्",
			Meaning:               "to go",
			Class:                 domain.VerbClass1P,
			PastStem:              "अगच्छ्",
			FutureStem:            "गमिष्य्",
			AllowedSubjectClasses: []string{"animate"},
		},
	}
}

func quizTestTable() domain.ConjugationTable {
	return domain.ConjugationTable{
		domain.TensePresent: {
			domain.VerbClass1P: domain.SuffixSet{
				"1_sg": "ामि", "2_sg": "सि", "3_sg": "ति",
				"1_du": "ावः", "2_du": "थः", "3_du": "तः",
				"1_pl": "ामः", "2_pl": "थ", "3_pl": "Aन्ति",
			},
		},
	}
}

// newQuizServiceForTest wires the service over the given mocks with a
// distractor cap of two.
func newQuizServiceForTest(
	t *testing.T,
	sentences *MockSentenceStore,
	matching *MockMatchingGameStore,
	conj *MockConjugationStore,
	verbs *MockVerbStore,
) QuizService {
	t.Helper()
	svc, err := NewQuizService(sentences, matching, conj, verbs, 2, slog.Default())
	require.NoError(t, err)
	return svc
}

func TestNewQuizServiceValidation(t *testing.T) {
	t.Parallel()

	sentences := new(MockSentenceStore)
	matching := new(MockMatchingGameStore)
	conj := new(MockConjugationStore)
	verbs := new(MockVerbStore)

	testCases := []struct {
		name      string
		sentences store.SentenceStore
		matching  store.MatchingGameStore
		conj      store.ConjugationStore
		verbs     store.VerbStore
	}{
		{"nil sentence store", nil, matching, conj, verbs},
		{"nil matching store", sentences, nil, conj, verbs},
		{"nil conjugation store", sentences, matching, nil, verbs},
		{"nil verb store", sentences, matching, conj, nil},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc, err := NewQuizService(tc.sentences, tc.matching, tc.conj, tc.verbs, 2, nil)
			assert.Nil(t, svc)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestSentenceGame(t *testing.T) {
	t.Parallel()

	t.Run("returns record with hint block", func(t *testing.T) {
		t.Parallel()
		sentences := new(MockSentenceStore)
		rec := quizTestRecord()
		sentences.On("GetAll", mock.Anything, store.SentenceFilter{}).
			Return([]domain.SentenceRecord{rec}, nil)

		svc := newQuizServiceForTest(t, sentences,
			new(MockMatchingGameStore), new(MockConjugationStore), new(MockVerbStore))

		q, err := svc.SentenceGame(context.Background())
		require.NoError(t, err)
		assert.Equal(t, rec.Sentence, q.Sentence)
		assert.Equal(t, rec.Tense, q.Tense)
		assert.Equal(t, rec.Subject, q.Hint.Subject)
		assert.Equal(t, rec.Verb, q.Hint.Verb)
		assert.Nil(t, q.Object)
		sentences.AssertExpectations(t)
	})

	t.Run("empty corpus", func(t *testing.T) {
		t.Parallel()
		sentences := new(MockSentenceStore)
		sentences.On("GetAll", mock.Anything, store.SentenceFilter{}).
			Return([]domain.SentenceRecord{}, nil)

		svc := newQuizServiceForTest(t, sentences,
			new(MockMatchingGameStore), new(MockConjugationStore), new(MockVerbStore))

		_, err := svc.SentenceGame(context.Background())
		assert.ErrorIs(t, err, ErrNoQuestionsAvailable)
	})

	t.Run("malformed records are dropped", func(t *testing.T) {
		t.Parallel()
		sentences := new(MockSentenceStore)
		broken := quizTestRecord()
		broken.Verb.Form = ""
		sentences.On("GetAll", mock.Anything, store.SentenceFilter{}).
			Return([]domain.SentenceRecord{broken}, nil)

		svc := newQuizServiceForTest(t, sentences,
			new(MockMatchingGameStore), new(MockConjugationStore), new(MockVerbStore))

		_, err := svc.SentenceGame(context.Background())
		assert.ErrorIs(t, err, ErrNoQuestionsAvailable)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		t.Parallel()
		sentences := new(MockSentenceStore)
		storeErr := errors.New("connection refused")
		sentences.On("GetAll", mock.Anything, store.SentenceFilter{}).
			Return(nil, storeErr)

		svc := newQuizServiceForTest(t, sentences,
			new(MockMatchingGameStore), new(MockConjugationStore), new(MockVerbStore))

		_, err := svc.SentenceGame(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, storeErr)

		var svcErr *QuizServiceError
		assert.ErrorAs(t, err, &svcErr)
	})
}

func TestVerbGame(t *testing.T) {
	t.Parallel()

	t.Run("blanks the verb and shuffles three options", func(t *testing.T) {
		t.Parallel()
		sentences := new(MockSentenceStore)
		conj := new(MockConjugationStore)
		verbs := new(MockVerbStore)

		rec := quizTestRecord()
		sentences.On("GetAll", mock.Anything, store.SentenceFilter{}).
			Return([]domain.SentenceRecord{rec}, nil)
		conj.On("GetTable", mock.Anything).Return(quizTestTable(), nil)
		verbs.On("GetAll", mock.Anything).Return(quizTestVerbs(), nil)

		svc := newQuizServiceForTest(t, sentences, new(MockMatchingGameStore), conj, verbs)

		q, err := svc.VerbGame(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "बालः _____", q.Sentence)
		assert.Equal(t, "गच्छति", q.Correct)
		assert.Len(t, q.Options, 3)
		assert.Contains(t, q.Options, "गच्छति")
		for _, opt := range q.Options {
			assert.NotEmpty(t, opt)
		}
		assert.Equal(t, "Subject 'बालः' is Third person singular in present tense.", q.Hint)
		assert.Contains(t, q.Explanation, "Verb root: 'गच्छ्'")
		assert.False(t, strings.Contains(q.Sentence, q.Correct))
	})

	t.Run("reference data loaded once", func(t *testing.T) {
		t.Parallel()
		sentences := new(MockSentenceStore)
		conj := new(MockConjugationStore)
		verbs := new(MockVerbStore)

		sentences.On("GetAll", mock.Anything, store.SentenceFilter{}).
			Return([]domain.SentenceRecord{quizTestRecord()}, nil)
		conj.On("GetTable", mock.Anything).Return(quizTestTable(), nil).Once()
		verbs.On("GetAll", mock.Anything).Return(quizTestVerbs(), nil).Once()

		svc := newQuizServiceForTest(t, sentences, new(MockMatchingGameStore), conj, verbs)

		for i := 0; i < 3; i++ {
			_, err := svc.VerbGame(context.Background())
			require.NoError(t, err)
		}
		conj.AssertExpectations(t)
		verbs.AssertExpectations(t)
	})

	t.Run("rejects non-Devanagari verb form", func(t *testing.T) {
		t.Parallel()
		sentences := new(MockSentenceStore)
		conj := new(MockConjugationStore)
		verbs := new(MockVerbStore)

		rec := quizTestRecord()
		rec.Verb.Form = "gacchati"
		rec.Sentence = "बालः gacchati"
		sentences.On("GetAll", mock.Anything, store.SentenceFilter{}).
			Return([]domain.SentenceRecord{rec}, nil)
		conj.On("GetTable", mock.Anything).Return(quizTestTable(), nil)
		verbs.On("GetAll", mock.Anything).Return(quizTestVerbs(), nil)

		svc := newQuizServiceForTest(t, sentences, new(MockMatchingGameStore), conj, verbs)

		_, err := svc.VerbGame(context.Background())
		assert.ErrorIs(t, err, ErrQuestionNotServable)
	})

	t.Run("rejects question with fewer than three options", func(t *testing.T) {
		t.Parallel()
		sentences := new(MockSentenceStore)
		conj := new(MockConjugationStore)
		verbs := new(MockVerbStore)

		// A one-cell table leaves no person/number combination to build
		// distractors from.
		table := domain.ConjugationTable{
			domain.TensePresent: {
				domain.VerbClass1P: domain.SuffixSet{"3_sg": "ति"},
			},
		}
		sentences.On("GetAll", mock.Anything, store.SentenceFilter{}).
			Return([]domain.SentenceRecord{quizTestRecord()}, nil)
		conj.On("GetTable", mock.Anything).Return(table, nil)
		verbs.On("GetAll", mock.Anything).Return(quizTestVerbs(), nil)

		svc := newQuizServiceForTest(t, sentences, new(MockMatchingGameStore), conj, verbs)

		_, err := svc.VerbGame(context.Background())
		assert.ErrorIs(t, err, ErrQuestionNotServable)
	})

	t.Run("conjugation load failure", func(t *testing.T) {
		t.Parallel()
		sentences := new(MockSentenceStore)
		conj := new(MockConjugationStore)
		verbs := new(MockVerbStore)

		sentences.On("GetAll", mock.Anything, store.SentenceFilter{}).
			Return([]domain.SentenceRecord{quizTestRecord()}, nil)
		conj.On("GetTable", mock.Anything).Return(nil, store.ErrConjugationsNotFound)

		svc := newQuizServiceForTest(t, sentences, new(MockMatchingGameStore), conj, verbs)

		_, err := svc.VerbGame(context.Background())
		assert.ErrorIs(t, err, store.ErrConjugationsNotFound)
	})
}

func TestTenseQuestions(t *testing.T) {
	t.Parallel()

	t.Run("count bounds", func(t *testing.T) {
		t.Parallel()
		svc := newQuizServiceForTest(t, new(MockSentenceStore),
			new(MockMatchingGameStore), new(MockConjugationStore), new(MockVerbStore))

		for _, count := range []int{0, -1, 51, 100} {
			_, err := svc.TenseQuestions(context.Background(), count)
			assert.ErrorIs(t, err, ErrInvalidQuestionCount, "count %d", count)
		}
	})

	t.Run("samples distinct records", func(t *testing.T) {
		t.Parallel()
		sentences := new(MockSentenceStore)
		records := make([]domain.SentenceRecord, 0, 5)
		for i := 0; i < 5; i++ {
			rec := quizTestRecord()
			rec.Sentence = rec.Sentence + " " + string(rune('a'+i))
			records = append(records, rec)
		}
		sentences.On("GetAll", mock.Anything, store.SentenceFilter{}).
			Return(records, nil)

		svc := newQuizServiceForTest(t, sentences,
			new(MockMatchingGameStore), new(MockConjugationStore), new(MockVerbStore))

		questions, err := svc.TenseQuestions(context.Background(), 3)
		require.NoError(t, err)
		require.Len(t, questions, 3)

		seen := map[string]bool{}
		for _, q := range questions {
			assert.False(t, seen[q.Sentence], "duplicate question %q", q.Sentence)
			seen[q.Sentence] = true
			assert.Equal(t, domain.TensePresent, q.Tense)
			assert.NotEmpty(t, q.Explanation)
		}
	})

	t.Run("count larger than corpus returns everything", func(t *testing.T) {
		t.Parallel()
		sentences := new(MockSentenceStore)
		sentences.On("GetAll", mock.Anything, store.SentenceFilter{}).
			Return([]domain.SentenceRecord{quizTestRecord()}, nil)

		svc := newQuizServiceForTest(t, sentences,
			new(MockMatchingGameStore), new(MockConjugationStore), new(MockVerbStore))

		questions, err := svc.TenseQuestions(context.Background(), 50)
		require.NoError(t, err)
		assert.Len(t, questions, 1)
	})
}

func TestTenseQuestionExplanation(t *testing.T) {
	t.Parallel()

	sentences := new(MockSentenceStore)
	sentences.On("GetAll", mock.Anything, store.SentenceFilter{}).
		Return([]domain.SentenceRecord{quizTestRecord()}, nil)

	svc := newQuizServiceForTest(t, sentences,
		new(MockMatchingGameStore), new(MockConjugationStore), new(MockVerbStore))

	q, err := svc.TenseQuestion(context.Background())
	require.NoError(t, err)
	assert.Equal(t,
		"Verb root: 'गच्छ्', form: 'गच्छति' (present tense), meaning: 'to go'. "+
			"Subject: 'बालः', number: sg, gender: masc.",
		q.Explanation)
}

func TestNumberGame(t *testing.T) {
	t.Parallel()

	sentences := new(MockSentenceStore)
	sentences.On("GetAll", mock.Anything, store.SentenceFilter{ObjectlessOnly: true}).
		Return([]domain.SentenceRecord{quizTestRecord()}, nil)

	svc := newQuizServiceForTest(t, sentences,
		new(MockMatchingGameStore), new(MockConjugationStore), new(MockVerbStore))

	rec, err := svc.NumberGame(context.Background())
	require.NoError(t, err)
	assert.Nil(t, rec.Object)
	sentences.AssertExpectations(t)
}

func TestMatchingGame(t *testing.T) {
	t.Parallel()

	complete := domain.MatchingGameEntry{
		SubjectRoot: "बाल",
		VerbRoot:    "गच्छ्",
		Tense:       domain.TensePresent,
		Meaning:     "to go",
		SubjectForms: domain.FormTriple{Sg: "बालः", Du: "बालौ", Pl: "बालाः"},
		VerbForms:    domain.FormTriple{Sg: "गच्छति", Du: "गच्छतः", Pl: "गच्छन्ति"},
	}
	incomplete := complete
	incomplete.VerbForms.Du = ""

	matching := new(MockMatchingGameStore)
	matching.On("GetAll", mock.Anything).
		Return([]domain.MatchingGameEntry{complete, incomplete}, nil)

	svc := newQuizServiceForTest(t, new(MockSentenceStore),
		matching, new(MockConjugationStore), new(MockVerbStore))

	entries, err := svc.MatchingGame(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, complete, entries[0])
}

func TestAllSentences(t *testing.T) {
	t.Parallel()

	sentences := new(MockSentenceStore)
	records := []domain.SentenceRecord{quizTestRecord()}
	sentences.On("GetAll", mock.Anything, store.SentenceFilter{}).
		Return(records, nil)

	svc := newQuizServiceForTest(t, sentences,
		new(MockMatchingGameStore), new(MockConjugationStore), new(MockVerbStore))

	got, err := svc.AllSentences(context.Background())
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestReplaceVerbWithBlank(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		text     string
		form     string
		expected string
	}{
		{"whole word match", "बालः गच्छति", "गच्छति", "बालः _____"},
		{"form absent blanks last word", "बालः फलम् खादति", "गच्छति", "बालः फलम् _____"},
		{"empty form", "बालः गच्छति", "", "बालः गच्छति"},
		{"empty text", "", "गच्छति", ""},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, replaceVerbWithBlank(tc.text, tc.form))
		})
	}
}
