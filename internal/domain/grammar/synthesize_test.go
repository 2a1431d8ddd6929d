package grammar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/sanskrit-quiz-api/internal/domain"
)

func TestSentencesForVerbIntransitive(t *testing.T) {
	t.Parallel()

	nouns := []domain.Noun{
		{
			Root:            "बाल",
			Gender:          domain.GenderMasculine,
			StemClass:       domain.StemClassA,
			EntityClasses:   []string{"animate"},
			UsableAsSubject: true,
		},
	}

	records := SentencesForVerb(testVerbGam(), nouns, testConjugations(), domain.TensePresent)

	// One subject noun, no object: exactly one record per grammatical number.
	require.Len(t, records, 3)

	expected := []struct {
		number   domain.GrammaticalNumber
		sentence string
	}{
		{domain.NumberSingular, "बालः गच्छति"},
		{domain.NumberDual, "बालौ गच्छतः"},
		{domain.NumberPlural, "बालाः गच्छन्ति"},
	}
	for i, want := range expected {
		rec := records[i]
		assert.Equal(t, want.sentence, rec.Sentence)
		assert.Equal(t, want.number, rec.Subject.Number)
		assert.Equal(t, want.number, rec.Verb.Number)
		assert.Equal(t, domain.PersonThird, rec.Subject.Person)
		assert.Equal(t, domain.TensePresent, rec.Tense)
		assert.Nil(t, rec.Object)
	}
}

func TestSentencesForVerbTransitive(t *testing.T) {
	t.Parallel()

	nouns := []domain.Noun{
		{
			Root:            "बाल",
			Gender:          domain.GenderMasculine,
			StemClass:       domain.StemClassA,
			EntityClasses:   []string{"animate"},
			UsableAsSubject: true,
		},
		{
			Root:           "फल",
			Gender:         domain.GenderNeuter,
			StemClass:      domain.StemClassA,
			EntityClasses:  []string{"inanimate"},
			UsableAsObject: true,
		},
	}

	records := SentencesForVerb(testVerbPath(), nouns, testConjugations(), domain.TensePresent)

	// 1 subject x 3 numbers x 1 object x 3 object numbers.
	require.Len(t, records, 9)

	first := records[0]
	assert.Equal(t, "बालः फलम् पठति", first.Sentence)
	require.NotNil(t, first.Object)
	assert.Equal(t, domain.PersonThird, first.Object.Person)
	assert.Equal(t, domain.NumberSingular, first.Object.Number)

	// Object numbers cycle fastest, always in {sg, du, pl} order.
	assert.Equal(t, domain.NumberDual, records[1].Object.Number)
	assert.Equal(t, domain.NumberPlural, records[2].Object.Number)
	assert.Equal(t, domain.NumberDual, records[3].Subject.Number)

	for _, rec := range records {
		assert.Len(t, strings.Fields(rec.Sentence), 3)
	}
}

func TestSentencesForVerbPronounPersonMapping(t *testing.T) {
	t.Parallel()

	nouns := []domain.Noun{
		{Root: RootAsmad, EntityClasses: []string{"animate"}, UsableAsSubject: true},
		{Root: RootYushmad, EntityClasses: []string{"animate"}, UsableAsSubject: true},
	}

	records := SentencesForVerb(testVerbGam(), nouns, testConjugations(), domain.TensePresent)
	require.Len(t, records, 6)

	assert.Equal(t, domain.PersonFirst, records[0].Subject.Person)
	assert.Equal(t, "अहम् गच्छामि", records[0].Sentence)
	assert.Equal(t, domain.PersonSecond, records[3].Subject.Person)
	assert.Equal(t, "त्वम् गच्छसि", records[3].Sentence)
}

func TestSynthesizeSentencesCoversAllTenses(t *testing.T) {
	t.Parallel()

	nouns := []domain.Noun{
		{
			Root:            "बाल",
			Gender:          domain.GenderMasculine,
			StemClass:       domain.StemClassA,
			EntityClasses:   []string{"animate"},
			UsableAsSubject: true,
		},
	}

	records := SynthesizeSentences([]domain.Verb{testVerbGam()}, nouns, testConjugations())

	// 3 tenses x 3 numbers, no pruning.
	require.Len(t, records, 9)
	assert.Equal(t, domain.TensePresent, records[0].Tense)
	assert.Equal(t, domain.TensePast, records[3].Tense)
	assert.Equal(t, domain.TenseFuture, records[6].Tense)
	assert.Equal(t, "बालः अगच्छत्", records[3].Sentence)
	assert.Equal(t, "बालः गमिष्यति", records[6].Sentence)
}
