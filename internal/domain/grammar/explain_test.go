package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/sanskrit-quiz-api/internal/domain"
)

func TestLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Third person singular", Label(domain.PersonThird, domain.NumberSingular))
	assert.Equal(t, "First person dual", Label(domain.PersonFirst, domain.NumberDual))
	assert.Equal(t, "Unknown Unknown", Label(domain.Person("9"), domain.GrammaticalNumber("xx")))
}

func TestExplain(t *testing.T) {
	t.Parallel()

	rec := domain.SentenceRecord{
		Sentence: "बालः गच्छति",
		Tense:    domain.TensePresent,
		Subject: domain.NounRef{
			Root:   "बाल",
			Form:   "बालः",
			Number: domain.NumberSingular,
			Person: domain.PersonThird,
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

	want := "Subject 'बालः' is in Third person singular form. " +
		"Verb root: 'गच्छ्', class 1P, meaning: 'to go'. " +
		"Tense: present. This verb does not require an object. " +
		"The correct form is 'गच्छति' to match the subject and tense."
	assert.Equal(t, want, Explain(rec))

	// Same invocation twice: deterministic.
	assert.Equal(t, Explain(rec), Explain(rec))
}

func TestExplainTransitive(t *testing.T) {
	t.Parallel()

	rec := domain.SentenceRecord{
		Sentence: "बालः फलम् पठति",
		Tense:    domain.TensePresent,
		Subject:  domain.NounRef{Form: "बालः", Person: domain.PersonThird, Number: domain.NumberSingular},
		Object:   &domain.NounRef{Form: "फलम्", Person: domain.PersonThird, Number: domain.NumberSingular},
		Verb:     domain.VerbRef{Root: "पठ्", Form: "पठति", Class: domain.VerbClass1P, Meaning: "to read"},
	}

	assert.Contains(t, Explain(rec), "This verb requires an object.")
}

func TestExplainMissingFields(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NoExplanation, Explain(domain.SentenceRecord{}))
	assert.Equal(t, NoExplanation, Explain(domain.SentenceRecord{
		Subject: domain.NounRef{Form: "बालः"},
	}))

	// Unknown tense still explains, labeled as unknown.
	rec := domain.SentenceRecord{
		Subject: domain.NounRef{Form: "बालः", Person: domain.PersonThird, Number: domain.NumberSingular},
		Verb:    domain.VerbRef{Root: "गच्छ्", Form: "गच्छति", Class: domain.VerbClass1P},
	}
	assert.Contains(t, Explain(rec), "Tense: unknown.")
}
