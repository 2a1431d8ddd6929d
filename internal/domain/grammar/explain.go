package grammar

import (
	"fmt"
	"strings"

	"github.com/phrazzld/sanskrit-quiz-api/internal/domain"
)

// NoExplanation is returned when a sentence record is too incomplete to
// explain.
const NoExplanation = "No explanation available."

var personLabels = map[domain.Person]string{
	domain.PersonFirst:  "First person",
	domain.PersonSecond: "Second person",
	domain.PersonThird:  "Third person",
}

var numberLabels = map[domain.GrammaticalNumber]string{
	domain.NumberSingular: "singular",
	domain.NumberDual:     "dual",
	domain.NumberPlural:   "plural",
}

// Label renders a person/number combination as English prose, e.g.
// "Third person singular". Unknown values render as "Unknown".
func Label(person domain.Person, number domain.GrammaticalNumber) string {
	p, ok := personLabels[person]
	if !ok {
		p = "Unknown"
	}
	n, ok := numberLabels[number]
	if !ok {
		n = "Unknown"
	}
	return p + " " + n
}

// Explain renders a fixed sequence of human-readable clauses describing a
// sentence record: the subject's person and number, the verb's root, class
// and meaning, the tense, transitivity, and the correct verb form. It is
// deterministic and never fails; records missing the subject or verb form
// yield NoExplanation.
func Explain(rec domain.SentenceRecord) string {
	if rec.Subject.Form == "" || rec.Verb.Form == "" {
		return NoExplanation
	}

	tense := string(rec.Tense)
	if tense == "" {
		tense = "unknown"
	}
	objectClause := "does not require"
	if rec.Object != nil {
		objectClause = "requires"
	}

	return fmt.Sprintf(
		"Subject '%s' is in %s form. Verb root: '%s', class %s, meaning: '%s'. Tense: %s. This verb %s an object. The correct form is '%s' to match the subject and tense.",
		rec.Subject.Form,
		Label(rec.Subject.Person, rec.Subject.Number),
		rec.Verb.Root,
		rec.Verb.Class,
		rec.Verb.Meaning,
		tense,
		objectClause,
		rec.Verb.Form,
	)
}

// ExplainTense renders the explanation used by the tense-identification
// game: one clause per constituent that is present, focused on the verb's
// tense rather than its agreement. A record with neither subject nor verb
// yields NoExplanation.
func ExplainTense(rec domain.SentenceRecord) string {
	tense := string(rec.Tense)
	if tense == "" {
		tense = "unknown"
	}

	var clauses []string
	if rec.Verb.Root != "" || rec.Verb.Form != "" {
		clauses = append(clauses, fmt.Sprintf(
			"Verb root: '%s', form: '%s' (%s tense), meaning: '%s'.",
			rec.Verb.Root, rec.Verb.Form, tense, rec.Verb.Meaning,
		))
	}
	if rec.Subject.Form != "" {
		clauses = append(clauses, fmt.Sprintf(
			"Subject: '%s', number: %s, gender: %s.",
			rec.Subject.Form, rec.Subject.Number, rec.Subject.Gender,
		))
	}
	if rec.Object != nil && rec.Object.Form != "" {
		clauses = append(clauses, fmt.Sprintf(
			"Object: '%s', number: %s, gender: %s.",
			rec.Object.Form, rec.Object.Number, rec.Object.Gender,
		))
	}

	if len(clauses) == 0 {
		return NoExplanation
	}
	return strings.Join(clauses, " ")
}
