package grammar

import "github.com/phrazzld/sanskrit-quiz-api/internal/domain"

// MatchingPair is one (inflected subject, inflected verb) pair produced for
// the matching game. The verb reference carries its tense, which keys the
// aggregation.
type MatchingPair struct {
	Subject domain.NounRef `json:"subject"`
	Verb    domain.VerbRef `json:"verb"`
}

// SubjectVerbPairs enumerates subject/verb pairs for one verb in one tense,
// exactly like the no-object branch of sentence synthesis. Numbers iterate
// in the fixed {sg, du, pl} order; aggregation slot assignment depends on
// every number appearing.
func SubjectVerbPairs(
	v domain.Verb,
	nouns []domain.Noun,
	table domain.ConjugationTable,
	tense domain.Tense,
) []MatchingPair {
	var pairs []MatchingPair
	for _, subjClass := range v.AllowedSubjectClasses {
		for _, subject := range ValidNouns(nouns, subjClass, domain.RoleSubject) {
			for _, number := range domain.AllNumbers {
				person := PersonForRoot(subject.Root)
				pairs = append(pairs, MatchingPair{
					Subject: domain.NounRef{
						Root:   subject.Root,
						Form:   InflectNoun(subject, domain.RoleSubject, number),
						Number: number,
						Person: person,
						Gender: subject.Gender,
						Stem:   subject.StemClass,
					},
					Verb: domain.VerbRef{
						Root:    v.Root,
						Form:    InflectVerb(v, person, number, tense, table),
						Person:  person,
						Number:  number,
						Class:   v.Class,
						Meaning: v.Meaning,
						Tense:   tense,
					},
				})
			}
		}
	}
	return pairs
}

// AggregateMatchingPairs groups pairs by (subject root, verb root, tense)
// and fills one {sg, du, pl} slot per grammatical number on each side.
//
// An aggregated entry is emitted only when all six form slots are
// populated. This is a completeness invariant, not an optional filter:
// partial paradigms never reach the persisted output. Emission order is
// first-seen group order.
func AggregateMatchingPairs(pairs []MatchingPair) []domain.MatchingGameEntry {
	groups := map[string]*domain.MatchingGameEntry{}
	var order []string

	for _, pair := range pairs {
		key := pair.Subject.Root + "_" + pair.Verb.Root + "_" + string(pair.Verb.Tense)
		entry, ok := groups[key]
		if !ok {
			entry = &domain.MatchingGameEntry{
				SubjectRoot: pair.Subject.Root,
				VerbRoot:    pair.Verb.Root,
				Tense:       pair.Verb.Tense,
				Meaning:     pair.Verb.Meaning,
			}
			groups[key] = entry
			order = append(order, key)
		}
		entry.SubjectForms.Set(pair.Subject.Number, pair.Subject.Form)
		entry.VerbForms.Set(pair.Subject.Number, pair.Verb.Form)
	}

	var entries []domain.MatchingGameEntry
	for _, key := range order {
		if entry := groups[key]; entry.Complete() {
			entries = append(entries, *entry)
		}
	}
	return entries
}

// SynthesizeMatchingPairs produces the full matching-game corpus: pairs for
// every object-less verb across all tenses, aggregated into paradigm cards.
// Verbs that require an object are excluded entirely.
func SynthesizeMatchingPairs(
	verbs []domain.Verb,
	nouns []domain.Noun,
	table domain.ConjugationTable,
) []domain.MatchingGameEntry {
	var pairs []MatchingPair
	for _, tense := range domain.AllTenses {
		for _, v := range verbs {
			if v.RequiresObject {
				continue
			}
			pairs = append(pairs, SubjectVerbPairs(v, nouns, table, tense)...)
		}
	}
	return AggregateMatchingPairs(pairs)
}
