package grammar

import (
	"strings"

	"github.com/phrazzld/sanskrit-quiz-api/internal/domain"
)

// InflectNoun produces the surface form of a noun for the given role and
// grammatical number.
//
// Irregular pronoun roots are looked up directly in their paradigm tables;
// gender and stem class are ignored for them. For regular nouns, a missing
// paradigm or case entry falls back silently to the bare root: no sentence
// is generated incorrectly, but no inflection occurs either. This fallback
// is the normal, expected path for roots outside the covered paradigms, not
// an error.
//
// The noun is passed by value and never mutated, so repeated calls with the
// same arguments always yield the same form.
func InflectNoun(n domain.Noun, role domain.Role, number domain.GrammaticalNumber) string {
	idx := number.Index()
	if idx < 0 {
		idx = 0
	}
	c := CaseForRole(role)

	if paradigm, ok := pronounParadigms[n.Root]; ok {
		forms, ok := paradigm[c]
		if !ok {
			// Fails closed. Both modeled cases exist for both pronouns, so
			// this branch is unreachable with the shipped tables.
			return ""
		}
		return forms[idx]
	}

	table, ok := declensions[declensionKey{n.Gender, n.StemClass}]
	if !ok {
		return n.Root
	}
	forms, ok := table[c]
	if !ok {
		return n.Root
	}
	suffix := forms[idx]

	root := n.Root
	if n.Gender == domain.GenderFeminine && n.StemClass == domain.StemClassAA {
		// Stem-final long-ā deletes before the consonant-initial suffix.
		root = strings.TrimSuffix(root, longAAMatra)
	}
	return root + suffix
}
