package grammar

import (
	"strings"

	"github.com/phrazzld/sanskrit-quiz-api/internal/domain"
)

// InflectVerb produces the surface form of a verb for the given person,
// number and tense. An empty tense defaults to present.
//
// A missing conjugation entry for (tense, class, person_number) is a
// recoverable miss: the bare root is returned unchanged. Otherwise the
// tense stem is selected, the halant-drop rule applied, and the suffix
// concatenated with its no-vowel placeholder removed.
func InflectVerb(
	v domain.Verb,
	person domain.Person,
	number domain.GrammaticalNumber,
	tense domain.Tense,
	table domain.ConjugationTable,
) string {
	if tense == "" {
		tense = domain.TensePresent
	}

	suffix, ok := table.Lookup(tense, v.Class, domain.PersonNumberKey(person, number))
	if !ok {
		return v.Root
	}

	return conjugatedStem(v, tense) + strings.ReplaceAll(suffix, noVowelMarker, "")
}

// conjugatedStem selects the tense-appropriate stem and applies the
// halant-drop rule: the stem-final inherent-vowel-suppression marker is
// stripped for every tense/class combination EXCEPT present-tense 4P,
// which keeps its bare consonant stem unmodified. The strip must happen
// after stem selection and before suffixation; neither tense nor class
// alone decides it.
func conjugatedStem(v domain.Verb, tense domain.Tense) string {
	stem := v.Stem(tense)
	if tense == domain.TensePresent && v.Class == domain.VerbClass4P {
		return stem
	}
	return strings.TrimSuffix(stem, Halant)
}
