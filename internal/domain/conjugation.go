package domain

// SuffixSet maps "{person}_{number}" keys (see PersonNumberKey) to suffix
// strings for one (tense, verb class) cell. Suffix strings may contain the
// "A" placeholder marking that no theme vowel is inserted; it must be
// stripped before concatenation.
type SuffixSet map[string]string

// ConjugationTable is the full conjugation rule set:
// tense -> verb class -> person/number key -> suffix. Loaded once from the
// reference store and shared read-only across request handlers.
type ConjugationTable map[Tense]map[VerbClass]SuffixSet

// Lookup returns the suffix for (tense, class, key) and whether it exists.
func (t ConjugationTable) Lookup(tense Tense, class VerbClass, key string) (string, bool) {
	byClass, ok := t[tense]
	if !ok {
		return "", false
	}
	set, ok := byClass[class]
	if !ok {
		return "", false
	}
	suffix, ok := set[key]
	return suffix, ok
}

// SuffixesFor returns the suffix set for (tense, class) and whether the
// cell exists at all. An absent cell means no forms can be built for that
// combination, which callers treat as a recoverable miss.
func (t ConjugationTable) SuffixesFor(tense Tense, class VerbClass) (SuffixSet, bool) {
	byClass, ok := t[tense]
	if !ok {
		return nil, false
	}
	set, ok := byClass[class]
	return set, ok
}
