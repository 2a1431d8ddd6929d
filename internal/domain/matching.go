package domain

// FormTriple holds one inflected form per grammatical number. A triple is
// complete when all three slots are populated.
type FormTriple struct {
	Sg string `json:"sg"`
	Du string `json:"du"`
	Pl string `json:"pl"`
}

// Set assigns the form for the given number. Unknown numbers are ignored.
func (t *FormTriple) Set(n GrammaticalNumber, form string) {
	switch n {
	case NumberSingular:
		t.Sg = form
	case NumberDual:
		t.Du = form
	case NumberPlural:
		t.Pl = form
	}
}

// Complete reports whether all three number slots are populated.
func (t FormTriple) Complete() bool {
	return t.Sg != "" && t.Du != "" && t.Pl != ""
}

// MatchingGameEntry is one aggregated matching-game card: the full
// {sg,du,pl} paradigm of a subject and a verb for one tense. An entry is
// persisted only when both triples are complete; partial paradigms are
// discarded by the synthesizer.
type MatchingGameEntry struct {
	SubjectRoot  string     `json:"subject_root"`
	VerbRoot     string     `json:"verb_root"`
	Tense        Tense      `json:"tense"`
	SubjectForms FormTriple `json:"subject_forms"`
	VerbForms    FormTriple `json:"verb_forms"`
	Meaning      string     `json:"meaning"`
}

// Complete reports whether all six form slots are populated.
func (e MatchingGameEntry) Complete() bool {
	return e.SubjectForms.Complete() && e.VerbForms.Complete()
}
