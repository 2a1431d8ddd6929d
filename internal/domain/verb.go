package domain

import "errors"

// Verb-specific validation errors
var (
	// ErrVerbRootEmpty is returned when a verb has no root.
	ErrVerbRootEmpty = errors.New("verb root cannot be empty")

	// ErrVerbClassInvalid is returned when a verb's conjugation class is not
	// one of the four supported classes.
	ErrVerbClassInvalid = errors.New("verb class must be one of 1P, 4P, 6P, 10P")

	// ErrVerbNoSubjectClass is returned when a verb allows no subject entity
	// classes, which would make it generate no sentences at all.
	ErrVerbNoSubjectClass = errors.New("verb must allow at least one subject class")

	// ErrVerbNoObjectClass is returned when a transitive verb allows no
	// object entity classes.
	ErrVerbNoObjectClass = errors.New("transitive verb must allow at least one object class")
)

// Verb is an immutable lexicon record. PastStem and FutureStem are optional
// overrides of the dictionary root used for the respective tenses; when
// unset the bare root is used. AllowedSubjectClasses and
// AllowedObjectClasses are entity-class tags restricting which nouns the
// verb combines with.
type Verb struct {
	Root                  string    `json:"root"`
	Meaning               string    `json:"meaning"`
	Class                 VerbClass `json:"verb_class"`
	PastStem              string    `json:"past_stem,omitempty"`
	FutureStem            string    `json:"future_stem,omitempty"`
	RequiresObject        bool      `json:"requires_object"`
	AllowedSubjectClasses []string  `json:"allowed_subject_class"`
	AllowedObjectClasses  []string  `json:"allowed_object_class,omitempty"`
}

// Validate checks that the verb is a usable lexicon record.
func (v Verb) Validate() error {
	if v.Root == "" {
		return ErrVerbRootEmpty
	}
	if !v.Class.IsValid() {
		return ErrVerbClassInvalid
	}
	if len(v.AllowedSubjectClasses) == 0 {
		return ErrVerbNoSubjectClass
	}
	if v.RequiresObject && len(v.AllowedObjectClasses) == 0 {
		return ErrVerbNoObjectClass
	}
	return nil
}

// Stem returns the stem used for the given tense: the future or past stem
// override when set, otherwise the bare root. Stem selection happens before
// any phonological trimming; see grammar.InflectVerb.
func (v Verb) Stem(tense Tense) string {
	switch tense {
	case TenseFuture:
		if v.FutureStem != "" {
			return v.FutureStem
		}
	case TensePast:
		if v.PastStem != "" {
			return v.PastStem
		}
	}
	return v.Root
}
