package domain

import "errors"

// Noun-specific validation errors
var (
	// ErrNounRootEmpty is returned when a noun has no root.
	ErrNounRootEmpty = errors.New("noun root cannot be empty")

	// ErrNounNoEntityClass is returned when a noun carries no entity classes,
	// which would make it unreachable by every verb.
	ErrNounNoEntityClass = errors.New("noun must have at least one entity class")

	// ErrNounUnusable is returned when a noun is usable neither as subject
	// nor as object.
	ErrNounUnusable = errors.New("noun must be usable as subject or object")
)

// Noun is an immutable lexicon record. Gender and StemClass select the
// declension paradigm; the zero values mark the two irregular pronouns
// (asmad, yuṣmad) whose paradigms bypass regular declension entirely.
// EntityClasses are the semantic tags that determine which verbs accept
// the noun as subject or object.
type Noun struct {
	Root            string    `json:"root"`
	Gender          Gender    `json:"gender"`
	StemClass       StemClass `json:"stem_type"`
	EntityClasses   []string  `json:"entity_classes"`
	UsableAsSubject bool      `json:"usable_as_subject"`
	UsableAsObject  bool      `json:"usable_as_object"`
}

// Validate checks that the noun is a usable lexicon record.
func (n Noun) Validate() error {
	if n.Root == "" {
		return ErrNounRootEmpty
	}
	if len(n.EntityClasses) == 0 {
		return ErrNounNoEntityClass
	}
	if !n.UsableAsSubject && !n.UsableAsObject {
		return ErrNounUnusable
	}
	return nil
}

// HasEntityClass reports whether the noun carries the given semantic tag.
func (n Noun) HasEntityClass(class string) bool {
	for _, c := range n.EntityClasses {
		if c == class {
			return true
		}
	}
	return false
}

// UsableAs reports whether the noun may fill the given syntactic role.
func (n Noun) UsableAs(role Role) bool {
	if role == RoleSubject {
		return n.UsableAsSubject
	}
	return n.UsableAsObject
}
