package domain

import "errors"

// Sentence-record validation errors
var (
	// ErrSentenceEmpty is returned when a sentence record has no surface text.
	ErrSentenceEmpty = errors.New("sentence text cannot be empty")

	// ErrSentenceTenseInvalid is returned when a sentence record carries an
	// unknown tense.
	ErrSentenceTenseInvalid = errors.New("sentence tense must be present, past or future")

	// ErrSentenceSubjectIncomplete is returned when the subject reference is
	// missing the fields the quiz games need.
	ErrSentenceSubjectIncomplete = errors.New("sentence subject is missing required fields")

	// ErrSentenceVerbIncomplete is returned when the verb reference is
	// missing the fields the quiz games need.
	ErrSentenceVerbIncomplete = errors.New("sentence verb is missing required fields")
)

// NounRef is the snapshot of an inflected noun inside a sentence record:
// the lexicon root, the surface form actually used, and the grammatical
// categories it was inflected with.
type NounRef struct {
	Root   string            `json:"root"`
	Form   string            `json:"form"`
	Number GrammaticalNumber `json:"number"`
	Person Person            `json:"person"`
	Gender Gender            `json:"gender"`
	Stem   StemClass         `json:"stem"`
}

// VerbRef is the snapshot of an inflected verb inside a sentence record or
// matching pair. Tense is only populated on matching pairs, where it keys
// the aggregation; sentence records carry the tense at the top level.
type VerbRef struct {
	Root    string            `json:"root"`
	Form    string            `json:"form"`
	Person  Person            `json:"person"`
	Number  GrammaticalNumber `json:"number"`
	Class   VerbClass         `json:"class"`
	Meaning string            `json:"meaning"`
	Tense   Tense             `json:"tense,omitempty"`
}

// SentenceRecord is one generated sentence: the space-joined surface text
// in fixed subject[-object]-verb order plus the structured snapshots of
// every constituent. Records are created by the synthesizer, persisted, and
// read-only afterward. Object is nil for intransitive sentences.
type SentenceRecord struct {
	Sentence string   `json:"sentence"`
	Tense    Tense    `json:"tense"`
	Subject  NounRef  `json:"subject"`
	Object   *NounRef `json:"object"`
	Verb     VerbRef  `json:"verb"`
}

// Validate checks that the record carries everything the quiz-serving path
// needs. A failing record is rejected individually at serving time; it
// never aborts a whole batch.
func (r SentenceRecord) Validate() error {
	if r.Sentence == "" {
		return ErrSentenceEmpty
	}
	if !r.Tense.IsValid() {
		return ErrSentenceTenseInvalid
	}
	if r.Subject.Form == "" || !r.Subject.Person.IsValid() || !r.Subject.Number.IsValid() {
		return ErrSentenceSubjectIncomplete
	}
	if r.Verb.Form == "" || r.Verb.Root == "" || !r.Verb.Class.IsValid() {
		return ErrSentenceVerbIncomplete
	}
	return nil
}
