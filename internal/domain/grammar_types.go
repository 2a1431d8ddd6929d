package domain

// Tense identifies the verb tense of a generated sentence.
type Tense string

// Supported tenses. The corpus is generated for all three.
const (
	TensePresent Tense = "present"
	TensePast    Tense = "past"
	TenseFuture  Tense = "future"
)

// AllTenses lists the supported tenses in generation order.
var AllTenses = []Tense{TensePresent, TensePast, TenseFuture}

// IsValid reports whether t is one of the supported tenses.
func (t Tense) IsValid() bool {
	return t == TensePresent || t == TensePast || t == TenseFuture
}

// GrammaticalNumber is the number category of a noun or verb form.
type GrammaticalNumber string

// The closed set of grammatical numbers. This set is never extended.
const (
	NumberSingular GrammaticalNumber = "sg"
	NumberDual     GrammaticalNumber = "du"
	NumberPlural   GrammaticalNumber = "pl"
)

// AllNumbers lists the grammatical numbers in their fixed iteration order
// {sg, du, pl}. This order is load-bearing: declension suffix triples are
// indexed by position in this sequence, and matching-game slot assignment
// depends on it.
var AllNumbers = []GrammaticalNumber{NumberSingular, NumberDual, NumberPlural}

// Index returns the suffix-triple index for the number, or -1 if unknown.
func (n GrammaticalNumber) Index() int {
	switch n {
	case NumberSingular:
		return 0
	case NumberDual:
		return 1
	case NumberPlural:
		return 2
	default:
		return -1
	}
}

// IsValid reports whether n is one of sg, du, pl.
func (n GrammaticalNumber) IsValid() bool {
	return n.Index() >= 0
}

// Person is the grammatical person of a subject or verb form.
type Person string

// The closed set of grammatical persons.
const (
	PersonFirst  Person = "1"
	PersonSecond Person = "2"
	PersonThird  Person = "3"
)

// IsValid reports whether p is one of 1, 2, 3.
func (p Person) IsValid() bool {
	return p == PersonFirst || p == PersonSecond || p == PersonThird
}

// Gender is the grammatical gender of a noun.
type Gender string

// Noun genders. GenderNone marks irregular pronouns that bypass the
// regular declension tables.
const (
	GenderMasculine Gender = "masc"
	GenderFeminine  Gender = "fem"
	GenderNeuter    Gender = "neut"
	GenderNone      Gender = ""
)

// StemClass names the declension paradigm of a noun, written as the stem
// vowel in Devanagari. StemClassNone marks irregular pronouns.
type StemClass string

// Stem classes covered by the declension tables.
const (
	StemClassA    StemClass = "अ" // short-a stems (masculine, neuter)
	StemClassAA   StemClass = "आ" // long-ā stems (feminine)
	StemClassNone StemClass = ""
)

// VerbClass is the conjugation class (gaṇa) of a verb, parasmaipada.
type VerbClass string

// The four verb classes carried by the lexicon.
const (
	VerbClass1P  VerbClass = "1P"
	VerbClass4P  VerbClass = "4P"
	VerbClass6P  VerbClass = "6P"
	VerbClass10P VerbClass = "10P"
)

// AllVerbClasses lists the verb classes in lexicon order.
var AllVerbClasses = []VerbClass{VerbClass1P, VerbClass4P, VerbClass6P, VerbClass10P}

// IsValid reports whether c is one of the four supported classes.
func (c VerbClass) IsValid() bool {
	switch c {
	case VerbClass1P, VerbClass4P, VerbClass6P, VerbClass10P:
		return true
	default:
		return false
	}
}

// Role is the syntactic role a noun plays in a sentence. Each role maps to
// a fixed grammatical case: subject to prathamā (nominative), object to
// dvitīyā (accusative).
type Role string

// Noun roles.
const (
	RoleSubject Role = "subject"
	RoleObject  Role = "object"
)

// PersonNumberKey builds the "{person}_{number}" lookup key used by the
// conjugation tables, e.g. "3_sg".
func PersonNumberKey(p Person, n GrammaticalNumber) string {
	return string(p) + "_" + string(n)
}
