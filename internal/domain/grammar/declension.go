package grammar

import "github.com/phrazzld/sanskrit-quiz-api/internal/domain"

// Script markers used by the phonological rules.
const (
	// Halant is the inherent-vowel-suppression marker (virāma). A stem-final
	// halant is conditionally dropped before verb suffixation and signals a
	// bare consonant stem.
	Halant = "्"

	// longAAMatra is the long-ā vowel sign stripped from feminine ā-stem
	// roots before consonant-initial declension suffixes.
	longAAMatra = "ा"

	// noVowelMarker is the placeholder in conjugation suffixes denoting that
	// no theme vowel is inserted; it is removed before concatenation.
	noVowelMarker = "A"
)

// The two irregular pronoun roots whose paradigms bypass regular declension.
const (
	RootAsmad   = "अस्मद्"  // first person
	RootYushmad = "युष्मद्" // second person
)

// Case is the grammatical case (vibhakti) of a noun form. Only the two
// cases the sentence games use are modeled.
type Case string

// Supported cases, named as in the rule tables.
const (
	CaseNominative Case = "प्रथमा"   // prathamā, the subject case
	CaseAccusative Case = "द्वितीया" // dvitīyā, the object case
)

// CaseForRole maps a syntactic role to its fixed grammatical case.
func CaseForRole(role domain.Role) Case {
	if role == domain.RoleObject {
		return CaseAccusative
	}
	return CaseNominative
}

// declensionKey selects a regular declension paradigm.
type declensionKey struct {
	gender domain.Gender
	stem   domain.StemClass
}

// caseSuffixes maps a case to its suffix triple, indexed {sg=0, du=1, pl=2}.
type caseSuffixes map[Case][3]string

// Regular declension paradigms. Suffixes attach directly to the root,
// except for feminine ā-stems where the stem-final ā is deleted first.
var (
	aStemMasculine = caseSuffixes{
		CaseNominative: {"ः", "ौ", "ाः"},
		CaseAccusative: {"म्", "ौ", "ान्"},
	}

	aaStemFeminine = caseSuffixes{
		CaseNominative: {"ा", "े", "ाः"},
		CaseAccusative: {"ाम्", "े", "ाः"},
	}

	aStemNeuter = caseSuffixes{
		CaseNominative: {"म्", "े", "ानि"},
		CaseAccusative: {"म्", "े", "ानि"},
	}

	declensions = map[declensionKey]caseSuffixes{
		{domain.GenderMasculine, domain.StemClassA}: aStemMasculine,
		{domain.GenderFeminine, domain.StemClassAA}: aaStemFeminine,
		{domain.GenderNeuter, domain.StemClassA}:    aStemNeuter,
	}
)

// Irregular pronoun paradigms: complete surface forms, not suffixes,
// indexed by case and number. Gender and stem class are irrelevant here.
var pronounParadigms = map[string]map[Case][3]string{
	RootAsmad: {
		CaseNominative: {"अहम्", "आवाम्", "वयम्"},
		CaseAccusative: {"माम्", "आवाम्", "अस्मान्"},
	},
	RootYushmad: {
		CaseNominative: {"त्वम्", "युवाम्", "यूयम्"},
		CaseAccusative: {"त्वाम्", "युवाम्", "युष्मान्"},
	},
}

// PersonForRoot returns the grammatical person a subject root conjugates
// with: first for asmad, second for yuṣmad, third for every other noun.
func PersonForRoot(root string) domain.Person {
	switch root {
	case RootAsmad:
		return domain.PersonFirst
	case RootYushmad:
		return domain.PersonSecond
	default:
		return domain.PersonThird
	}
}
