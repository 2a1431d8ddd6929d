package grammar

import "github.com/phrazzld/sanskrit-quiz-api/internal/domain"

// Shared test lexicon and rule tables. Roots and suffixes mirror the shape
// of the production reference data: bare consonant stems end in a halant,
// theme-vowel-less suffixes carry the "A" placeholder.

func testNouns() []domain.Noun {
	return []domain.Noun{
		{
			Root:            "बाल",
			Gender:          domain.GenderMasculine,
			StemClass:       domain.StemClassA,
			EntityClasses:   []string{"animate"},
			UsableAsSubject: true,
			UsableAsObject:  true,
		},
		{
			Root:            "सीता",
			Gender:          domain.GenderFeminine,
			StemClass:       domain.StemClassAA,
			EntityClasses:   []string{"animate"},
			UsableAsSubject: true,
			UsableAsObject:  true,
		},
		{
			Root:            "फल",
			Gender:          domain.GenderNeuter,
			StemClass:       domain.StemClassA,
			EntityClasses:   []string{"inanimate"},
			UsableAsSubject: false,
			UsableAsObject:  true,
		},
		{
			Root:            RootAsmad,
			Gender:          domain.GenderNone,
			StemClass:       domain.StemClassNone,
			EntityClasses:   []string{"animate"},
			UsableAsSubject: true,
			UsableAsObject:  false,
		},
		{
			Root:            RootYushmad,
			Gender:          domain.GenderNone,
			StemClass:       domain.StemClassNone,
			EntityClasses:   []string{"animate"},
			UsableAsSubject: true,
			UsableAsObject:  false,
		},
	}
}

func testVerbGam() domain.Verb {
	return domain.Verb{
		Root:                  "गच्छ्",
		Meaning:               "to go",
		Class:                 domain.VerbClass1P,
		PastStem:              "अगच्छ्",
		FutureStem:            "गमिष्य्",
		RequiresObject:        false,
		AllowedSubjectClasses: []string{"animate"},
	}
}

func testVerbPath() domain.Verb {
	return domain.Verb{
		Root:                  "पठ्",
		Meaning:               "to read",
		Class:                 domain.VerbClass1P,
		PastStem:              "अपठ्",
		FutureStem:            "पठिष्य्",
		RequiresObject:        true,
		AllowedSubjectClasses: []string{"animate"},
		AllowedObjectClasses:  []string{"inanimate"},
	}
}

func testVerbNrit() domain.Verb {
	return domain.Verb{
		Root:                  "नृत्य्",
		Meaning:               "to dance",
		Class:                 domain.VerbClass4P,
		PastStem:              "अनृत्य्",
		RequiresObject:        false,
		AllowedSubjectClasses: []string{"animate"},
	}
}

func testConjugations() domain.ConjugationTable {
	presentSuffixes := domain.SuffixSet{
		"1_sg": "ामि", "2_sg": "सि", "3_sg": "ति",
		"1_du": "ावः", "2_du": "थः", "3_du": "तः",
		"1_pl": "ामः", "2_pl": "थ", "3_pl": "Aन्ति",
	}
	pastSuffixes := domain.SuffixSet{
		"1_sg": "म्", "2_sg": "ः", "3_sg": "त्",
		"1_du": "ाव", "2_du": "तम्", "3_du": "ताम्",
		"1_pl": "ाम", "2_pl": "त", "3_pl": "न्",
	}
	futureSuffixes := domain.SuffixSet{
		"1_sg": "ामि", "2_sg": "सि", "3_sg": "ति",
		"1_du": "ावः", "2_du": "थः", "3_du": "तः",
		"1_pl": "ामः", "2_pl": "थ", "3_pl": "Aन्ति",
	}
	fourthPresent := domain.SuffixSet{
		"1_sg": "Aामि", "2_sg": "Aसि", "3_sg": "Aति",
		"1_du": "Aावः", "2_du": "Aथः", "3_du": "Aतः",
		"1_pl": "Aामः", "2_pl": "Aथ", "3_pl": "Aन्ति",
	}

	return domain.ConjugationTable{
		domain.TensePresent: {
			domain.VerbClass1P: presentSuffixes,
			domain.VerbClass4P: fourthPresent,
		},
		domain.TensePast: {
			domain.VerbClass1P: pastSuffixes,
			domain.VerbClass4P: pastSuffixes,
		},
		domain.TenseFuture: {
			domain.VerbClass1P: futureSuffixes,
		},
	}
}
