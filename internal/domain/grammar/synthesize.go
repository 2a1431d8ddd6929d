package grammar

import "github.com/phrazzld/sanskrit-quiz-api/internal/domain"

// ValidNouns returns the nouns carrying the given entity class that are
// usable in the given role, preserving lexicon order.
func ValidNouns(nouns []domain.Noun, entityClass string, role domain.Role) []domain.Noun {
	var out []domain.Noun
	for _, n := range nouns {
		if n.HasEntityClass(entityClass) && n.UsableAs(role) {
			out = append(out, n)
		}
	}
	return out
}

// SynthesizeSentences enumerates every valid sentence for all tenses and
// verbs. This is the full combinatorial expansion used offline to populate
// the corpus: no deduplication, no sampling. Output order is insertion
// order; within a verb, numbers always iterate {sg, du, pl}.
func SynthesizeSentences(
	verbs []domain.Verb,
	nouns []domain.Noun,
	table domain.ConjugationTable,
) []domain.SentenceRecord {
	var records []domain.SentenceRecord
	for _, tense := range domain.AllTenses {
		for _, v := range verbs {
			records = append(records, SentencesForVerb(v, nouns, table, tense)...)
		}
	}
	return records
}

// SentencesForVerb enumerates all sentences for one verb in one tense:
// every allowed subject class, every qualifying subject noun, every
// grammatical number, and, for transitive verbs, the full cross product
// with every qualifying object noun and object number. Word order is fixed
// subject[-object]-verb, joined with single spaces.
func SentencesForVerb(
	v domain.Verb,
	nouns []domain.Noun,
	table domain.ConjugationTable,
	tense domain.Tense,
) []domain.SentenceRecord {
	var records []domain.SentenceRecord

	for _, subjClass := range v.AllowedSubjectClasses {
		for _, subject := range ValidNouns(nouns, subjClass, domain.RoleSubject) {
			for _, number := range domain.AllNumbers {
				person := PersonForRoot(subject.Root)
				subjectForm := InflectNoun(subject, domain.RoleSubject, number)
				verbForm := InflectVerb(v, person, number, tense, table)

				subjectRef := domain.NounRef{
					Root:   subject.Root,
					Form:   subjectForm,
					Number: number,
					Person: person,
					Gender: subject.Gender,
					Stem:   subject.StemClass,
				}
				verbRef := domain.VerbRef{
					Root:    v.Root,
					Form:    verbForm,
					Person:  person,
					Number:  number,
					Class:   v.Class,
					Meaning: v.Meaning,
				}

				if v.RequiresObject {
					for _, objClass := range v.AllowedObjectClasses {
						for _, obj := range ValidNouns(nouns, objClass, domain.RoleObject) {
							for _, objNumber := range domain.AllNumbers {
								objectForm := InflectNoun(obj, domain.RoleObject, objNumber)
								objectRef := domain.NounRef{
									Root:   obj.Root,
									Form:   objectForm,
									Number: objNumber,
									Person: domain.PersonThird,
									Gender: obj.Gender,
									Stem:   obj.StemClass,
								}
								records = append(records, domain.SentenceRecord{
									Sentence: subjectForm + " " + objectForm + " " + verbForm,
									Tense:    tense,
									Subject:  subjectRef,
									Object:   &objectRef,
									Verb:     verbRef,
								})
							}
						}
					}
				} else {
					records = append(records, domain.SentenceRecord{
						Sentence: subjectForm + " " + verbForm,
						Tense:    tense,
						Subject:  subjectRef,
						Object:   nil,
						Verb:     verbRef,
					})
				}
			}
		}
	}

	return records
}
