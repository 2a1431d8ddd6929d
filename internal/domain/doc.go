// Package domain contains the core entities of the Sanskrit learning system:
// lexicon records (nouns, verbs), the grammatical category enums they are
// classified by, and the generated corpus records (sentences, matching-game
// entries) served to the quiz games. The morphological rules that combine
// these entities live in the domain/grammar subpackage.
package domain
