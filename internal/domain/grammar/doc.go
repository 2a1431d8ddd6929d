// Package grammar implements the morphological synthesis rules of the
// Sanskrit learning system: noun declension, verb conjugation, combinatorial
// sentence and matching-pair synthesis, and the distractor and explanation
// generation used at quiz-serving time.
//
// Everything here is a pure, bounded computation over read-only rule tables.
// The declension tables and pronoun paradigms are package data; the
// conjugation table is loaded from the reference store and passed in.
// Lookup misses never fail hard: the inflectors fall back to the unmodified
// root, and the generators degrade to smaller output.
package grammar
