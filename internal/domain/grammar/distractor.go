package grammar

import (
	"log/slog"
	"math/rand"
	"regexp"
	"slices"
	"strings"

	"github.com/phrazzld/sanskrit-quiz-api/internal/domain"
)

// Distractor caps. The verb game uses the default cap of 2 wrong options
// alongside the correct form; the matching game's looser variant allows 3.
const (
	DefaultMaxDistractors  = 2
	ExtendedMaxDistractors = 3
)

// devanagariOnly matches forms consisting entirely of characters in the
// Devanagari Unicode block.
var devanagariOnly = regexp.MustCompile(`^[\x{0900}-\x{097F}]+$`)

// allPersonNumberKeys enumerates every "{person}_{number}" cell of a
// conjugation paradigm.
var allPersonNumberKeys = []string{
	"1_sg", "2_sg", "3_sg",
	"1_du", "2_du", "3_du",
	"1_pl", "2_pl", "3_pl",
}

// DistractorGenerator builds plausible-but-wrong verb forms for
// multiple-choice quizzes from the shared conjugation table and verb
// lexicon. It is safe for concurrent use: all state is read-only after
// construction, and each call takes its own random source.
type DistractorGenerator struct {
	table  domain.ConjugationTable
	verbs  map[string]domain.Verb
	logger *slog.Logger
}

// NewDistractorGenerator creates a DistractorGenerator over the given
// rule table and verb lexicon. If logger is nil, slog.Default is used.
func NewDistractorGenerator(
	table domain.ConjugationTable,
	verbs []domain.Verb,
	logger *slog.Logger,
) *DistractorGenerator {
	if logger == nil {
		logger = slog.Default()
	}

	index := make(map[string]domain.Verb, len(verbs))
	for _, v := range verbs {
		index[verbIndexKey(v.Root, v.Class)] = v
	}

	return &DistractorGenerator{
		table:  table,
		verbs:  index,
		logger: logger.With(slog.String("component", "distractor_generator")),
	}
}

func verbIndexKey(root string, class domain.VerbClass) string {
	return root + "/" + string(class)
}

// Generate produces up to max alternative inflected forms that are
// plausible wrong answers for the given correct form.
//
// The candidate person/number cells are shuffled with the caller's random
// source before iteration. The shuffle is part of the contract, not an
// implementation detail: when more candidates are valid than max, the
// iteration order decides which ones are chosen, and concurrent requests
// must not share a source.
//
// Misses degrade, never fail: a missing conjugation cell or verb record
// yields an empty list, and individual candidate failures are logged and
// skipped. A result shorter than max means the caller must decide whether
// the question is still servable.
func (g *DistractorGenerator) Generate(
	rng *rand.Rand,
	correctForm string,
	root string,
	class domain.VerbClass,
	tense domain.Tense,
	person domain.Person,
	number domain.GrammaticalNumber,
	max int,
) []string {
	suffixes, ok := g.table.SuffixesFor(tense, class)
	if !ok {
		g.logger.Warn("no conjugation entries",
			slog.String("tense", string(tense)),
			slog.String("verb_class", string(class)))
		return nil
	}

	verb, ok := g.verbs[verbIndexKey(root, class)]
	if !ok {
		g.logger.Warn("no verb metadata",
			slog.String("root", root),
			slog.String("verb_class", string(class)))
		return nil
	}

	// Same stem selection and halant-drop rule as regular inflection, so
	// distractors are built on the stem the correct form used.
	stem := conjugatedStem(verb, tense)

	correctKey := domain.PersonNumberKey(person, number)
	candidates := make([]string, 0, len(allPersonNumberKeys))
	for _, key := range allPersonNumberKeys {
		if key != correctKey {
			candidates = append(candidates, key)
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	var distractors []string
	for _, key := range candidates {
		suffix, ok := suffixes[key]
		if !ok {
			g.logger.Warn("no suffix for candidate",
				slog.String("tense", string(tense)),
				slog.String("verb_class", string(class)),
				slog.String("person_number", key))
			continue
		}
		form := stem + strings.ReplaceAll(suffix, noVowelMarker, "")
		if form == correctForm || slices.Contains(distractors, form) {
			continue
		}
		if !devanagariOnly.MatchString(form) {
			g.logger.Warn("candidate outside Devanagari block",
				slog.String("form", form),
				slog.String("person_number", key))
			continue
		}
		distractors = append(distractors, form)
		if len(distractors) >= max {
			break
		}
	}

	if len(distractors) < max {
		g.logger.Warn("insufficient distractors",
			slog.String("correct_form", correctForm),
			slog.String("tense", string(tense)),
			slog.String("verb_class", string(class)),
			slog.Int("found", len(distractors)),
			slog.Int("wanted", max))
	}
	return distractors
}
