package main

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/phrazzld/sanskrit-quiz-api/internal/domain"
)

//go:embed seed/*.json
var seedFS embed.FS

// loadSeedData parses the embedded reference lexicon. The data ships inside
// the binary so seeding a fresh database needs no external files.
func loadSeedData() ([]domain.Noun, []domain.Verb, domain.ConjugationTable, error) {
	var nouns []domain.Noun
	if err := unmarshalSeedFile("seed/nouns.json", &nouns); err != nil {
		return nil, nil, nil, err
	}

	var verbs []domain.Verb
	if err := unmarshalSeedFile("seed/verbs.json", &verbs); err != nil {
		return nil, nil, nil, err
	}

	var table domain.ConjugationTable
	if err := unmarshalSeedFile("seed/conjugations.json", &table); err != nil {
		return nil, nil, nil, err
	}

	return nouns, verbs, table, nil
}

func unmarshalSeedFile(name string, v interface{}) error {
	data, err := seedFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read embedded %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
