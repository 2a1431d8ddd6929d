package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the embedded reference lexicon into the database",
	Long: `Seed replaces the nouns, verbs and conjugations tables with the
reference lexicon embedded in this binary. Existing rows are dropped
inside a single transaction.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		nouns, verbs, table, err := loadSeedData()
		if err != nil {
			return err
		}

		if err := corpusService.SeedReference(cmd.Context(), nouns, verbs, table); err != nil {
			return fmt.Errorf("seed reference data: %w", err)
		}

		fmt.Printf("seeded %d nouns, %d verbs, %d tenses\n", len(nouns), len(verbs), len(table))
		return nil
	},
}
