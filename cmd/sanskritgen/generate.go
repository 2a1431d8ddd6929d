package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Rebuild the sentence and matching-game corpora",
	Long: `Generate reads the seeded lexicon, synthesizes every grammatical
subject-verb-object combination across all tenses and numbers, and
replaces the stored corpora atomically. Run seed first on a fresh
database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := corpusService.GenerateCorpora(cmd.Context())
		if err != nil {
			return fmt.Errorf("generate corpora: %w", err)
		}

		fmt.Printf("generated %d sentences, %d matching entries\n",
			result.SentenceCount, result.MatchingCount)
		return nil
	},
}
