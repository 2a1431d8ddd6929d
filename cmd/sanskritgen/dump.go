package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/phrazzld/sanskrit-quiz-api/internal/store"
)

var dumpOutDir string

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Write the generated corpora to JSON files",
	Long: `Dump exports the stored sentence and matching-game corpora as
sentences.json and matching.json in the output directory. Useful for
inspecting generation output or diffing corpora across lexicon changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sentences, err := sentenceStore.GetAll(cmd.Context(), store.SentenceFilter{})
		if err != nil {
			return fmt.Errorf("load sentences: %w", err)
		}

		entries, err := matchingStore.GetAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("load matching entries: %w", err)
		}

		if err := os.MkdirAll(dumpOutDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}

		if err := writeJSONFile(filepath.Join(dumpOutDir, "sentences.json"), sentences); err != nil {
			return err
		}
		if err := writeJSONFile(filepath.Join(dumpOutDir, "matching.json"), entries); err != nil {
			return err
		}

		fmt.Printf("wrote %d sentences and %d matching entries to %s\n",
			len(sentences), len(entries), dumpOutDir)
		return nil
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpOutDir, "out", "dataset", "output directory for corpus JSON files")
}

func writeJSONFile(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
