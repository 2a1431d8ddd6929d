// Package main provides the sanskritgen CLI, the offline companion to the
// quiz API server. It seeds the reference lexicon into postgres, rebuilds
// the sentence and matching-game corpora, and dumps the corpora as JSON.
package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/phrazzld/sanskrit-quiz-api/internal/config"
	"github.com/phrazzld/sanskrit-quiz-api/internal/platform/logger"
	"github.com/phrazzld/sanskrit-quiz-api/internal/platform/postgres"
	"github.com/phrazzld/sanskrit-quiz-api/internal/service"
	"github.com/phrazzld/sanskrit-quiz-api/internal/store"
)

var (
	// databaseURL is set by the --database-url flag and overrides the
	// configured connection string.
	databaseURL string

	appLogger *slog.Logger
	db        *sql.DB

	corpusService service.CorpusService
	sentenceStore store.SentenceStore
	matchingStore store.MatchingGameStore
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sanskritgen",
	Short: "Offline corpus generator for the Sanskrit quiz API",
	Long: `sanskritgen manages the reference lexicon and generated corpora
backing the Sanskrit quiz API.

It connects to the same postgres database as the server. The typical
workflow is seed (load the embedded lexicon), then generate (synthesize
the sentence and matching-game corpora).`,
	PersistentPreRunE: initServices,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if db != nil {
			return db.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().
		StringVar(&databaseURL, "database-url", "", "postgres connection string (default: SANSKRIT_DATABASE_URL)")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(dumpCmd)
}

// initServices loads configuration, connects to the database, and builds
// the corpus service the subcommands share.
func initServices(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	appLogger, err = logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("set up logger: %w", err)
	}

	url := cfg.Database.URL
	if databaseURL != "" {
		url = databaseURL
	}

	db, err = sql.Open("pgx", url)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(cmd.Context()); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	sentenceStore = postgres.NewPostgresSentenceStore(db, appLogger)
	matchingStore = postgres.NewPostgresMatchingGameStore(db, appLogger)

	corpusService, err = service.NewCorpusService(
		db,
		postgres.NewPostgresNounStore(db, appLogger),
		postgres.NewPostgresVerbStore(db, appLogger),
		postgres.NewPostgresConjugationStore(db, appLogger),
		sentenceStore,
		matchingStore,
		appLogger,
	)
	if err != nil {
		return fmt.Errorf("build corpus service: %w", err)
	}

	return nil
}
