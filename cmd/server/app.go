package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/sanskrit-quiz-api/internal/config"
	"github.com/phrazzld/sanskrit-quiz-api/internal/events"
	"github.com/phrazzld/sanskrit-quiz-api/internal/platform/postgres"
	"github.com/phrazzld/sanskrit-quiz-api/internal/service"
	"github.com/phrazzld/sanskrit-quiz-api/internal/service/auth"
	"github.com/phrazzld/sanskrit-quiz-api/internal/store"
	"github.com/phrazzld/sanskrit-quiz-api/internal/task"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	userStore     store.UserStore
	sentenceStore store.SentenceStore
	matchingStore store.MatchingGameStore
	nounStore     store.NounStore
	verbStore     store.VerbStore
	conjStore     store.ConjugationStore
	taskStore     task.TaskStore

	// Services
	jwtService    auth.JWTService
	quizService   service.QuizService
	userService   service.UserService
	corpusService service.CorpusService

	// Event system and background tasks
	eventEmitter events.EventEmitter
	taskRunner   *task.TaskRunner
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Stores
	app.userStore = postgres.NewPostgresUserStore(db, cfg.Auth.BcryptCost, logger)
	app.sentenceStore = postgres.NewPostgresSentenceStore(db, logger)
	app.matchingStore = postgres.NewPostgresMatchingGameStore(db, logger)
	app.nounStore = postgres.NewPostgresNounStore(db, logger)
	app.verbStore = postgres.NewPostgresVerbStore(db, logger)
	app.conjStore = postgres.NewPostgresConjugationStore(db, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db)

	// Services
	app.quizService, err = service.NewQuizService(
		app.sentenceStore,
		app.matchingStore,
		app.conjStore,
		app.verbStore,
		cfg.Quiz.MaxDistractors,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create quiz service: %w", err)
	}

	app.userService, err = service.NewUserService(
		app.userStore,
		auth.NewBcryptVerifier(),
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	app.corpusService, err = service.NewCorpusService(
		db,
		app.nounStore,
		app.verbStore,
		app.conjStore,
		app.sentenceStore,
		app.matchingStore,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create corpus service: %w", err)
	}

	// Background task processing
	app.taskRunner, err = setupTaskRunner(app)
	if err != nil {
		return nil, fmt.Errorf("failed to setup task runner: %w", err)
	}

	// Recover tasks that were left pending or stuck by a previous run.
	if err := app.taskRunner.Recover(); err != nil {
		logger.Warn("task recovery failed", "error", err)
	}

	// Event system: the corpus regeneration endpoint emits task request
	// events, which the factory handler turns into runnable tasks.
	taskFactory := task.NewCorpusGenerationTaskFactory(app.corpusService, logger)
	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(task.NewTaskFactoryEventHandler(taskFactory, app.taskRunner, logger))
	app.eventEmitter = emitter

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// setupTaskRunner initializes and starts the background task processor.
func setupTaskRunner(app *application) (*task.TaskRunner, error) {
	taskRunner := task.NewTaskRunner(app.taskStore, task.TaskRunnerConfig{
		QueueSize:    app.config.Task.QueueSize,
		WorkerCount:  app.config.Task.WorkerCount,
		StuckTaskAge: time.Duration(app.config.Task.StuckTaskAgeMinutes) * time.Minute,
	}, app.logger)

	if err := taskRunner.Start(); err != nil {
		return nil, fmt.Errorf("failed to start task runner: %w", err)
	}

	return taskRunner, nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.taskRunner != nil {
		app.taskRunner.Stop()
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
