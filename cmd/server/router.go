package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/sanskrit-quiz-api/internal/api"
	apiMiddleware "github.com/phrazzld/sanskrit-quiz-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	allowedOrigins := app.config.Server.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authHandler := api.NewAuthHandler(app.userService, app.jwtService, app.logger)
	quizHandler := api.NewQuizHandler(app.quizService, app.logger)
	corpusHandler := api.NewCorpusHandler(app.corpusService, app.eventEmitter, app.db, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Quiz game endpoints (public)
		r.Get("/get-sentence-game", quizHandler.SentenceGame)
		r.Get("/get-game", quizHandler.VerbGame)
		r.Get("/get-tense-question", quizHandler.TenseQuestion)
		r.Get("/get-tense-questions", quizHandler.TenseQuestions)
		r.Get("/get-number-game", quizHandler.NumberGame)
		r.Get("/get-matching-game", quizHandler.MatchingGame)
		r.Get("/sentences", quizHandler.Sentences)

		// Service status (public)
		r.Get("/status", corpusHandler.Status)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/profile", authHandler.Profile)
			r.Post("/update-score", authHandler.UpdateScore)

			r.Post("/generate", corpusHandler.Generate)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
