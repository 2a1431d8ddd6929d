package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/sanskrit-quiz-api/internal/api/shared"
	"github.com/phrazzld/sanskrit-quiz-api/internal/service"
)

// QuizHandler serves the quiz game endpoints.
type QuizHandler struct {
	quizService service.QuizService
	logger      *slog.Logger
}

// NewQuizHandler creates a new QuizHandler with the given dependencies.
func NewQuizHandler(quizService service.QuizService, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizHandler{
		quizService: quizService,
		logger:      logger,
	}
}

// SentenceGame handles GET /api/get-sentence-game.
func (h *QuizHandler) SentenceGame(w http.ResponseWriter, r *http.Request) {
	question, err := h.quizService.SentenceGame(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load sentence game")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, question)
}

// VerbGame handles GET /api/get-game.
func (h *QuizHandler) VerbGame(w http.ResponseWriter, r *http.Request) {
	question, err := h.quizService.VerbGame(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load verb game")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, question)
}

// TenseQuestion handles GET /api/get-tense-question.
func (h *QuizHandler) TenseQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := h.quizService.TenseQuestion(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load tense question")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, question)
}

// TenseQuestions handles GET /api/get-tense-questions?count=N.
func (h *QuizHandler) TenseQuestions(w http.ResponseWriter, r *http.Request) {
	count, err := getQuestionCount(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	questions, err := h.quizService.TenseQuestions(r.Context(), count)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load tense questions")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, questions)
}

// NumberGame handles GET /api/get-number-game.
func (h *QuizHandler) NumberGame(w http.ResponseWriter, r *http.Request) {
	record, err := h.quizService.NumberGame(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load number game")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, record)
}

// MatchingGame handles GET /api/get-matching-game.
func (h *QuizHandler) MatchingGame(w http.ResponseWriter, r *http.Request) {
	entries, err := h.quizService.MatchingGame(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load matching game")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, entries)
}

// Sentences handles GET /api/sentences.
func (h *QuizHandler) Sentences(w http.ResponseWriter, r *http.Request) {
	sentences, err := h.quizService.AllSentences(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load sentences")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, sentences)
}
