package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/sanskrit-quiz-api/internal/api/shared"
	"github.com/phrazzld/sanskrit-quiz-api/internal/events"
	"github.com/phrazzld/sanskrit-quiz-api/internal/redact"
	"github.com/phrazzld/sanskrit-quiz-api/internal/service"
	"github.com/phrazzld/sanskrit-quiz-api/internal/task"
)

// DBPinger reports database reachability. *sql.DB satisfies it.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

// CorpusHandler serves corpus regeneration and service status endpoints.
// Regeneration is asynchronous: the handler emits a task request event and
// returns immediately while the task runner rebuilds the corpora.
type CorpusHandler struct {
	corpusService service.CorpusService
	eventEmitter  events.EventEmitter
	db            DBPinger
	logger        *slog.Logger
}

// NewCorpusHandler creates a new CorpusHandler with the given dependencies.
func NewCorpusHandler(
	corpusService service.CorpusService,
	eventEmitter events.EventEmitter,
	db DBPinger,
	logger *slog.Logger,
) *CorpusHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CorpusHandler{
		corpusService: corpusService,
		eventEmitter:  eventEmitter,
		db:            db,
		logger:        logger,
	}
}

// Generate handles POST /api/generate.
func (h *CorpusHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	event, err := events.NewTaskRequestEvent(
		task.TaskTypeCorpusGeneration,
		map[string]string{"requested_by": userID.String()},
	)
	if err != nil {
		h.logger.Error("failed to build corpus generation event",
			"error", redact.Error(err),
			"user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to schedule corpus generation")
		return
	}

	if err := h.eventEmitter.EmitEvent(r.Context(), event); err != nil {
		h.logger.Error("failed to emit corpus generation event",
			"error", redact.Error(err),
			"user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to schedule corpus generation")
		return
	}

	h.logger.Info("corpus generation scheduled", "user_id", userID)
	shared.RespondWithJSON(w, r, http.StatusAccepted, GenerateResponse{Status: "generation scheduled"})
}

// Status handles GET /api/status.
func (h *CorpusHandler) Status(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{Status: "ok", Database: "ok"}

	if err := h.db.PingContext(r.Context()); err != nil {
		h.logger.Error("database ping failed", "error", redact.Error(err))
		resp.Status = "degraded"
		resp.Database = "unreachable"
		shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, resp)
		return
	}

	count, err := h.corpusService.SentenceCount(r.Context())
	if err != nil {
		h.logger.Error("failed to count sentences", "error", redact.Error(err))
		resp.Status = "degraded"
		shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, resp)
		return
	}
	resp.SentenceCount = count

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
