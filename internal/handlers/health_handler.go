package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/QHOPAQ/chat-api/internal/dtos"
	"github.com/QHOPAQ/chat-api/internal/logging"
)

type HealthChecker interface {
	Check(ctx context.Context) error
}

type HealthHandler struct {
	checker HealthChecker
	logger  logging.Logger
}

func NewHealthHandler(checker HealthChecker, logger logging.Logger) *HealthHandler {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &HealthHandler{checker: checker, logger: logger}
}

// Health is the liveness probe. It never touches storage.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dtos.HealthResponseDTO{Status: "ok"})
}

// Ready reports whether the database answers a ping within two seconds.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.checker == nil {
		writeJSON(w, http.StatusOK, dtos.HealthResponseDTO{Status: "ok"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.checker.Check(ctx); err != nil {
		h.logger.Warn("readiness_check_failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, dtos.HealthResponseDTO{Status: "unavailable", Database: "down"})
		return
	}
	writeJSON(w, http.StatusOK, dtos.HealthResponseDTO{Status: "ok", Database: "up"})
}
