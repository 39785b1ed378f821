package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/QHOPAQ/chat-api/internal/dtos"
	"github.com/QHOPAQ/chat-api/internal/middleware"
	chatservice "github.com/QHOPAQ/chat-api/internal/services/chat"
)

// writeJSON is a helper for sending JSON responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError is a helper for sending JSON error responses.
func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, dtos.ErrorResponseDTO{Detail: message})
}

// writeServiceError maps the service error taxonomy to HTTP. Storage causes
// are never sent to the client.
func (h *ChatHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ce *chatservice.ChatError
	switch {
	case chatservice.IsNotFound(err):
		writeError(w, chatservice.MsgChatNotFound, http.StatusNotFound)
	case errors.As(err, &ce) && ce.Type == chatservice.ErrTypeValidation:
		writeError(w, ce.Message, http.StatusUnprocessableEntity)
	default:
		h.Logger.Error("request_failed",
			"path", r.URL.Path,
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err,
		)
		writeError(w, chatservice.MsgStorage, http.StatusInternalServerError)
	}
}
