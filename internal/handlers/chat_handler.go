// File: internal/handlers/chat_handler.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/QHOPAQ/chat-api/internal/domain"
	"github.com/QHOPAQ/chat-api/internal/dtos"
	"github.com/QHOPAQ/chat-api/internal/logging"
	chatservice "github.com/QHOPAQ/chat-api/internal/services/chat"
)

const maxBodyBytes = 1 << 20

// ChatUseCases is the part of services.ChatService the HTTP layer depends on.
type ChatUseCases interface {
	CreateChat(ctx context.Context, title string) (*domain.Chat, error)
	GetChatDetail(ctx context.Context, chatID uint, limit int) (*chatservice.ChatDetail, error)
	SendMessage(ctx context.Context, chatID uint, text string) (*domain.Message, error)
	DeleteChat(ctx context.Context, chatID uint) error
}

type ChatHandler struct {
	ChatService ChatUseCases
	Logger      logging.Logger
}

func NewChatHandler(cs ChatUseCases, logger logging.Logger) *ChatHandler {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &ChatHandler{
		ChatService: cs,
		Logger:      logger,
	}
}

// CreateChat handles POST /chats/.
func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	var req dtos.ChatCreateRequestDTO
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	chat, err := h.ChatService.CreateChat(r.Context(), req.Title)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dtos.ChatFromDomain(*chat))
}

// GetChat handles GET /chats/{id}?limit=N.
func (h *ChatHandler) GetChat(w http.ResponseWriter, r *http.Request) {
	chatID, err := parseChatID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	detail, err := h.ChatService.GetChatDetail(r.Context(), chatID, limit)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dtos.ChatDetailFromDomain(*detail))
}

// SendMessage handles POST /chats/{id}/messages/.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	chatID, err := parseChatID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	var req dtos.MessageCreateRequestDTO
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	message, err := h.ChatService.SendMessage(r.Context(), chatID, req.Text)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dtos.MessageFromDomain(*message))
}

// DeleteChat handles DELETE /chats/{id}. Messages go with the chat.
func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	chatID, err := parseChatID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	if err := h.ChatService.DeleteChat(r.Context(), chatID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseChatID(r *http.Request) (uint, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.New("chat_id must be a positive integer")
	}
	return uint(id), nil
}

// parseLimit reads ?limit, defaulting to 20. Out-of-range values are
// rejected, never clamped.
func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return chatservice.DefaultMessageLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > chatservice.MaxMessageLimit {
		return 0, errors.New("limit must be an integer between 1 and 100")
	}
	return limit, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return errors.New("request body too large")
		case errors.Is(err, io.EOF):
			return errors.New("request body is required")
		default:
			return errors.New("request body must be a valid JSON object")
		}
	}
	return nil
}
