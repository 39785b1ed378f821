package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/QHOPAQ/chat-api/internal/logging"
	"github.com/QHOPAQ/chat-api/internal/middleware"
)

type RouterConfig struct {
	Chat        *ChatHandler
	Health      *HealthHandler
	Logger      logging.Logger
	CORSOrigins []string
}

// NewRouter wires the API routes and the middleware chain. Collection routes
// answer with and without a trailing slash.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RecoverPanic(logger))
	r.Use(middleware.LoggingMiddleware(logger))

	r.HandleFunc("/health", cfg.Health.Health).Methods(http.MethodGet)
	r.HandleFunc("/health/ready", cfg.Health.Ready).Methods(http.MethodGet)

	chats := r.PathPrefix("/chats").Subrouter()
	chats.HandleFunc("", cfg.Chat.CreateChat).Methods(http.MethodPost)
	chats.HandleFunc("/", cfg.Chat.CreateChat).Methods(http.MethodPost)
	chats.HandleFunc("/{id}", cfg.Chat.GetChat).Methods(http.MethodGet)
	chats.HandleFunc("/{id}", cfg.Chat.DeleteChat).Methods(http.MethodDelete)
	chats.HandleFunc("/{id}/messages", cfg.Chat.SendMessage).Methods(http.MethodPost)
	chats.HandleFunc("/{id}/messages/", cfg.Chat.SendMessage).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, "Not Found", http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return middleware.CORS(origins)(r)
}
