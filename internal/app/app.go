// File: internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"gorm.io/gorm"

	"github.com/QHOPAQ/chat-api/internal/config"
	"github.com/QHOPAQ/chat-api/internal/database"
	"github.com/QHOPAQ/chat-api/internal/handlers"
	"github.com/QHOPAQ/chat-api/internal/logging"
	"github.com/QHOPAQ/chat-api/internal/repository"
	"github.com/QHOPAQ/chat-api/internal/repository/chat"
	"github.com/QHOPAQ/chat-api/internal/repository/message"
	"github.com/QHOPAQ/chat-api/internal/services"
)

const serviceName = "chat-api"

// Application aggregates the wired services and the HTTP handler.
type Application struct {
	Config      *config.Config
	Logger      logging.Logger
	DB          *gorm.DB
	ChatService *services.ChatService
	Handler     http.Handler
}

// New opens the database and wires repositories, services and handlers.
// It does not run migrations.
func New(cfg *config.Config) (*Application, error) {
	logger := logging.New(serviceName, cfg.Log.Level, cfg.Log.Format, os.Stdout)

	db, err := database.Open(cfg.Database, cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	chatRepo := chat.NewChatRepository(db, logger)
	messageRepo := message.NewMessageRepository(db, logger)

	chatService, err := services.NewChatService(chatRepo, messageRepo, repository.NewTxManager(db), logger)
	if err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("init chat service: %w", err)
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		Chat:        handlers.NewChatHandler(chatService, logger),
		Health:      handlers.NewHealthHandler(database.NewHealthChecker(db), logger),
		Logger:      logger,
		CORSOrigins: cfg.CORSOrigins,
	})

	return &Application{
		Config:      cfg,
		Logger:      logger,
		DB:          db,
		ChatService: chatService,
		Handler:     router,
	}, nil
}

func (a *Application) Migrate() error {
	a.Logger.Info("running_migrations", "driver", a.Config.Database.Driver)
	return database.Migrate(a.DB)
}

// Serve listens on the configured port until ctx is cancelled, then shuts
// down gracefully within Config.ShutdownTimeout.
func (a *Application) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+a.Config.ServerPort)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return a.serve(ctx, ln)
}

func (a *Application) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           a.Handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("server_started", "addr", ln.Addr().String(), "env", a.Config.Environment)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.Logger.Info("server_shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	a.Logger.Info("server_stopped")
	return nil
}

func (a *Application) Close() error {
	return database.Close(a.DB)
}
