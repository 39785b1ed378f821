// File: internal/repository/message/interface.go
package message

import (
	"context"

	"github.com/QHOPAQ/chat-api/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) (*domain.Message, error)
	// FindLastByChatID returns at most limit of the newest messages of a chat,
	// oldest first.
	FindLastByChatID(ctx context.Context, chatID uint, limit int) ([]domain.Message, error)
	CountByChatID(ctx context.Context, chatID uint) (int64, error)
}
