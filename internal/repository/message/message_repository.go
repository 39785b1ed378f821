package message

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"gorm.io/gorm"

	"github.com/QHOPAQ/chat-api/internal/domain"
	"github.com/QHOPAQ/chat-api/internal/logging"
	"github.com/QHOPAQ/chat-api/internal/repository"
	"github.com/QHOPAQ/chat-api/internal/repository/chat"
)

var ErrInvalidLimit = errors.New("limit must be positive")

type gormMessageRepository struct {
	db     *gorm.DB
	logger logging.Logger
}

func NewMessageRepository(db *gorm.DB, logger logging.Logger) MessageRepository {
	return &gormMessageRepository{db: db, logger: logger}
}

// Create inserts the message. The chats foreign key rejects a chat_id that no
// longer exists; that case is reported as chat.ErrChatNotFound.
func (r *gormMessageRepository) Create(ctx context.Context, message *domain.Message) (*domain.Message, error) {
	if message == nil {
		return nil, errors.New("message cannot be nil")
	}

	if err := repository.Conn(ctx, r.db).Create(message).Error; err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, chat.ErrChatNotFound
		}
		r.logger.Error("create_message_failed", "chat_id", message.ChatID, "error", err)
		return nil, fmt.Errorf("create message in chat %d: %w", message.ChatID, err)
	}

	r.logger.Debug("message_inserted", "chat_id", message.ChatID, "message_id", message.ID)
	return message, nil
}

// FindLastByChatID reads newest-first with a bounded LIMIT over the
// (chat_id, created_at, id) index, then reverses in memory. Cost is O(limit)
// regardless of how long the chat history is.
func (r *gormMessageRepository) FindLastByChatID(ctx context.Context, chatID uint, limit int) ([]domain.Message, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	messages := make([]domain.Message, 0, limit)
	err := repository.Conn(ctx, r.db).
		Where("chat_id = ?", chatID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		r.logger.Error("list_last_messages_failed", "chat_id", chatID, "limit", limit, "error", err)
		return nil, fmt.Errorf("list last %d messages of chat %d: %w", limit, chatID, err)
	}

	slices.Reverse(messages)
	return messages, nil
}

func (r *gormMessageRepository) CountByChatID(ctx context.Context, chatID uint) (int64, error) {
	var count int64
	err := repository.Conn(ctx, r.db).Model(&domain.Message{}).Where("chat_id = ?", chatID).Count(&count).Error
	if err != nil {
		r.logger.Error("count_messages_failed", "chat_id", chatID, "error", err)
		return 0, fmt.Errorf("count messages of chat %d: %w", chatID, err)
	}
	return count, nil
}
