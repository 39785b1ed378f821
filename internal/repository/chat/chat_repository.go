package chat

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/QHOPAQ/chat-api/internal/domain"
	"github.com/QHOPAQ/chat-api/internal/logging"
	"github.com/QHOPAQ/chat-api/internal/repository"
)

var ErrChatNotFound = errors.New("chat not found")

type gormChatRepository struct {
	db     *gorm.DB
	logger logging.Logger
}

func NewChatRepository(db *gorm.DB, logger logging.Logger) ChatRepository {
	return &gormChatRepository{db: db, logger: logger}
}

// Create inserts the chat; ID and CreatedAt are filled in by storage.
func (r *gormChatRepository) Create(ctx context.Context, chat *domain.Chat) (*domain.Chat, error) {
	if chat == nil {
		return nil, errors.New("chat cannot be nil")
	}

	if err := repository.Conn(ctx, r.db).Create(chat).Error; err != nil {
		r.logger.Error("create_chat_failed", "error", err)
		return nil, fmt.Errorf("create chat: %w", err)
	}

	r.logger.Debug("chat_inserted", "chat_id", chat.ID)
	return chat, nil
}

func (r *gormChatRepository) FindByID(ctx context.Context, id uint) (*domain.Chat, error) {
	if id == 0 {
		return nil, ErrChatNotFound
	}

	var chat domain.Chat
	err := repository.Conn(ctx, r.db).First(&chat, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		r.logger.Error("find_chat_failed", "chat_id", id, "error", err)
		return nil, fmt.Errorf("find chat %d: %w", id, err)
	}
	return &chat, nil
}

// ExistsByID checks existence without loading the row.
func (r *gormChatRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}

	var count int64
	err := repository.Conn(ctx, r.db).Model(&domain.Chat{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		r.logger.Error("chat_exists_failed", "chat_id", id, "error", err)
		return false, fmt.Errorf("check chat %d: %w", id, err)
	}
	return count > 0, nil
}

// Delete removes the chat row. Its messages go with it through the
// ON DELETE CASCADE foreign key, inside the same statement.
func (r *gormChatRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrChatNotFound
	}

	result := repository.Conn(ctx, r.db).Delete(&domain.Chat{}, id)
	if result.Error != nil {
		r.logger.Error("delete_chat_failed", "chat_id", id, "error", result.Error)
		return fmt.Errorf("delete chat %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrChatNotFound
	}

	r.logger.Debug("chat_row_deleted", "chat_id", id)
	return nil
}
