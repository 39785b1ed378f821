package services

import (
	"context"
	"errors"

	"github.com/QHOPAQ/chat-api/internal/domain"
	"github.com/QHOPAQ/chat-api/internal/logging"
	"github.com/QHOPAQ/chat-api/internal/repository"
	"github.com/QHOPAQ/chat-api/internal/repository/chat"
	"github.com/QHOPAQ/chat-api/internal/repository/message"
	chatservice "github.com/QHOPAQ/chat-api/internal/services/chat"
)

// ChatService composes the repositories into the chat use-cases. It is the
// only place that checks a chat exists before touching its messages.
type ChatService struct {
	chatRepo    chat.ChatRepository
	messageRepo message.MessageRepository
	tx          repository.Transactor
	logger      logging.Logger
}

func NewChatService(
	chatRepo chat.ChatRepository,
	messageRepo message.MessageRepository,
	tx repository.Transactor,
	logger logging.Logger,
) (*ChatService, error) {
	if chatRepo == nil {
		return nil, chatservice.NewValidationError("constructor", "chat repository is required")
	}
	if messageRepo == nil {
		return nil, chatservice.NewValidationError("constructor", "message repository is required")
	}
	if tx == nil {
		return nil, chatservice.NewValidationError("constructor", "transactor is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	return &ChatService{
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
		tx:          tx,
		logger:      logger,
	}, nil
}

func (s *ChatService) CreateChat(ctx context.Context, title string) (*domain.Chat, error) {
	title, err := chatservice.NormalizeTitle(title)
	if err != nil {
		return nil, err
	}

	var created *domain.Chat
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		c, err := s.chatRepo.Create(ctx, &domain.Chat{Title: title})
		if err != nil {
			return err
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, s.classify("create_chat", 0, err)
	}

	s.logger.Info("chat_created", "chat_id", created.ID)
	return created, nil
}

// GetChatDetail returns the chat and its most recent limit messages in
// ascending (created_at, id) order.
func (s *ChatService) GetChatDetail(ctx context.Context, chatID uint, limit int) (*chatservice.ChatDetail, error) {
	if limit < 1 || limit > chatservice.MaxMessageLimit {
		return nil, chatservice.NewValidationError("get_chat_detail", "limit must be between 1 and 100")
	}

	var detail chatservice.ChatDetail
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		c, err := s.chatRepo.FindByID(ctx, chatID)
		if err != nil {
			return err
		}
		messages, err := s.messageRepo.FindLastByChatID(ctx, chatID, limit)
		if err != nil {
			return err
		}
		detail = chatservice.ChatDetail{Chat: *c, Messages: messages}
		return nil
	})
	if err != nil {
		return nil, s.classify("get_chat_detail", chatID, err)
	}
	return &detail, nil
}

// SendMessage validates the text, then checks the chat exists before the
// insert so a missing chat is reported as not-found rather than a storage failure.
func (s *ChatService) SendMessage(ctx context.Context, chatID uint, text string) (*domain.Message, error) {
	text, err := chatservice.NormalizeText(text)
	if err != nil {
		return nil, err
	}

	var created *domain.Message
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := s.chatRepo.ExistsByID(ctx, chatID)
		if err != nil {
			return err
		}
		if !exists {
			return chat.ErrChatNotFound
		}

		m, err := s.messageRepo.Create(ctx, &domain.Message{ChatID: chatID, Text: text})
		if err != nil {
			return err
		}
		created = m
		return nil
	})
	if err != nil {
		return nil, s.classify("send_message", chatID, err)
	}

	s.logger.Info("message_created", "chat_id", chatID, "message_id", created.ID)
	return created, nil
}

// DeleteChat removes the chat and, through the cascade, all of its messages.
func (s *ChatService) DeleteChat(ctx context.Context, chatID uint) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.chatRepo.FindByID(ctx, chatID); err != nil {
			return err
		}
		return s.chatRepo.Delete(ctx, chatID)
	})
	if err != nil {
		return s.classify("delete_chat", chatID, err)
	}

	s.logger.Info("chat_deleted", "chat_id", chatID)
	return nil
}

// classify maps repository failures onto the service error taxonomy.
// Unexpected failures are logged here with full detail.
func (s *ChatService) classify(operation string, chatID uint, err error) error {
	var ce *chatservice.ChatError
	if errors.As(err, &ce) {
		return ce
	}
	if errors.Is(err, chat.ErrChatNotFound) {
		return chatservice.NewNotFoundError(operation, chatID)
	}

	s.logger.Error(operation+"_failed", "chat_id", chatID, "error", err)
	return chatservice.NewStorageError(operation, chatID, err)
}
