// File: internal/dtos/chat.go
package dtos

import (
	"time"

	"github.com/QHOPAQ/chat-api/internal/domain"
	chatservice "github.com/QHOPAQ/chat-api/internal/services/chat"
)

// ChatCreateRequestDTO is the POST /chats/ payload. Trimming and length
// checks happen in the service layer.
type ChatCreateRequestDTO struct {
	Title string `json:"title"`
}

// MessageCreateRequestDTO is the POST /chats/{id}/messages/ payload.
type MessageCreateRequestDTO struct {
	Text string `json:"text"`
}

type ChatResponseDTO struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type MessageResponseDTO struct {
	ID        uint      `json:"id"`
	ChatID    uint      `json:"chat_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatDetailResponseDTO is a chat with its messages, oldest first.
type ChatDetailResponseDTO struct {
	ID        uint                 `json:"id"`
	Title     string               `json:"title"`
	CreatedAt time.Time            `json:"created_at"`
	Messages  []MessageResponseDTO `json:"messages"`
}

type ErrorResponseDTO struct {
	Detail string `json:"detail"`
}

type HealthResponseDTO struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

func ChatFromDomain(c domain.Chat) ChatResponseDTO {
	return ChatResponseDTO{
		ID:        c.ID,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
	}
}

func MessageFromDomain(m domain.Message) MessageResponseDTO {
	return MessageResponseDTO{
		ID:        m.ID,
		ChatID:    m.ChatID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
}

func ChatDetailFromDomain(detail chatservice.ChatDetail) ChatDetailResponseDTO {
	messages := make([]MessageResponseDTO, 0, len(detail.Messages))
	for _, m := range detail.Messages {
		messages = append(messages, MessageFromDomain(m))
	}

	return ChatDetailResponseDTO{
		ID:        detail.Chat.ID,
		Title:     detail.Chat.Title,
		CreatedAt: detail.Chat.CreatedAt,
		Messages:  messages,
	}
}
