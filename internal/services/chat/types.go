package chat

import "github.com/QHOPAQ/chat-api/internal/domain"

const (
	DefaultMessageLimit = 20
	MaxMessageLimit     = 100
)

// ChatDetail is a chat together with its last-N window of messages, oldest first.
type ChatDetail struct {
	Chat     domain.Chat
	Messages []domain.Message
}
