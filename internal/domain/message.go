// File: internal/domain/message.go
package domain

import "time"

// Message represents a single message within a chat.
// Messages of a chat are ordered by (CreatedAt, ID); idx_messages_chat_created_id backs
// the "last N" window query.
type Message struct {
	ID        uint      `json:"id" gorm:"primarykey;index:idx_messages_chat_created_id,priority:3"`
	ChatID    uint      `json:"chat_id" gorm:"not null;index:idx_messages_chat_id;index:idx_messages_chat_created_id,priority:1"`
	Text      string    `json:"text" gorm:"size:5000;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;index:idx_messages_chat_created_id,priority:2"`
}
