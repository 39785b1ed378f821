// File: internal/domain/chat.go
package domain

import "time"

// Chat represents a single conversation thread.
type Chat struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Title     string    `json:"title" gorm:"size:200;not null"` // trimmed, 1-200 characters
	CreatedAt time.Time `json:"created_at" gorm:"not null"`

	// Messages is only declared so the migrator creates the cascading foreign key.
	Messages []Message `json:"-" gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE"`
}
