package chat

import (
	"errors"
	"fmt"
)

type ErrorType string

const (
	ErrTypeValidation ErrorType = "VALIDATION"
	ErrTypeNotFound   ErrorType = "NOT_FOUND"
	ErrTypeStorage    ErrorType = "STORAGE"
)

// Messages safe to show to API clients.
const (
	MsgChatNotFound = "Chat not found"
	MsgStorage      = "Database error"
)

type ChatError struct {
	Type      ErrorType
	Operation string
	Message   string
	ChatID    uint
	Cause     error
}

func (e *ChatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Chat %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("Chat %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *ChatError) Unwrap() error {
	return e.Cause
}

func NewValidationError(operation, msg string) *ChatError {
	return &ChatError{Type: ErrTypeValidation, Operation: operation, Message: msg}
}

func NewNotFoundError(operation string, chatID uint) *ChatError {
	return &ChatError{
		Type:      ErrTypeNotFound,
		Operation: operation,
		Message:   MsgChatNotFound,
		ChatID:    chatID,
	}
}

// NewStorageError hides cause from clients; Message is always MsgStorage.
func NewStorageError(operation string, chatID uint, cause error) *ChatError {
	return &ChatError{
		Type:      ErrTypeStorage,
		Operation: operation,
		Message:   MsgStorage,
		ChatID:    chatID,
		Cause:     cause,
	}
}

func IsValidation(err error) bool { return hasType(err, ErrTypeValidation) }
func IsNotFound(err error) bool   { return hasType(err, ErrTypeNotFound) }
func IsStorage(err error) bool    { return hasType(err, ErrTypeStorage) }

func hasType(err error, t ErrorType) bool {
	var ce *ChatError
	return errors.As(err, &ce) && ce.Type == t
}
