package chat

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MaxTitleLength = 200
	MaxTextLength  = 5000
)

// NormalizeTitle trims a chat title and checks it holds 1-200 characters.
func NormalizeTitle(raw string) (string, error) {
	return normalize("title", raw, MaxTitleLength)
}

// NormalizeText trims a message text and checks it holds 1-5000 characters.
func NormalizeText(raw string) (string, error) {
	return normalize("text", raw, MaxTextLength)
}

// normalize reports an empty value and an over-long value with distinct
// messages. Length is counted in runes.
func normalize(field, raw string, maxLen int) (string, error) {
	value := strings.TrimSpace(raw)

	err := validation.Validate(value,
		validation.Required.Error(field+" must not be empty"),
		validation.RuneLength(1, maxLen).Error(fmt.Sprintf("%s must be at most %d characters", field, maxLen)),
	)
	if err != nil {
		return "", NewValidationError("validate_"+field, err.Error())
	}
	return value, nil
}
