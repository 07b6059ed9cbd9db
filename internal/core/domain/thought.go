package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MessageMinLen and MessageMaxLen bound the message text after trimming.
	MessageMinLen = 5
	MessageMaxLen = 140
)

var ErrThoughtNotFound = errors.New("no message with that id")
var ErrInvalidThoughtID = errors.New("invalid message id")
var ErrInvalidMessage = errors.New("message must be between 5 and 140 characters")

// Thought is a short public message. Hearts only ever increases; there is no
// decrement operation anywhere in the system.
type Thought struct {
	ID        string
	Message   string
	Hearts    int
	CreatedAt time.Time
}

// ValidateMessage trims the text and enforces the length bounds. The trimmed
// text is returned so callers persist exactly what was validated.
func ValidateMessage(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if n := utf8.RuneCountInString(trimmed); n < MessageMinLen || n > MessageMaxLen {
		return "", ErrInvalidMessage
	}
	return trimmed, nil
}
