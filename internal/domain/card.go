package domain

import (
	"time"

	"github.com/google/uuid"
)

// Card is a single term/translation learning unit owned by a user.
type Card struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Word        string
	Translation string
	Example     string
	Note        string
	Level       CardLevel
	CreatedAt   time.Time
}

// Prompt returns the side of the card shown to the learner for the
// given direction.
func (c *Card) Prompt(dir Direction) string {
	if dir == DirectionTargetToSource {
		return c.Translation
	}
	return c.Word
}

// Answer returns the side of the card the learner must produce for the
// given direction.
func (c *Card) Answer(dir Direction) string {
	if dir == DirectionTargetToSource {
		return c.Word
	}
	return c.Translation
}

// User is an account that owns cards and assessment history.
// TelegramID is set once the account is linked to a Telegram chat.
type User struct {
	ID               uuid.UUID
	Username         string
	Email            string
	PasswordHash     string
	TelegramID       *int64
	TelegramUsername *string
	CreatedAt        time.Time
}
