package chat

import (
	"context"
)

// Repository defines the transcript storage operations. The transcript is
// append-only; messages are never mutated or deleted individually.
type Repository interface {
	// SaveMessage appends a message to the user's transcript
	SaveMessage(ctx context.Context, message *Message) error

	// GetUserHistory returns the user's transcript in chronological order
	GetUserHistory(ctx context.Context, userID string, limit, offset int) ([]Message, error)

	// DeleteUserHistory clears the user's transcript
	DeleteUserHistory(ctx context.Context, userID string) error

	// CountUserMessages counts the messages in a user's transcript
	CountUserMessages(ctx context.Context, userID string) (int, error)
}
