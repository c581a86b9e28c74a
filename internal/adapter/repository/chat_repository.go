package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wallysmart/shopping-assistant/internal/domain/chat"
)

const greetingText = "Hi! I'm WallyAI, your smart shopping assistant. I can help you find products, plan recipes, navigate the store, and much more. What can I help you with today?"

// ChatRepository keeps per-user conversation transcripts in memory.
// Transcripts are append-only; ordering follows insertion.
type ChatRepository struct {
	mu       sync.RWMutex
	messages map[string][]chat.Message
}

// NewChatRepository creates an empty transcript store
func NewChatRepository() *ChatRepository {
	return &ChatRepository{messages: make(map[string][]chat.Message)}
}

// SaveMessage implements chat.Repository. Missing ids and timestamps
// are filled in on write.
func (r *ChatRepository) SaveMessage(ctx context.Context, msg *chat.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	r.ensureGreetingLocked(msg.UserID)
	r.messages[msg.UserID] = append(r.messages[msg.UserID], *msg)
	return nil
}

// GetUserHistory implements chat.Repository. Messages come back in
// chronological order. limit <= 0 means no limit.
func (r *ChatRepository) GetUserHistory(ctx context.Context, userID string, limit, offset int) ([]chat.Message, error) {
	r.mu.Lock()
	r.ensureGreetingLocked(userID)
	history := r.messages[userID]
	r.mu.Unlock()

	if offset >= len(history) {
		return []chat.Message{}, nil
	}
	history = history[offset:]
	if limit > 0 && limit < len(history) {
		history = history[:limit]
	}

	out := make([]chat.Message, len(history))
	copy(out, history)
	return out, nil
}

// DeleteUserHistory implements chat.Repository. The transcript resets
// to just the greeting.
func (r *ChatRepository) DeleteUserHistory(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.messages, userID)
	r.ensureGreetingLocked(userID)
	return nil
}

// CountUserMessages implements chat.Repository
func (r *ChatRepository) CountUserMessages(ctx context.Context, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.messages[userID]), nil
}

// ensureGreetingLocked seeds a fresh transcript with the assistant's
// opening message. Caller must hold the write lock.
func (r *ChatRepository) ensureGreetingLocked(userID string) {
	if _, ok := r.messages[userID]; ok {
		return
	}
	r.messages[userID] = []chat.Message{
		{
			ID:        uuid.New().String(),
			UserID:    userID,
			Author:    chat.AuthorAssistant,
			Text:      greetingText,
			CreatedAt: time.Now(),
		},
	}
}
