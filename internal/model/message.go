package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MessageStore defines persistence operations for encrypted messages.
type MessageStore interface {
	Create(ctx context.Context, message Message) (Message, error)
	// GetByConversation returns all messages of a conversation ordered
	// oldest first.
	GetByConversation(ctx context.Context, conversationID uuid.UUID) ([]Message, error)
	// ConsumeViewOnce deletes the message in a single atomic statement if
	// and only if it is view-once, requesterID participates in the owning
	// conversation and requesterID is not the sender. It reports whether a
	// row was deleted. A missing message is not an error.
	ConsumeViewOnce(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) (bool, error)
}

// Message is an append-only encrypted record. Ciphertext, Nonce and Tag are
// opaque client-produced values; the server stores and returns them without
// inspection.
type Message struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	SenderID       uuid.UUID
	Sender         string
	Ciphertext     string
	Nonce          string
	Tag            string
	ViewOnce       bool
	Viewed         bool
	CreatedAt      time.Time
}

// CreateMessageParams contains parameters to append a message.
type CreateMessageParams struct {
	ConversationID uuid.UUID
	SenderID       uuid.UUID
	Ciphertext     string
	Nonce          string
	Tag            string
	ViewOnce       bool
}
