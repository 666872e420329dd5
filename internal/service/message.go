package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cipherline/cipherline-server/internal/apperr"
	"github.com/cipherline/cipherline-server/internal/logger"
	"github.com/cipherline/cipherline-server/internal/model"
)

// Message appends and lists encrypted messages and drives the view-once
// lifecycle.
type Message struct {
	messageStore      model.MessageStore
	conversationStore model.ConversationStore
	logger            *logger.Logger
}

func NewMessage(
	messageStore model.MessageStore,
	conversationStore model.ConversationStore,
	logger *logger.Logger,
) *Message {
	return &Message{
		messageStore:      messageStore,
		conversationStore: conversationStore,
		logger:            logger,
	}
}

// Append stores a new encrypted message. The requester must participate in
// the conversation; a non-participant gets the same not-found as a missing
// conversation.
func (s *Message) Append(ctx context.Context, requesterID uuid.UUID, params model.CreateMessageParams) (model.Message, error) {
	if params.Ciphertext == "" || params.Nonce == "" || params.Tag == "" {
		return model.Message{}, apperr.InvalidArg("ciphertext, nonce and tag are required")
	}

	if _, err := s.conversationStore.GetForUser(ctx, params.ConversationID, requesterID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Message{}, apperr.NotFound("conversation not found")
		}
		return model.Message{}, fmt.Errorf("failed to get conversation: %w", err)
	}

	message := model.Message{
		ID:             uuid.New(),
		ConversationID: params.ConversationID,
		SenderID:       requesterID,
		Ciphertext:     params.Ciphertext,
		Nonce:          params.Nonce,
		Tag:            params.Tag,
		ViewOnce:       params.ViewOnce,
	}

	saved, err := s.messageStore.Create(ctx, message)
	if err != nil {
		return model.Message{}, fmt.Errorf("failed to create message: %w", err)
	}

	return saved, nil
}

// List returns the conversation's messages oldest first, under the same
// participancy rule as Append.
func (s *Message) List(ctx context.Context, requesterID uuid.UUID, conversationID uuid.UUID) ([]model.Message, error) {
	if _, err := s.conversationStore.GetForUser(ctx, conversationID, requesterID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, apperr.NotFound("conversation not found")
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	messages, err := s.messageStore.GetByConversation(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	return messages, nil
}

// ConsumeViewOnce destroys the message if the requester is a recipient of a
// view-once message. Every failed precondition, including a message that
// does not exist, is a silent no-op so the outcome never reveals whether the
// message exists or who sent it.
func (s *Message) ConsumeViewOnce(ctx context.Context, requesterID uuid.UUID, messageID uuid.UUID) (bool, error) {
	deleted, err := s.messageStore.ConsumeViewOnce(ctx, messageID, requesterID)
	if err != nil {
		return false, fmt.Errorf("failed to consume view-once message: %w", err)
	}

	if deleted {
		s.logger.Info("Message service: view-once message destroyed", "message_id", messageID)
	}

	return deleted, nil
}
