package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cipherline/cipherline-server/internal/apperr"
	"github.com/cipherline/cipherline-server/internal/logger"
	"github.com/cipherline/cipherline-server/internal/model"
)

// Conversation resolves participant sets to conversations and lists them.
type Conversation struct {
	conversationStore model.ConversationStore
	userStore         model.UserStore
	allowSelf         bool
	logger            *logger.Logger
}

func NewConversation(
	conversationStore model.ConversationStore,
	userStore model.UserStore,
	allowSelf bool,
	logger *logger.Logger,
) *Conversation {
	return &Conversation{
		conversationStore: conversationStore,
		userStore:         userStore,
		allowSelf:         allowSelf,
		logger:            logger,
	}
}

// Resolve finds or creates the unique conversation whose participant set is
// exactly the peers plus the requester. The second return value reports whether the
// conversation was created by this call.
func (s *Conversation) Resolve(ctx context.Context, requesterID uuid.UUID, peerUsernames []string) (model.Conversation, bool, error) {
	if len(peerUsernames) == 0 {
		return model.Conversation{}, false, apperr.InvalidArg("participants must be a non-empty list of usernames")
	}

	peers := dedupe(peerUsernames)

	users, err := s.userStore.GetByUsernames(ctx, peers)
	if err != nil {
		return model.Conversation{}, false, fmt.Errorf("failed to resolve participants: %w", err)
	}
	if len(users) != len(peers) {
		return model.Conversation{}, false, apperr.InvalidParticipants("invalid username(s) in participants")
	}

	// Canonical target set: peers plus the requester, duplicates collapsed.
	ids := make([]uuid.UUID, 0, len(users)+1)
	seen := make(map[uuid.UUID]struct{}, len(users)+1)
	for _, u := range users {
		if _, ok := seen[u.ID]; !ok {
			seen[u.ID] = struct{}{}
			ids = append(ids, u.ID)
		}
	}
	if _, ok := seen[requesterID]; !ok {
		ids = append(ids, requesterID)
	}

	if !s.allowSelf && len(ids) < 2 {
		return model.Conversation{}, false, apperr.InvalidParticipants("conversation requires at least one peer")
	}

	key := model.ParticipantKey(ids)

	conv, created, err := s.conversationStore.FindOrCreate(ctx, key, ids)
	if err != nil {
		return model.Conversation{}, false, fmt.Errorf("failed to find or create conversation: %w", err)
	}

	if created {
		s.logger.Info("Conversation service: conversation created",
			"conversation_id", conv.ID,
			"participants", len(ids))
	}

	return conv, created, nil
}

// List returns every conversation the requester participates in, newest
// first.
func (s *Conversation) List(ctx context.Context, requesterID uuid.UUID) ([]model.Conversation, error) {
	conversations, err := s.conversationStore.GetByUserID(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversations by user id: %w", err)
	}
	return conversations, nil
}

// dedupe collapses duplicates preserving first-seen order. The input slice
// is never modified.
func dedupe(usernames []string) []string {
	out := make([]string, 0, len(usernames))
	seen := make(map[string]struct{}, len(usernames))
	for _, u := range usernames {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
