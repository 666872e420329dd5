package model

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ConversationStore defines persistence operations for conversations.
type ConversationStore interface {
	// FindOrCreate returns the conversation whose participant set matches
	// participantKey, creating it (with the given members) if absent. The
	// check and the insert are atomic with respect to concurrent calls for
	// the same key. The second return value reports whether a new row was
	// created.
	FindOrCreate(ctx context.Context, participantKey string, participantIDs []uuid.UUID) (Conversation, bool, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]Conversation, error)
	// GetForUser returns the conversation only if userID participates in it;
	// otherwise ErrNotFound, indistinguishable from a missing conversation.
	GetForUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (Conversation, error)
}

// Conversation is an immutable participant set with a creation timestamp.
// Participants are rendered as usernames for API consumers.
type Conversation struct {
	ID           uuid.UUID
	Participants []string
	CreatedAt    time.Time
}

// ParticipantKey computes the canonical encoding of a participant set: the
// member UUIDs sorted lexicographically and joined with ":". Conversations
// carry a unique index over this key, which is what makes find-or-create
// race-free. The input slice is not modified.
func ParticipantKey(ids []uuid.UUID) string {
	ss := make([]string, 0, len(ids))
	for _, id := range ids {
		ss = append(ss, id.String())
	}
	sort.Strings(ss)
	return strings.Join(ss, ":")
}
