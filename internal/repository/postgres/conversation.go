package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/cipherline/cipherline-server/internal/model"
)

var _ model.ConversationStore = (*ConversationRepository)(nil)

type ConversationRepository struct {
	db *Connection
}

func NewConversationRepository(db *Connection) *ConversationRepository {
	return &ConversationRepository{
		db: db,
	}
}

// FindOrCreate inserts a conversation for participantKey or returns the
// existing one. The unique index on participant_key makes the insert the
// linearization point: a concurrent insert for the same key blocks until the
// winner commits and then degrades to the select arm, so exactly one row
// ever exists per set.
func (r *ConversationRepository) FindOrCreate(ctx context.Context, participantKey string, participantIDs []uuid.UUID) (model.Conversation, bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Conversation{}, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var conv model.Conversation
	created := false

	err = tx.QueryRow(ctx, `
		INSERT INTO conversations (id, participant_key)
		VALUES ($1, $2)
		ON CONFLICT (participant_key) DO NOTHING
		RETURNING id, created_at`,
		uuid.New(), participantKey,
	).Scan(&conv.ID, &conv.CreatedAt)

	switch {
	case err == nil:
		created = true
		_, err = tx.Exec(ctx, `
			INSERT INTO conversation_participants (conversation_id, user_id)
			SELECT $1, unnest($2::uuid[])`,
			conv.ID, participantIDs,
		)
		if err != nil {
			return model.Conversation{}, false, fmt.Errorf("failed to insert participants: %w", err)
		}
	case errors.Is(err, pgx.ErrNoRows):
		err = tx.QueryRow(ctx,
			`SELECT id, created_at FROM conversations WHERE participant_key = $1`,
			participantKey,
		).Scan(&conv.ID, &conv.CreatedAt)
		if err != nil {
			return model.Conversation{}, false, fmt.Errorf("failed to select existing conversation: %w", err)
		}
	default:
		return model.Conversation{}, false, fmt.Errorf("failed to insert conversation: %w", err)
	}

	err = tx.QueryRow(ctx, `
		SELECT array_agg(u.username ORDER BY u.username)
		FROM conversation_participants cp
		JOIN users u ON u.id = cp.user_id
		WHERE cp.conversation_id = $1`,
		conv.ID,
	).Scan(&conv.Participants)
	if err != nil {
		return model.Conversation{}, false, fmt.Errorf("failed to load participants: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Conversation{}, false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return conv, created, nil
}

func (r *ConversationRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]model.Conversation, error) {
	query := `
		SELECT c.id, c.created_at, array_agg(u.username ORDER BY u.username)
		FROM conversations c
		JOIN conversation_participants me ON me.conversation_id = c.id AND me.user_id = $1
		JOIN conversation_participants cp ON cp.conversation_id = c.id
		JOIN users u ON u.id = cp.user_id
		GROUP BY c.id, c.created_at
		ORDER BY c.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversations by user id: %w", err)
	}
	defer rows.Close()

	var conversations []model.Conversation
	for rows.Next() {
		var conv model.Conversation
		if err := rows.Scan(&conv.ID, &conv.CreatedAt, &conv.Participants); err != nil {
			return nil, err
		}
		conversations = append(conversations, conv)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return conversations, nil
}

func (r *ConversationRepository) GetForUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (model.Conversation, error) {
	query := `
		SELECT c.id, c.created_at, array_agg(u.username ORDER BY u.username)
		FROM conversations c
		JOIN conversation_participants me ON me.conversation_id = c.id AND me.user_id = $2
		JOIN conversation_participants cp ON cp.conversation_id = c.id
		JOIN users u ON u.id = cp.user_id
		WHERE c.id = $1
		GROUP BY c.id, c.created_at`

	var conv model.Conversation
	err := r.db.QueryRow(ctx, query, id, userID).Scan(&conv.ID, &conv.CreatedAt, &conv.Participants)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Conversation{}, model.ErrNotFound
		}
		return model.Conversation{}, fmt.Errorf("failed to get conversation for user: %w", err)
	}

	return conv, nil
}
