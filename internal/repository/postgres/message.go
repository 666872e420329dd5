package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cipherline/cipherline-server/internal/model"
)

var _ model.MessageStore = (*MessageRepository)(nil)

type MessageRepository struct {
	db *Connection
}

func NewMessageRepository(db *Connection) *MessageRepository {
	return &MessageRepository{
		db: db,
	}
}

func (r *MessageRepository) Create(ctx context.Context, message model.Message) (model.Message, error) {
	query := `
		WITH ins AS (
			INSERT INTO messages (id, conversation_id, sender_id, ciphertext, nonce, tag, view_once)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, conversation_id, sender_id, ciphertext, nonce, tag, view_once, viewed, created_at
		)
		SELECT ins.id, ins.conversation_id, ins.sender_id, u.username, ins.ciphertext, ins.nonce, ins.tag,
		       ins.view_once, ins.viewed, ins.created_at
		FROM ins
		JOIN users u ON u.id = ins.sender_id`

	var saved model.Message
	err := r.db.QueryRow(ctx, query,
		message.ID, message.ConversationID, message.SenderID,
		message.Ciphertext, message.Nonce, message.Tag, message.ViewOnce,
	).Scan(
		&saved.ID, &saved.ConversationID, &saved.SenderID, &saved.Sender,
		&saved.Ciphertext, &saved.Nonce, &saved.Tag,
		&saved.ViewOnce, &saved.Viewed, &saved.CreatedAt,
	)
	if err != nil {
		return model.Message{}, fmt.Errorf("failed to create message: %w", err)
	}

	return saved, nil
}

func (r *MessageRepository) GetByConversation(ctx context.Context, conversationID uuid.UUID) ([]model.Message, error) {
	query := `
		SELECT m.id, m.conversation_id, m.sender_id, u.username, m.ciphertext, m.nonce, m.tag,
		       m.view_once, m.viewed, m.created_at
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.conversation_id = $1
		ORDER BY m.created_at ASC, m.id ASC`

	rows, err := r.db.Query(ctx, query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages by conversation: %w", err)
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		var m model.Message
		err := rows.Scan(
			&m.ID, &m.ConversationID, &m.SenderID, &m.Sender, &m.Ciphertext, &m.Nonce, &m.Tag,
			&m.ViewOnce, &m.Viewed, &m.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

// ConsumeViewOnce is a single conditional delete: the row disappears only if
// the message is view-once, the requester participates in its conversation
// and the requester is not the sender. Two racing consumers therefore see
// exactly one deletion between them.
func (r *MessageRepository) ConsumeViewOnce(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) (bool, error) {
	query := `
		DELETE FROM messages m
		USING conversation_participants cp
		WHERE m.id = $1
		  AND m.view_once
		  AND m.sender_id <> $2
		  AND cp.conversation_id = m.conversation_id
		  AND cp.user_id = $2`

	cmd, err := r.db.Exec(ctx, query, id, requesterID)
	if err != nil {
		return false, fmt.Errorf("failed to consume view-once message: %w", err)
	}

	return cmd.RowsAffected() > 0, nil
}
