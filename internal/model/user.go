package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByUsernames(ctx context.Context, usernames []string) ([]User, error)
	Create(ctx context.Context, user User) (User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, params UpdateProfileParams) (User, error)
}

// User represents a registered identity together with its profile.
// PublicKey holds the client-generated X25519 public key as base64 text;
// the server never interprets it.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash []byte
	DisplayName  string
	PublicKey    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UpdateProfileParams carries owner-editable profile fields. Nil means
// "leave unchanged".
type UpdateProfileParams struct {
	DisplayName *string
	PublicKey   *string
}
