package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RefreshTokenStore defines persistence operations for refresh token
// records.
type RefreshTokenStore interface {
	Create(ctx context.Context, token RefreshToken) error
	GetByJTI(ctx context.Context, jti string) (RefreshToken, error)
	RevokeByJTI(ctx context.Context, jti string) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
}

// RefreshToken is the server-side record of an issued refresh token. Only
// the SHA-256 hash of the token is kept; RevokedAt marks blacklisting and
// RotatedFromJTI links a rotated token to its predecessor.
type RefreshToken struct {
	ID             uuid.UUID
	JTI            string
	UserID         uuid.UUID
	TokenHash      []byte
	IssuedAt       time.Time
	ExpiresAt      time.Time
	RevokedAt      *time.Time
	RotatedFromJTI *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
