package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConversationRepository(t *testing.T) {
	db := &Connection{}
	repo := NewConversationRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestNewMessageRepository(t *testing.T) {
	db := &Connection{}
	repo := NewMessageRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestNewRefreshTokenRepository(t *testing.T) {
	db := &Connection{}
	repo := NewRefreshTokenRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}
