package token

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_AccessToken(t *testing.T) {
	manager := NewJWT("test-secret")
	userID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		tokenString, err := manager.GenerateAccessToken(userID)
		require.NoError(t, err)
		require.NotEmpty(t, tokenString)

		parsedID, err := manager.ParseAccessToken(tokenString)
		require.NoError(t, err)
		assert.Equal(t, userID, parsedID)
	})

	t.Run("wrong secret", func(t *testing.T) {
		tokenString, err := manager.GenerateAccessToken(userID)
		require.NoError(t, err)

		other := NewJWT("other-secret")
		_, err = other.ParseAccessToken(tokenString)
		assert.Error(t, err)
	})

	t.Run("refresh token rejected as access", func(t *testing.T) {
		tokenString, _, err := manager.GenerateRefreshToken(userID)
		require.NoError(t, err)

		_, err = manager.ParseAccessToken(tokenString)
		assert.ErrorContains(t, err, "token type mismatch")
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := manager.ParseAccessToken("not-a-token")
		assert.Error(t, err)
	})
}

func TestJWT_RefreshToken(t *testing.T) {
	manager := NewJWT("test-secret")
	userID := uuid.New()

	t.Run("round trip with jti", func(t *testing.T) {
		tokenString, jti, err := manager.GenerateRefreshToken(userID)
		require.NoError(t, err)
		require.NotEmpty(t, jti)

		parsedID, parsedJTI, err := manager.ParseRefreshToken(tokenString)
		require.NoError(t, err)
		assert.Equal(t, userID, parsedID)
		assert.Equal(t, jti, parsedJTI)
	})

	t.Run("each token gets a fresh jti", func(t *testing.T) {
		_, first, err := manager.GenerateRefreshToken(userID)
		require.NoError(t, err)
		_, second, err := manager.GenerateRefreshToken(userID)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("access token rejected as refresh", func(t *testing.T) {
		tokenString, err := manager.GenerateAccessToken(userID)
		require.NoError(t, err)

		_, _, err = manager.ParseRefreshToken(tokenString)
		assert.ErrorContains(t, err, "token type mismatch")
	})
}
