// Package reqctx stores the authenticated user ID on a gin request context.
package reqctx

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const userIDKey = "user_id"

// SetUserID attaches the authenticated user ID to the request context.
func SetUserID(c *gin.Context, userID uuid.UUID) {
	c.Set(userIDKey, userID)
}

// UserID returns the authenticated user ID set by the authentication
// middleware.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}
	userID, ok := v.(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}
