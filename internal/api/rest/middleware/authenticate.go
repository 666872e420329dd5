package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cipherline/cipherline-server/internal/api/rest/reqctx"
	"github.com/cipherline/cipherline-server/internal/logger"
)

// TokenService resolves user ID from bearer tokens.
type TokenService interface {
	GetUserID(ctx context.Context, token string) (uuid.UUID, error)
}

// Authenticate validates bearer tokens and injects the user ID into the
// request context.
type Authenticate struct {
	tokenService TokenService
	logger       *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, logger: logger}
}

// Handle parses the Authorization header, validates the token and stores
// the user ID for downstream handlers.
func (m *Authenticate) Handle(c *gin.Context) {
	header := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(header, "Bearer ")
	if header == "" || tokenString == header {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	userID, err := m.tokenService.GetUserID(c.Request.Context(), tokenString)
	if err != nil || userID == uuid.Nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization token"})
		return
	}

	reqctx.SetUserID(c, userID)
	c.Next()
}
