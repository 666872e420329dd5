package handler

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cipherline/cipherline-server/internal/api/rest/reqctx"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// performRequest routes a single request through a throwaway gin engine.
// A non-nil userID is injected the way the auth middleware would.
func performRequest(t *testing.T, method, path string, body string, userID *uuid.UUID, register func(*gin.Engine)) *httptest.ResponseRecorder {
	t.Helper()

	engine := gin.New()
	if userID != nil {
		engine.Use(func(c *gin.Context) {
			reqctx.SetUserID(c, *userID)
			c.Next()
		})
	}
	register(engine)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}
