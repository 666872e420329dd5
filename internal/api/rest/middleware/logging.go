package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cipherline/cipherline-server/internal/logger"
)

// Logging logs HTTP requests and their results.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, path, status and duration for each request.
func (l *Logging) Handle(c *gin.Context) {
	start := time.Now()

	c.Next()

	duration := time.Since(start)
	status := c.Writer.Status()

	l.logger.Info("HTTP request completed",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", status,
		"duration_ms", duration.Milliseconds())

	if status >= http.StatusInternalServerError {
		l.logger.Error("HTTP request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status)
	}
}
