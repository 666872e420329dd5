package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger checks connectivity to the backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health reports service and store health.
type Health struct {
	pinger Pinger
}

// NewHealth creates a new Health handler.
func NewHealth(pinger Pinger) *Health {
	return &Health{pinger: pinger}
}

// Check responds ok when the store is reachable.
func (h *Health) Check(c *gin.Context) {
	if err := h.pinger.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
