package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cipherline/cipherline-server/internal/api/rest/reqctx"
	"github.com/cipherline/cipherline-server/internal/logger"
	"github.com/cipherline/cipherline-server/internal/model"
)

// ConversationService defines conversation resolution operations.
type ConversationService interface {
	Resolve(ctx context.Context, requesterID uuid.UUID, peerUsernames []string) (model.Conversation, bool, error)
	List(ctx context.Context, requesterID uuid.UUID) ([]model.Conversation, error)
}

// Conversation handles conversation endpoints.
type Conversation struct {
	conversationService ConversationService
	logger              *logger.Logger
}

// NewConversation creates a new Conversation handler.
func NewConversation(conversationService ConversationService, logger *logger.Logger) *Conversation {
	return &Conversation{
		conversationService: conversationService,
		logger:              logger,
	}
}

type resolveConversationRequest struct {
	Participants []string `json:"participants"`
}

type conversationResponse struct {
	ID           uuid.UUID `json:"id"`
	Participants []string  `json:"participants"`
	CreatedAt    time.Time `json:"created_at"`
}

func toConversationResponse(conv model.Conversation) conversationResponse {
	return conversationResponse{
		ID:           conv.ID,
		Participants: conv.Participants,
		CreatedAt:    conv.CreatedAt,
	}
}

// Resolve finds or creates the conversation for the requested participant
// set. Responds 201 when a conversation was created, 200 when reused.
func (h *Conversation) Resolve(c *gin.Context) {
	userID, ok := reqctx.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req resolveConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "participants must be a list of usernames"})
		return
	}

	conv, created, err := h.conversationService.Resolve(c.Request.Context(), userID, req.Participants)
	if err != nil {
		h.logger.Error("Conversation handler: resolve failed",
			"user_id", userID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, toConversationResponse(conv))
}

// List returns the requester's conversations, newest first.
func (h *Conversation) List(c *gin.Context) {
	userID, ok := reqctx.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	conversations, err := h.conversationService.List(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	out := make([]conversationResponse, 0, len(conversations))
	for _, conv := range conversations {
		out = append(out, toConversationResponse(conv))
	}
	c.JSON(http.StatusOK, out)
}
