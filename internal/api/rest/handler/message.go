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

// MessageService defines message log and view-once operations.
type MessageService interface {
	Append(ctx context.Context, requesterID uuid.UUID, params model.CreateMessageParams) (model.Message, error)
	List(ctx context.Context, requesterID uuid.UUID, conversationID uuid.UUID) ([]model.Message, error)
	ConsumeViewOnce(ctx context.Context, requesterID uuid.UUID, messageID uuid.UUID) (bool, error)
}

// Message handles message endpoints.
type Message struct {
	messageService MessageService
	logger         *logger.Logger
}

// NewMessage creates a new Message handler.
func NewMessage(messageService MessageService, logger *logger.Logger) *Message {
	return &Message{
		messageService: messageService,
		logger:         logger,
	}
}

type appendMessageRequest struct {
	Ciphertext string `json:"ciphertext"`
	Nonce      string `json:"nonce"`
	Tag        string `json:"tag"`
	ViewOnce   bool   `json:"view_once"`
}

type messageResponse struct {
	ID         uuid.UUID `json:"id"`
	Sender     string    `json:"sender"`
	Ciphertext string    `json:"ciphertext"`
	Nonce      string    `json:"nonce"`
	Tag        string    `json:"tag"`
	ViewOnce   bool      `json:"view_once"`
	Viewed     bool      `json:"viewed"`
	CreatedAt  time.Time `json:"created_at"`
}

func toMessageResponse(m model.Message) messageResponse {
	return messageResponse{
		ID:         m.ID,
		Sender:     m.Sender,
		Ciphertext: m.Ciphertext,
		Nonce:      m.Nonce,
		Tag:        m.Tag,
		ViewOnce:   m.ViewOnce,
		Viewed:     m.Viewed,
		CreatedAt:  m.CreatedAt,
	}
}

// Append stores a new encrypted message in a conversation.
func (h *Message) Append(c *gin.Context) {
	userID, ok := reqctx.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
		return
	}

	var req appendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	message, err := h.messageService.Append(c.Request.Context(), userID, model.CreateMessageParams{
		ConversationID: conversationID,
		SenderID:       userID,
		Ciphertext:     req.Ciphertext,
		Nonce:          req.Nonce,
		Tag:            req.Tag,
		ViewOnce:       req.ViewOnce,
	})
	if err != nil {
		h.logger.Error("Message handler: append failed",
			"user_id", userID,
			"conversation_id", conversationID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toMessageResponse(message))
}

// List returns the conversation's messages oldest first.
func (h *Message) List(c *gin.Context) {
	userID, ok := reqctx.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
		return
	}

	messages, err := h.messageService.List(c.Request.Context(), userID, conversationID)
	if err != nil {
		handleError(c, err)
		return
	}

	out := make([]messageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, toMessageResponse(m))
	}
	c.JSON(http.StatusOK, out)
}

// ConsumeViewOnce triggers the view-once burn. The response is always 200
// with a deleted flag; a failed precondition is indistinguishable from a
// missing message.
func (h *Message) ConsumeViewOnce(c *gin.Context) {
	userID, ok := reqctx.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// A malformed ID names no message; same outcome as one
		// already deleted.
		c.JSON(http.StatusOK, gin.H{"deleted": false})
		return
	}

	deleted, err := h.messageService.ConsumeViewOnce(c.Request.Context(), userID, messageID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
