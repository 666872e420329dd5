package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cipherline/cipherline-server/internal/api/rest/reqctx"
	"github.com/cipherline/cipherline-server/internal/logger"
	"github.com/cipherline/cipherline-server/internal/model"
)

// ProfileService defines key directory and profile operations.
type ProfileService interface {
	Me(ctx context.Context, userID uuid.UUID) (model.User, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, params model.UpdateProfileParams) (model.User, error)
	GetPublicKey(ctx context.Context, username string) (model.User, error)
}

// Profile handles profile and public key endpoints.
type Profile struct {
	profileService ProfileService
	logger         *logger.Logger
}

// NewProfile creates a new Profile handler.
func NewProfile(profileService ProfileService, logger *logger.Logger) *Profile {
	return &Profile{
		profileService: profileService,
		logger:         logger,
	}
}

type profileResponse struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	PublicKey   string `json:"public_key"`
}

// Me returns the requester's own profile.
func (h *Profile) Me(c *gin.Context) {
	userID, ok := reqctx.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	user, err := h.profileService.Me(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse{
		Username:    user.Username,
		DisplayName: user.DisplayName,
		PublicKey:   user.PublicKey,
	})
}

type updateProfileRequest struct {
	DisplayName *string `json:"display_name"`
	PublicKey   *string `json:"public_key"`
}

// UpdateMe patches owner-editable profile fields.
func (h *Profile) UpdateMe(c *gin.Context) {
	userID, ok := reqctx.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.profileService.UpdateMe(c.Request.Context(), userID, model.UpdateProfileParams{
		DisplayName: req.DisplayName,
		PublicKey:   req.PublicKey,
	})
	if err != nil {
		h.logger.Error("Profile handler: profile update failed",
			"user_id", userID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse{
		Username:    user.Username,
		DisplayName: user.DisplayName,
		PublicKey:   user.PublicKey,
	})
}

// PublicKey returns the public key stored for a username.
func (h *Profile) PublicKey(c *gin.Context) {
	username := c.Param("username")

	user, err := h.profileService.GetPublicKey(c.Request.Context(), username)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username":   user.Username,
		"public_key": user.PublicKey,
	})
}
