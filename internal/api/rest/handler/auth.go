package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cipherline/cipherline-server/internal/api/rest/reqctx"
	"github.com/cipherline/cipherline-server/internal/logger"
	"github.com/cipherline/cipherline-server/internal/model"
	"github.com/cipherline/cipherline-server/internal/service"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, params service.RegisterParams) (model.User, error)
	Login(ctx context.Context, username, password string) (accessToken string, refreshToken string, err error)
}

// TokenService defines token refresh and revoke operations.
type TokenService interface {
	Refresh(ctx context.Context, refreshToken string) (accessToken string, newRefreshToken string, err error)
	RevokeByToken(ctx context.Context, refreshToken string) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
}

// Auth handles registration, token issuance, refresh and logout endpoints.
type Auth struct {
	authService  AuthService
	tokenService TokenService
	logger       *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, tokenService TokenService, logger *logger.Logger) *Auth {
	return &Auth{
		authService:  authService,
		tokenService: tokenService,
		logger:       logger,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new user account.
func (h *Auth) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	_, err := h.authService.Register(c.Request.Context(), service.RegisterParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Error("Auth handler: registration failed",
			"username", req.Username,
			"error", err.Error())
		handleError(c, err)
		return
	}

	h.logger.Info("Auth handler: registration completed", "username", req.Username)

	c.JSON(http.StatusCreated, gin.H{"message": "registered"})
}

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Token exchanges credentials for an access/refresh pair.
func (h *Auth) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	access, refresh, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": access, "refresh": refresh})
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

// Refresh rotates a refresh token and returns a new pair.
func (h *Auth) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Refresh == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refresh token required"})
		return
	}

	access, refresh, err := h.tokenService.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": access, "refresh": refresh})
}

// Logout revokes the presented refresh token.
func (h *Auth) Logout(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Refresh == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refresh token required"})
		return
	}

	if err := h.tokenService.RevokeByToken(c.Request.Context(), req.Refresh); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid token"})
		return
	}

	c.JSON(http.StatusResetContent, gin.H{"message": "logged out"})
}

// LogoutAll revokes every refresh token of the requester, ending all of
// their sessions.
func (h *Auth) LogoutAll(c *gin.Context) {
	userID, ok := reqctx.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	if err := h.tokenService.RevokeAllForUser(c.Request.Context(), userID); err != nil {
		h.logger.Error("Auth handler: logout-all failed",
			"user_id", userID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusResetContent, gin.H{"message": "logged out everywhere"})
}
