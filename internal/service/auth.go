package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/cipherline/cipherline-server/internal/apperr"
	"github.com/cipherline/cipherline-server/internal/logger"
	"github.com/cipherline/cipherline-server/internal/model"
	"github.com/cipherline/cipherline-server/internal/repository/postgres"
)

const minPasswordLength = 8

// Auth registers users and exchanges credentials for token pairs.
type Auth struct {
	userStore    model.UserStore
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(userStore model.UserStore, tokenService *TokenService, logger *logger.Logger) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenService: tokenService,
		logger:       logger,
	}
}

// RegisterParams contains parameters to register a new user.
type RegisterParams struct {
	Username string
	Email    string
	Password string
}

func (a *Auth) Register(ctx context.Context, params RegisterParams) (model.User, error) {
	if params.Username == "" {
		return model.User{}, apperr.InvalidArg("username is required")
	}
	if len(params.Password) < minPasswordLength {
		return model.User{}, apperr.InvalidArg(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New(),
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: hash,
	}

	saved, err := a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, postgres.ErrDuplicateUsername) {
			a.logger.Info("Auth service: username already taken", "username", params.Username)
			return model.User{}, apperr.AlreadyExists("username already taken")
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered", "username", saved.Username, "user_id", saved.ID)

	return saved, nil
}

// Login verifies credentials and issues an access/refresh token pair.
func (a *Auth) Login(ctx context.Context, username, password string) (accessToken string, refreshToken string, err error) {
	if username == "" || password == "" {
		return "", "", apperr.InvalidArg("username and password are required")
	}

	user, err := a.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// Same failure as a bad password so login does not confirm
			// which usernames exist.
			return "", "", apperr.Unauthorized("invalid credentials")
		}
		return "", "", fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		a.logger.Info("Auth service: failed login attempt", "username", username)
		return "", "", apperr.Unauthorized("invalid credentials")
	}

	access, refresh, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		return "", "", fmt.Errorf("failed to issue tokens: %w", err)
	}

	return access, refresh, nil
}
