package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cipherline/cipherline-server/internal/apperr"
	"github.com/cipherline/cipherline-server/internal/logger"
	"github.com/cipherline/cipherline-server/internal/model"
)

// Profile serves the key directory: one public key per identity, readable by
// anyone authenticated, writable only by its owner.
type Profile struct {
	userStore model.UserStore
	logger    *logger.Logger
}

func NewProfile(userStore model.UserStore, logger *logger.Logger) *Profile {
	return &Profile{
		userStore: userStore,
		logger:    logger,
	}
}

func (p *Profile) Me(ctx context.Context, userID uuid.UUID) (model.User, error) {
	user, err := p.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, apperr.NotFound("user not found")
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func (p *Profile) UpdateMe(ctx context.Context, userID uuid.UUID, params model.UpdateProfileParams) (model.User, error) {
	user, err := p.userStore.UpdateProfile(ctx, userID, params)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, apperr.NotFound("user not found")
		}
		return model.User{}, fmt.Errorf("failed to update profile: %w", err)
	}

	p.logger.Debug("Profile service: profile updated", "user_id", userID)

	return user, nil
}

// GetPublicKey returns the stored public key for username. The key material
// is opaque to the server.
func (p *Profile) GetPublicKey(ctx context.Context, username string) (model.User, error) {
	user, err := p.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, apperr.NotFound("user not found")
		}
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}
