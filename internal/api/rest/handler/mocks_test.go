package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cipherline/cipherline-server/internal/model"
	"github.com/cipherline/cipherline-server/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, params service.RegisterParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.String(1), args.Error(2)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) RevokeByToken(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func (m *MockTokenService) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockConversationService struct {
	mock.Mock
}

func (m *MockConversationService) Resolve(ctx context.Context, requesterID uuid.UUID, peerUsernames []string) (model.Conversation, bool, error) {
	args := m.Called(ctx, requesterID, peerUsernames)
	return args.Get(0).(model.Conversation), args.Bool(1), args.Error(2)
}

func (m *MockConversationService) List(ctx context.Context, requesterID uuid.UUID) ([]model.Conversation, error) {
	args := m.Called(ctx, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Conversation), args.Error(1)
}

type MockMessageService struct {
	mock.Mock
}

func (m *MockMessageService) Append(ctx context.Context, requesterID uuid.UUID, params model.CreateMessageParams) (model.Message, error) {
	args := m.Called(ctx, requesterID, params)
	return args.Get(0).(model.Message), args.Error(1)
}

func (m *MockMessageService) List(ctx context.Context, requesterID uuid.UUID, conversationID uuid.UUID) ([]model.Message, error) {
	args := m.Called(ctx, requesterID, conversationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Message), args.Error(1)
}

func (m *MockMessageService) ConsumeViewOnce(ctx context.Context, requesterID uuid.UUID, messageID uuid.UUID) (bool, error) {
	args := m.Called(ctx, requesterID, messageID)
	return args.Bool(0), args.Error(1)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Me(ctx context.Context, userID uuid.UUID) (model.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockProfileService) UpdateMe(ctx context.Context, userID uuid.UUID, params model.UpdateProfileParams) (model.User, error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockProfileService) GetPublicKey(ctx context.Context, username string) (model.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.User), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
