package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherline/cipherline-server/internal/service"
	"github.com/cipherline/cipherline-server/internal/testutil"
	"github.com/cipherline/cipherline-server/internal/token"
)

type nopPinger struct{}

func (nopPinger) Ping(ctx context.Context) error { return nil }

func newTestRouter() *Router {
	log := testutil.MakeNoopLogger()
	tokenService := service.NewTokenService(token.NewJWT("test-secret"), nil, log)
	return New(
		service.NewAuth(nil, tokenService, log),
		tokenService,
		service.NewProfile(nil, log),
		service.NewConversation(nil, nil, true, log),
		service.NewMessage(nil, nil, log),
		nopPinger{},
		log,
	)
}

func TestRouter_Register(t *testing.T) {
	engine := newTestRouter().Register()

	wantRoutes := []string{
		"GET /health",
		"POST /auth/register",
		"POST /auth/token",
		"POST /auth/token/refresh",
		"POST /api/logout",
		"POST /api/logout/all",
		"GET /me",
		"PATCH /me",
		"GET /profile/:username",
		"POST /conversations",
		"GET /conversations",
		"POST /conversations/:id/messages",
		"GET /conversations/:id/messages",
		"POST /messages/:id/view-once",
	}

	got := map[string]bool{}
	for _, route := range engine.Routes() {
		got[route.Method+" "+route.Path] = true
	}

	for _, route := range wantRoutes {
		assert.True(t, got[route], "route %s is not registered", route)
	}
	require.Len(t, engine.Routes(), len(wantRoutes))
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	engine := newTestRouter().Register()

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/me"},
		{http.MethodPatch, "/me"},
		{http.MethodGet, "/profile/bob"},
		{http.MethodPost, "/conversations"},
		{http.MethodGet, "/conversations"},
		{http.MethodPost, "/conversations/11111111-1111-1111-1111-111111111111/messages"},
		{http.MethodGet, "/conversations/11111111-1111-1111-1111-111111111111/messages"},
		{http.MethodPost, "/messages/11111111-1111-1111-1111-111111111111/view-once"},
		{http.MethodPost, "/api/logout"},
		{http.MethodPost, "/api/logout/all"},
	}

	for _, route := range protected {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, nil)
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRouter_HealthIsPublic(t *testing.T) {
	engine := newTestRouter().Register()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
