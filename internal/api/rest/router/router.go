package router

import (
	"github.com/gin-gonic/gin"

	"github.com/cipherline/cipherline-server/internal/api/rest/handler"
	"github.com/cipherline/cipherline-server/internal/api/rest/middleware"
	"github.com/cipherline/cipherline-server/internal/logger"
	"github.com/cipherline/cipherline-server/internal/service"
)

// Router wires services into the HTTP route table.
type Router struct {
	authService         *service.Auth
	tokenService        *service.TokenService
	profileService      *service.Profile
	conversationService *service.Conversation
	messageService      *service.Message
	pinger              handler.Pinger
	logger              *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	tokenService *service.TokenService,
	profileService *service.Profile,
	conversationService *service.Conversation,
	messageService *service.Message,
	pinger handler.Pinger,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:         authService,
		tokenService:        tokenService,
		profileService:      profileService,
		conversationService: conversationService,
		messageService:      messageService,
		pinger:              pinger,
		logger:              logger,
	}
}

// Register builds the gin engine with middleware and all routes. Register,
// token and health endpoints are public; everything else requires a bearer
// token.
func (r *Router) Register() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.logger)

	e := gin.New()
	e.Use(gin.Recovery(), logging.Handle)

	authHandler := handler.NewAuth(r.authService, r.tokenService, r.logger)
	profileHandler := handler.NewProfile(r.profileService, r.logger)
	conversationHandler := handler.NewConversation(r.conversationService, r.logger)
	messageHandler := handler.NewMessage(r.messageService, r.logger)
	healthHandler := handler.NewHealth(r.pinger)

	e.GET("/health", healthHandler.Check)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/token", authHandler.Token)
	e.POST("/auth/token/refresh", authHandler.Refresh)

	authed := e.Group("/", authenticate.Handle)
	{
		authed.POST("api/logout", authHandler.Logout)
		authed.POST("api/logout/all", authHandler.LogoutAll)
		authed.GET("me", profileHandler.Me)
		authed.PATCH("me", profileHandler.UpdateMe)
		authed.GET("profile/:username", profileHandler.PublicKey)
		authed.POST("conversations", conversationHandler.Resolve)
		authed.GET("conversations", conversationHandler.List)
		authed.POST("conversations/:id/messages", messageHandler.Append)
		authed.GET("conversations/:id/messages", messageHandler.List)
		authed.POST("messages/:id/view-once", messageHandler.ConsumeViewOnce)
	}

	return e
}
