package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/corycamp/support-ticket-backend/internal/interfaces/http/handlers"
)

type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	RateLimiter gin.HandlerFunc
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/token", config.RateLimiter, config.AuthHandler.IssueToken)
	}
}
