package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/corycamp/support-ticket-backend/internal/interfaces/http/handlers"
	tickethandlers "github.com/corycamp/support-ticket-backend/internal/interfaces/http/handlers/ticket"
	userhandlers "github.com/corycamp/support-ticket-backend/internal/interfaces/http/handlers/user"
	"github.com/corycamp/support-ticket-backend/internal/interfaces/http/middleware"
	"github.com/corycamp/support-ticket-backend/internal/interfaces/http/routes"

	_ "github.com/corycamp/support-ticket-backend/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	engine    *gin.Engine
	container *Container
}

// NewRouter creates the engine and registers every route.
func NewRouter(container *Container) *Router {
	r := &Router{
		engine:    gin.New(),
		container: container,
	}
	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	c := r.container
	log := c.log

	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery(log))
	r.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/health", handlers.NewHealthHandler(c.backend.Name).HealthCheck)

	var guards []gin.HandlerFunc
	if c.authenticator != nil {
		routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
			AuthHandler: handlers.NewAuthHandler(c.authenticator, log.Named("auth")),
			RateLimiter: middleware.RateLimit(c.limiter, "auth_token", log),
		})
		guards = []gin.HandlerFunc{
			middleware.NewAuthMiddleware(c.authenticator, log).RequireAuth(),
			middleware.NewPermissionMiddleware(c.enforcer, log).Authorize(),
		}
	}

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler: tickethandlers.NewTicketHandler(c.services.Tickets, c.services.Comments, c.renderer, log),
		Guards:        guards,
	})
	routes.SetupCommentRoutes(r.engine, &routes.CommentRouteConfig{
		CommentHandler: tickethandlers.NewCommentHandler(c.services.Comments, c.renderer, log),
		Guards:         guards,
	})
	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler: userhandlers.NewHandler(c.services.Users, log),
		Guards:      guards,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Shutdown releases the resources held by the container.
func (r *Router) Shutdown() {
	r.container.Shutdown()
}
