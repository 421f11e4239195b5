package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/corycamp/support-ticket-backend/internal/interfaces/http/handlers/ticket"
)

type CommentRouteConfig struct {
	CommentHandler *tickethandlers.CommentHandler
	Guards         []gin.HandlerFunc
}

func SetupCommentRoutes(engine *gin.Engine, config *CommentRouteConfig) {
	comments := engine.Group("/comments")
	comments.Use(config.Guards...)
	{
		comments.POST("", config.CommentHandler.CreateComment)
		comments.GET("", config.CommentHandler.ListComments)

		comments.PUT("/:id/content", config.CommentHandler.UpdateContent)

		comments.GET("/:id", config.CommentHandler.GetComment)
		comments.DELETE("/:id", config.CommentHandler.DeleteComment)
	}
}
