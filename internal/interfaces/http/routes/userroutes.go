package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "github.com/corycamp/support-ticket-backend/internal/interfaces/http/handlers/user"
)

type UserRouteConfig struct {
	UserHandler *userhandlers.Handler
	Guards      []gin.HandlerFunc
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(config.Guards...)
	{
		users.POST("", config.UserHandler.CreateUser)
		users.GET("", config.UserHandler.ListUsers)

		users.PUT("/:email/role", config.UserHandler.UpdateRole)

		users.GET("/:email", config.UserHandler.GetUser)
		users.DELETE("/:email", config.UserHandler.DeleteUser)
	}
}
