package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/corycamp/support-ticket-backend/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
	// Guards run before every ticket route; empty when auth is disabled.
	Guards []gin.HandlerFunc
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.Guards...)
	{
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		tickets.GET("/:id/comments", config.TicketHandler.ListTicketComments)
		tickets.PUT("/:id/title", config.TicketHandler.UpdateTitle)
		tickets.PUT("/:id/description", config.TicketHandler.UpdateDescription)
		tickets.PUT("/:id/status", config.TicketHandler.UpdateStatus)
		tickets.PUT("/:id/priority", config.TicketHandler.UpdatePriority)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.DELETE("/:id", config.TicketHandler.DeleteTicket)
	}
}
