package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler   *tickethandlers.TicketHandler
	ActivityHandler *tickethandlers.ActivityHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// before /:id
		tickets.POST("/bulk", config.TicketHandler.BulkUpdate)

		tickets.PATCH("/:id/status", config.TicketHandler.ChangeStatus)
		tickets.PATCH("/:id/assignee", config.TicketHandler.AssignTicket)
		tickets.PATCH("/:id/priority", config.TicketHandler.ChangePriority)

		tickets.GET("/:id/comments", config.ActivityHandler.ListComments)
		tickets.POST("/:id/comments", config.ActivityHandler.AddComment)
		tickets.GET("/:id/time-entries", config.ActivityHandler.ListTimeEntries)
		tickets.POST("/:id/time-entries", config.ActivityHandler.AddTimeEntry)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PUT("/:id", config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", config.TicketHandler.DeleteTicket)
	}

	authed := engine.Group("")
	authed.Use(config.AuthMiddleware.RequireAuth())
	{
		authed.GET("/time-entries/mine", config.ActivityHandler.ListMyTimeEntries)
		authed.GET("/dashboard", config.TicketHandler.Dashboard)
	}
}
