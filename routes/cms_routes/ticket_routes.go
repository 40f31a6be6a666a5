package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/controllers/cms/ticket_controller"
	"github.com/novamart-commerce/novamart-backoffice/middleware"
)

func SetupTicketRoutes(rg *gin.RouterGroup) {
	ticket := rg.Group("/tickets")

	// Support queue is admin-only end to end
	ticket.Use(middleware.AdminAuthMiddleware())
	{
		ticket.GET("", ticket_controller.GetTickets)
		ticket.GET("/:id", ticket_controller.GetTicketDetails)
	}

	protected := ticket.Group("")
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("/:id/replies", ticket_controller.ReplyTicket)
		protected.PATCH("/:id/status", ticket_controller.UpdateTicketStatus)
	}
}
