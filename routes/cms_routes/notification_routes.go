package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/controllers/cms/notification_controller"
	"github.com/novamart-commerce/novamart-backoffice/middleware"
)

func SetupNotificationRoutes(rg *gin.RouterGroup) {
	notification := rg.Group("/notifications")

	protected := notification.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("/broadcast", notification_controller.BroadcastNotification)
	}
}
