package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/controllers/cms/order_controller"
	"github.com/novamart-commerce/novamart-backoffice/middleware"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	order := rg.Group("/orders")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	order.GET("", order_controller.GetOrders)
	order.GET("/stats", order_controller.GetOrderStats)
	order.GET("/search", order_controller.SearchOrders)
	order.GET("/:id", order_controller.GetOrderDetailsByID)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════
	protected := order.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		// Status and refunds
		protected.PATCH("/:id/status", order_controller.UpdateOrderStatus)
		protected.POST("/:id/refund", order_controller.RefundOrder)

		// Invoices
		protected.GET("/:id/invoice", order_controller.DownloadOrderInvoicePDF)
		protected.POST("/:id/send-invoice", order_controller.SendOrderInvoicePDF)
	}
}
