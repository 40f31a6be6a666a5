package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/controllers/cms/customer_controller"
	"github.com/novamart-commerce/novamart-backoffice/controllers/cms/wallet_controller"
	"github.com/novamart-commerce/novamart-backoffice/middleware"
)

func SetupCustomerRoutes(rg *gin.RouterGroup) {
	customer := rg.Group("/customers")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	customer.GET("", customer_controller.GetCustomers)
	customer.GET("/:id", customer_controller.GetCustomerDetailsByID)
	customer.GET("/:id/orders", customer_controller.GetCustomerOrders)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════
	protected := customer.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		// Update customer details
		protected.PATCH("/:id", customer_controller.UpdateCustomerDetails)

		// Wallet
		protected.GET("/:id/wallet/transactions", wallet_controller.GetWalletTransactions)
		protected.POST("/:id/wallet/adjust", wallet_controller.AdjustWallet)
	}
}
