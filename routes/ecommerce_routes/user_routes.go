package ecommerce_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/controllers/ecommerce/user_controller/address_controller"
	"github.com/novamart-commerce/novamart-backoffice/controllers/ecommerce/user_controller/notification_controller"
	"github.com/novamart-commerce/novamart-backoffice/controllers/ecommerce/user_controller/payment_controller"
	"github.com/novamart-commerce/novamart-backoffice/controllers/ecommerce/user_controller/profile_controller"
	"github.com/novamart-commerce/novamart-backoffice/controllers/ecommerce/user_controller/ticket_controller"
	"github.com/novamart-commerce/novamart-backoffice/controllers/ecommerce/user_controller/wallet_controller"
	"github.com/novamart-commerce/novamart-backoffice/middleware"
)

// SetupUserRoutes sets up all user profile routes
func SetupUserRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware()) // All routes require auth
	{
		user.GET("/me", profile_controller.GetMe)
		user.PATCH("", profile_controller.UpdateProfile)
		user.GET("/overview", profile_controller.GetUserOverview)

		// Payment methods
		user.GET("/payment-methods", payment_controller.GetPaymentMethods)
		user.POST("/payment-methods", payment_controller.AddPaymentMethod)
		user.PATCH("/payment-methods/:id", payment_controller.UpdatePaymentMethod)
		user.DELETE("/payment-methods/:id", payment_controller.DeletePaymentMethod)
		user.PATCH("/payment-methods/:id/default", payment_controller.SetDefaultPaymentMethod)

		// Addresses
		user.GET("/addresses", address_controller.GetAddresses)
		user.POST("/addresses", address_controller.AddAddress)
		user.PATCH("/addresses/:id", address_controller.UpdateAddress)
		user.DELETE("/addresses/:id", address_controller.DeleteAddress)
		user.PATCH("/addresses/:id/default", address_controller.SetDefaultAddress)

		// Wallet
		user.GET("/wallet", wallet_controller.GetWallet)
		user.POST("/wallet/topup", wallet_controller.TopUpWallet)
		user.GET("/wallet/transactions", wallet_controller.GetWalletTransactions)

		// Support tickets
		user.GET("/tickets", ticket_controller.GetTickets)
		user.POST("/tickets", ticket_controller.CreateTicket)
		user.GET("/tickets/:id", ticket_controller.GetTicketDetails)
		user.POST("/tickets/:id/replies", ticket_controller.ReplyTicket)

		// Notifications
		user.GET("/notifications", notification_controller.GetNotifications)
		user.PATCH("/notifications/:id/read", notification_controller.MarkNotificationRead)
		user.PATCH("/notifications/read-all", notification_controller.MarkAllNotificationsRead)
	}
}
