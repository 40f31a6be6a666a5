package ecommerce_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/controllers/ecommerce/auth_controller"
)

// SetupAuthRoutes sets up all authentication routes
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		// Google OAuth routes
		auth.GET("/google/login", auth_controller.GoogleLogin)
		auth.GET("/google/callback", auth_controller.GoogleCallback)

		auth.POST("/logout", auth_controller.Logout)
	}
}
