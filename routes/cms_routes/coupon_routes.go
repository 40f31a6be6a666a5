package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/controllers/cms/coupon_controller"
	"github.com/novamart-commerce/novamart-backoffice/middleware"
)

func SetupCouponRoutes(rg *gin.RouterGroup) {
	campaign := rg.Group("/campaigns")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	campaign.GET("", coupon_controller.GetCampaigns)
	campaign.GET("/:id", coupon_controller.GetCampaignByID)
	campaign.GET("/:id/stats", coupon_controller.GetCampaignStats)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════
	protected := campaign.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		// Create
		protected.POST("", coupon_controller.CreateCampaign)

		// Update
		protected.PATCH("/:id", coupon_controller.UpdateCampaign)
		protected.PATCH("/:id/status", coupon_controller.UpdateCampaignStatus)

		// Delete
		protected.DELETE("/:id", coupon_controller.DeleteCampaign)
	}
}
