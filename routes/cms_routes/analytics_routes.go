package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/controllers/cms/analytics_controller"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")

	analytics.GET("/overview", analytics_controller.GetAnalyticsOverview)
	analytics.GET("/top-products", analytics_controller.GetTopProducts)
	analytics.GET("/monthly-revenue", analytics_controller.GetMonthlyRevenue)
}
