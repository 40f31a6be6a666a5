package analytics_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// GetAnalyticsOverview godoc
// @Summary Get dashboard overview
// @Description Headline numbers for the admin dashboard: revenue, orders, customers, products, open work
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=models.OverviewResponse}
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/analytics/overview [get]
func GetAnalyticsOverview(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	weekAgo := time.Now().AddDate(0, 0, -7)

	var overview models.OverviewResponse
	err := config.Pool.QueryRow(ctx, `
		SELECT
			COALESCE((SELECT SUM(total_amount) FROM orders WHERE status NOT IN ('cancelled', 'refunded')), 0)::float8,
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM orders WHERE status = 'pending'),
			(SELECT COUNT(*) FROM support_tickets WHERE status IN ('open', 'pending')),
			COALESCE((SELECT SUM(total_amount) FROM orders WHERE status NOT IN ('cancelled', 'refunded') AND created_at >= $1), 0)::float8,
			(SELECT COUNT(*) FROM orders WHERE created_at >= $1)
	`, weekAgo).Scan(
		&overview.TotalRevenue,
		&overview.TotalOrders,
		&overview.TotalCustomers,
		&overview.TotalProducts,
		&overview.PendingOrders,
		&overview.OpenTickets,
		&overview.RevenueThisWeek,
		&overview.OrdersThisWeek,
	)
	if err != nil {
		log.Printf("❌ [admin.analytics-overview] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch overview"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Overview retrieved successfully", overview))
}
