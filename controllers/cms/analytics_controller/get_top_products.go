package analytics_controller

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// GetTopProducts godoc
// @Summary Get best-selling products
// @Description Products ranked by units sold over the requested window (default 30 days)
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param days query int false "Window size in days" default(30)
// @Param limit query int false "Number of products" default(10)
// @Success 200 {object} models.APIResponse{data=models.TopProductsResponse}
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/analytics/top-products [get]
func GetTopProducts(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	if days < 1 || days > 365 {
		days = 30
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 50 {
		limit = 10
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	since := time.Now().AddDate(0, 0, -days)

	rows, err := config.Pool.Query(ctx, `
		SELECT
			p.id,
			p.name,
			p.sku,
			COALESCE(SUM(oi.quantity), 0) AS units_sold,
			COALESCE(SUM(oi.subtotal), 0)::float8 AS revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		WHERE o.status NOT IN ('cancelled', 'refunded') AND o.created_at >= $1
		GROUP BY p.id, p.name, p.sku
		ORDER BY units_sold DESC, revenue DESC
		LIMIT $2
	`, since, limit)
	if err != nil {
		log.Printf("❌ [admin.analytics-top-products] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch top products"))
		return
	}
	defer rows.Close()

	products := make([]models.TopProductRow, 0, limit)
	for rows.Next() {
		var row models.TopProductRow
		if err := rows.Scan(&row.ProductID, &row.Name, &row.SKU, &row.UnitsSold, &row.Revenue); err != nil {
			log.Printf("❌ [admin.analytics-top-products] scan failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch top products"))
			return
		}
		products = append(products, row)
	}
	if err := rows.Err(); err != nil {
		log.Printf("❌ [admin.analytics-top-products] rows error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch top products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Top products retrieved successfully", models.TopProductsResponse{
		Products: products,
	}))
}
