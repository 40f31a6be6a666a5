package analytics_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// GetMonthlyRevenue godoc
// @Summary Get monthly revenue for the last 12 months
// @Description Revenue and order counts per month for chart visualization. Missing months are filled with zeros.
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=models.MonthlyRevenueResponse}
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/analytics/monthly-revenue [get]
func GetMonthlyRevenue(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	now := time.Now()
	since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -11, 0)

	rows, err := config.Pool.Query(ctx, `
		SELECT
			TO_CHAR(date_trunc('month', created_at), 'YYYY-MM') AS month,
			COALESCE(SUM(total_amount), 0)::float8 AS revenue,
			COUNT(*) AS orders
		FROM orders
		WHERE status NOT IN ('cancelled', 'refunded') AND created_at >= $1
		GROUP BY date_trunc('month', created_at)
		ORDER BY date_trunc('month', created_at) ASC
	`, since)
	if err != nil {
		log.Printf("❌ [admin.analytics-monthly-revenue] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch monthly revenue"))
		return
	}
	defer rows.Close()

	byMonth := make(map[string]models.MonthlyRevenuePoint)
	for rows.Next() {
		var point models.MonthlyRevenuePoint
		if err := rows.Scan(&point.Month, &point.Revenue, &point.Orders); err != nil {
			log.Printf("❌ [admin.analytics-monthly-revenue] scan failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch monthly revenue"))
			return
		}
		byMonth[point.Month] = point
	}
	if err := rows.Err(); err != nil {
		log.Printf("❌ [admin.analytics-monthly-revenue] rows error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch monthly revenue"))
		return
	}

	// Fill gaps so the chart always shows a contiguous 12 months
	months := make([]models.MonthlyRevenuePoint, 0, 12)
	for i := 0; i < 12; i++ {
		key := since.AddDate(0, i, 0).Format("2006-01")
		if point, ok := byMonth[key]; ok {
			months = append(months, point)
		} else {
			months = append(months, models.MonthlyRevenuePoint{Month: key})
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Monthly revenue retrieved successfully", models.MonthlyRevenueResponse{
		Months: months,
	}))
}
