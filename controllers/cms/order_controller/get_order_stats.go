package order_controller

import (
	"log"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// GetOrderStats godoc
// @Summary Get order statistics (CMS)
// @Description Totals per status plus month-over-month change for the dashboard
// @Tags CMS - Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=models.OrderStatsResponse}
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/orders/stats [get]
func GetOrderStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	type statusCount struct {
		Status string
		Count  int
	}
	var rows []statusCount
	if err := config.DB.WithContext(ctx).
		Model(&models.Order{}).
		Select("status, COUNT(*)::int AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		log.Printf("[admin.orders.stats] ERROR status counts failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order stats"))
		return
	}

	counts := make(map[string]int, len(rows))
	total := 0
	for _, row := range rows {
		counts[row.Status] = row.Count
		total += row.Count
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := monthStart.AddDate(0, -1, 0)

	var currentMonth, lastMonth int64
	if err := config.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("created_at >= ?", monthStart).
		Count(&currentMonth).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order stats"))
		return
	}
	if err := config.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("created_at >= ? AND created_at < ?", lastMonthStart, monthStart).
		Count(&lastMonth).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order stats"))
		return
	}

	stats := models.OrderStatsResponse{
		TotalOrders:       total,
		CurrentMonthTotal: int(currentMonth),
		LastMonthTotal:    int(lastMonth),
		Pending: models.OrderStatsBreakdown{
			Count:       counts[models.OrderStatusPending],
			Description: "Awaiting processing",
		},
		Processing: models.OrderStatsBreakdown{
			Count:       counts[models.OrderStatusProcessing],
			Description: "Being prepared",
		},
		Shipped: models.OrderStatsBreakdown{
			Count:       counts[models.OrderStatusShipped],
			Description: "On the way",
		},
		Completed: models.OrderStatsBreakdown{
			Count:       counts[models.OrderStatusCompleted],
			Description: "Delivered to customers",
		},
		Cancelled: models.OrderStatsBreakdown{
			Count:       counts[models.OrderStatusCancelled],
			Description: "Cancelled before delivery",
		},
		Refunded: models.OrderStatsBreakdown{
			Count:       counts[models.OrderStatusRefunded],
			Description: "Refunded to wallet",
		},
	}

	if lastMonth > 0 {
		change := (float64(currentMonth) - float64(lastMonth)) / float64(lastMonth) * 100
		change = math.Round(change*100) / 100
		stats.ChangePercentFromLastMonth = &change
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order stats fetched successfully", stats))
}
