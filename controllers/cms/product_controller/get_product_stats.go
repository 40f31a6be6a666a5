package product_controller

import (
	"log"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

const lowStockThreshold = 10

// GetProductStats godoc
// @Summary Get product statistics
// @Description Catalog counts, average price and low-stock overview for the dashboard
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/products/stats [get]
func GetProductStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var counts struct {
		Total  int64
		Active int64
	}
	if err := config.DB.WithContext(ctx).
		Model(&models.Product{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE status = 'Active') AS active").
		Scan(&counts).Error; err != nil {
		log.Printf("[product.stats] failed to count products: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product stats"))
		return
	}

	var avgPrice struct {
		Avg float64
	}
	if err := config.DB.WithContext(ctx).
		Model(&models.Product{}).
		Select("COALESCE(AVG(price), 0) AS avg").
		Scan(&avgPrice).Error; err != nil {
		log.Printf("[product.stats] failed to average prices: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product stats"))
		return
	}

	// Inventory lives in JSONB pack lists, so unit totals are summed in Go
	var products []models.Product
	if err := config.DB.WithContext(ctx).
		Select("id, inventory").
		Find(&products).Error; err != nil {
		log.Printf("[product.stats] failed to load inventories: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product stats"))
		return
	}

	totalUnits := 0
	lowStock := 0
	for _, product := range products {
		units := product.Inventory.AvailableUnits()
		totalUnits += units
		if units < lowStockThreshold {
			lowStock++
		}
	}

	stats := models.ProductStatsResponse{
		TotalProducts:    int(counts.Total),
		ActiveProducts:   int(counts.Active),
		DraftProducts:    int(counts.Total - counts.Active),
		AveragePrice:     math.Round(avgPrice.Avg*100) / 100,
		TotalUnits:       totalUnits,
		LowStockProducts: lowStock,
	}
	if counts.Total > 0 {
		stats.PercentageActive = math.Round(float64(counts.Active)/float64(counts.Total)*10000) / 100
		stats.PercentageLowStock = math.Round(float64(lowStock)/float64(counts.Total)*10000) / 100
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product stats fetched successfully", stats))
}
