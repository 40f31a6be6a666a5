package product_controller

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// SearchProducts godoc
// @Summary Search products
// @Description Search products by name, SKU or tag with pagination
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search term"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "Filter by status" Enums(Active, Draft)
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse "Missing search term"
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/products/search [get]
func SearchProducts(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Search term is required"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	offset := (page - 1) * limit
	pattern := "%" + term + "%"

	query := config.DB.Model(&models.Product{}).
		Where("name ILIKE ? OR sku ILIKE ? OR tags::text ILIKE ?", pattern, pattern, pattern)

	if status := c.Query("status"); status == "Active" || status == "Draft" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count products"))
		return
	}

	products := make([]models.Product, 0)
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Preload("SubCategory", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, parent_id, parent_name")
		}).
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to search products"))
		return
	}

	productResponses := make([]models.ProductResponse, 0, len(products))
	for _, product := range products {
		productResponses = append(productResponses, toProductResponse(product))
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Paging{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Search results fetched successfully", productResponses, meta))
}
