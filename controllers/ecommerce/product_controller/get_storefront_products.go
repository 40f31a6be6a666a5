package storefront_product_controller

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products
// @Description Paginated Active products with category, price, tag and search filters
// @Tags Store - Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Param category query string false "Category ID (parent or subcategory UUID)"
// @Param q query string false "Search by name or tags"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param in_stock query bool false "Only products with available units"
// @Param sort query string false "Sort order" Enums(newest, price_asc, price_desc, popular)
// @Success 200 {object} models.APIResponse{data=[]models.ProductResponse,meta=models.Paging}
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 12
	}
	offset := (page - 1) * limit

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("status = ?", "Active")

	// A parent category ID covers all of its subcategories
	if categoryParam := c.Query("category"); categoryParam != "" {
		categoryID, err := uuid.Parse(categoryParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
			return
		}
		query = query.Where(
			"sub_category_id = ? OR sub_category_id IN (SELECT id FROM categories WHERE parent_id = ?)",
			categoryID, categoryID,
		)
	}

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		query = query.Where("name ILIKE ? OR tags::text ILIKE ?", like, like)
	}

	if minPrice, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		query = query.Where("price >= ?", minPrice)
	}
	if maxPrice, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		query = query.Where("price <= ?", maxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count products"))
		return
	}

	switch c.Query("sort") {
	case "price_asc":
		query = query.Order("price ASC")
	case "price_desc":
		query = query.Order("price DESC")
	case "popular":
		query = query.Order("views DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var products []models.Product
	if err := query.
		Preload("SubCategory", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, parent_id, parent_name")
		}).
		Limit(limit).
		Offset(offset).
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	// Stock filtering happens after the page is loaded since units live in
	// JSONB
	inStockOnly := c.Query("in_stock") == "true"
	responses := make([]models.ProductResponse, 0, len(products))
	for i := range products {
		if inStockOnly && products[i].Inventory.AvailableUnits() == 0 {
			continue
		}
		responses = append(responses, toStorefrontProductResponse(&products[i]))
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Paging{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", responses, meta))
}
