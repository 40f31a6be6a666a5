package product_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// toProductResponse shapes a product into the basic_info/seo/media/variants/
// inventory envelope the CMS frontend expects
func toProductResponse(product models.Product) models.ProductResponse {
	var subCategoryPath *string
	if product.SubCategory != nil {
		var path string
		if product.SubCategory.ParentName != nil {
			path = *product.SubCategory.ParentName + " -> " + product.SubCategory.Name
		} else {
			path = product.SubCategory.Name
		}
		subCategoryPath = &path
	}

	return models.ProductResponse{
		BasicInfo: models.ProductBase{
			ID:              product.ID,
			Name:            product.Name,
			SKU:             product.SKU,
			Description:     product.Description,
			Attributes:      []models.Attribute(product.Attributes),
			Price:           product.Price,
			SubCategoryID:   product.SubCategoryID,
			SubCategoryName: product.SubCategoryName,
			SubCategoryPath: subCategoryPath,
			SupplierID:      product.SupplierID,
			Status:          product.Status,
			Tags:            []string(product.Tags),
			AvailableUnits:  product.Inventory.AvailableUnits(),
			CreatedAt:       product.CreatedAt,
			UpdatedAt:       product.UpdatedAt,
		},
		SEO:       product.SEO,
		Media:     product.Media,
		Variants:  []models.ProductVariant(product.Variants),
		Inventory: []models.PackEntry(product.Inventory),
	}
}

// GetProducts godoc
// @Summary Get paginated products
// @Description Retrieve all products with pagination and optional filtering
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "Filter by status" Enums(Active, Draft)
// @Param supplier_id query string false "Filter by supplier"
// @Success 200 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/products [get]
func GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	offset := (page - 1) * limit

	query := config.DB.Model(&models.Product{})

	if status := c.Query("status"); status != "" {
		if status == "Active" || status == "Draft" {
			query = query.Where("status = ?", status)
		}
	}

	if supplierID := c.Query("supplier_id"); supplierID != "" {
		query = query.Where("supplier_id = ?", supplierID)
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
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
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

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", productResponses, meta))
}
