package product_controller

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/novamart-commerce/novamart-backoffice/services"
	"gorm.io/gorm"
)

var cloudinaryService *services.CloudinaryService

func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	var err error
	cloudinaryService, err = services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	return err
}

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a new product with Cloudinary URLs (media is uploaded client-side first)
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body models.ProductRequest true "Product details with Cloudinary URLs"
// @Success 201 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse "Duplicate SKU"
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/products [post]
func CreateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[product.create] invalid request: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if req.Status == "" {
		req.Status = "Draft"
	}

	// Validate subcategory exists
	var subCategory models.Category
	if err := config.DB.WithContext(ctx).
		Select("id, name, parent_id, parent_name").
		First(&subCategory, "id = ?", req.SubCategoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			log.Printf("[product.create] invalid sub_category_id: %s", req.SubCategoryID)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid sub_category_id"))
		} else {
			log.Printf("[product.create] database error: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Validate supplier when provided
	if req.SupplierID != nil {
		var supplierCount int64
		if err := config.DB.WithContext(ctx).
			Model(&models.Supplier{}).
			Where("id = ?", *req.SupplierID).
			Count(&supplierCount).Error; err != nil || supplierCount == 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid supplier_id"))
			return
		}
	}

	if req.Media.Primary.URL == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Primary image URL is required"))
		return
	}

	// SKU is unique across the catalog
	var skuCount int64
	if err := config.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("sku = ?", req.SKU).
		Count(&skuCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if skuCount > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A product with this SKU already exists"))
		return
	}

	product := models.Product{
		Name:          req.Name,
		SKU:           req.SKU,
		Description:   req.Description,
		Attributes:    models.AttributeList(req.Attributes),
		Price:         req.Price,
		SubCategoryID: req.SubCategoryID,
		SupplierID:    req.SupplierID,
		Status:        req.Status,
		Tags:          models.TagList(req.Tags),
		Media:         req.Media,
		Variants:      models.VariantList(req.Variants),
		Inventory:     models.PackList(req.Inventory),
		SEO:           req.SEO,
		Views:         0,
	}

	if err := config.DB.WithContext(ctx).Create(&product).Error; err != nil {
		log.Printf("[product.create] failed to create product: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product: "+err.Error()))
		return
	}

	// Load subcategory relationship for response
	if err := config.DB.WithContext(ctx).
		Preload("SubCategory", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, parent_id, parent_name")
		}).
		First(&product, "id = ?", product.ID).Error; err != nil {
		log.Printf("[product.create] failed to reload product: %v", err)
		// Product is created, just missing relationship - still return success
	}

	log.Printf("✅ [product.create] created %s (%s)", product.Name, product.ID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}

// ════════════════════════════════════════════════════════════
// CLEANUP ENDPOINT
// ════════════════════════════════════════════════════════════

// CleanupFolderRequest represents the request to delete a folder
type CleanupFolderRequest struct {
	FolderPath string `json:"folder_path" binding:"required"`
}

// CleanupOrphanedFolder godoc
// @Summary Delete orphaned product folder from Cloudinary
// @Description Deletes entire product folder when backend save fails after upload succeeds
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CleanupFolderRequest true "Folder path to delete"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 403 {object} models.APIResponse
// @Router /api/v1/admin/products/cleanup-folder [post]
func CleanupOrphanedFolder(c *gin.Context) {
	var req CleanupFolderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	// Only product folders may be cleaned up
	if !strings.HasPrefix(req.FolderPath, "novamart/products/") {
		log.Printf("[product.cleanup] ⚠️ blocked attempt to delete non-product folder: %s", req.FolderPath)
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Can only cleanup product folders"))
		return
	}

	parts := strings.Split(req.FolderPath, "/")
	if len(parts) != 3 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid folder path format"))
		return
	}

	log.Printf("[product.cleanup] folder deletion requested: %s", req.FolderPath)

	// Delete folder in background (don't block response)
	go func(folderPath string) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := cloudinaryService.DeleteFolder(ctx, folderPath); err != nil {
			log.Printf("❌ [product.cleanup] failed to delete folder %s: %v", folderPath, err)
		} else {
			log.Printf("✅ [product.cleanup] deleted orphaned folder: %s", folderPath)
		}
	}(req.FolderPath)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Folder cleanup initiated", map[string]string{
		"folder": req.FolderPath,
		"status": "deleting",
	}))
}
