package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// UpdateProduct godoc
// @Summary Update a product
// @Description Partially update a product; only provided fields change
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID (UUID)"
// @Param product body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse "Product not found"
// @Failure 409 {object} models.APIResponse "Duplicate SKU"
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	productID := c.Param("id")

	if _, err := uuid.Parse(productID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.DB.WithContext(ctx).
		First(&product, "id = ?", productID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[product.update] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	updates := map[string]interface{}{}

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.SKU != nil && *req.SKU != product.SKU {
		var skuCount int64
		if err := config.DB.WithContext(ctx).
			Model(&models.Product{}).
			Where("sku = ? AND id <> ?", *req.SKU, productID).
			Count(&skuCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			return
		}
		if skuCount > 0 {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A product with this SKU already exists"))
			return
		}
		updates["sku"] = *req.SKU
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Attributes != nil {
		updates["attributes"] = models.AttributeList(*req.Attributes)
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.SubCategoryID != nil {
		var subCategory models.Category
		if err := config.DB.WithContext(ctx).
			Select("id").
			First(&subCategory, "id = ?", *req.SubCategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid sub_category_id"))
			return
		}
		updates["sub_category_id"] = *req.SubCategoryID
	}
	if req.SupplierID != nil {
		var supplierCount int64
		if err := config.DB.WithContext(ctx).
			Model(&models.Supplier{}).
			Where("id = ?", *req.SupplierID).
			Count(&supplierCount).Error; err != nil || supplierCount == 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid supplier_id"))
			return
		}
		updates["supplier_id"] = *req.SupplierID
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Tags != nil {
		updates["tags"] = models.TagList(*req.Tags)
	}
	if req.Media != nil {
		if req.Media.Primary.URL == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Primary image URL is required"))
			return
		}
		updates["media"] = *req.Media
	}
	if req.Variants != nil {
		updates["variants"] = models.VariantList(*req.Variants)
	}
	if req.Inventory != nil {
		updates["inventory"] = models.PackList(*req.Inventory)
	}
	if req.SEO != nil {
		updates["seo"] = *req.SEO
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.DB.WithContext(ctx).
		Model(&product).
		Updates(updates).Error; err != nil {
		log.Printf("[product.update] failed to update product: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	// Reload with relationship for response
	if err := config.DB.WithContext(ctx).
		Preload("SubCategory", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, parent_id, parent_name")
		}).
		First(&product, "id = ?", productID).Error; err != nil {
		log.Printf("[product.update] failed to reload product: %v", err)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", toProductResponse(product)))
}
