package storefront_product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// GetStorefrontProductByID godoc
// @Summary Get a storefront product
// @Description Retrieve a single Active product and bump its view counter
// @Tags Store - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.APIResponse{data=models.ProductResponse}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/store/products/{id} [get]
func GetStorefrontProductByID(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.DB.WithContext(ctx).
		Preload("SubCategory", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, parent_id, parent_name")
		}).
		Where("id = ? AND status = ?", productID, "Active").
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	// View bump is best effort, a miss never fails the request
	if err := config.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", product.ID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		log.Printf("⚠️ [store.products] failed to increment views for %s: %v", product.ID, err)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", toStorefrontProductResponse(&product)))
}
