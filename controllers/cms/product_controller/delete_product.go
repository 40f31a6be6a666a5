package product_controller

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Description Delete a product and its Cloudinary media folder
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse "Invalid product ID"
// @Failure 404 {object} models.APIResponse "Product not found"
// @Failure 409 {object} models.APIResponse "Product has order history"
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	productID := c.Param("id")

	if _, err := uuid.Parse(productID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
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
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	// Products referenced by orders are never hard-deleted
	var orderItemCount int64
	if err := config.DB.WithContext(ctx).
		Model(&models.OrderItem{}).
		Where("product_id = ?", productID).
		Count(&orderItemCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if orderItemCount > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Product has order history; set it to Draft instead"))
		return
	}

	if err := config.DB.WithContext(ctx).
		Delete(&models.Product{}, "id = ?", productID).Error; err != nil {
		log.Printf("[product.delete] failed to delete product: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}

	// Remove cart lines pointing at the deleted product
	if err := config.DB.WithContext(ctx).
		Delete(&models.CartItem{}, "product_id = ?", productID).Error; err != nil {
		log.Printf("⚠️ [product.delete] failed to clear cart items for %s: %v", productID, err)
	}

	// Clean up the Cloudinary folder in the background
	go func(id string) {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cleanupCancel()

		folder := fmt.Sprintf("novamart/products/%s", id)
		if err := cloudinaryService.DeleteFolder(cleanupCtx, folder); err != nil {
			log.Printf("❌ [product.delete] failed to delete media folder %s: %v", folder, err)
		}
	}(productID)

	log.Printf("✅ [product.delete] deleted %s (%s)", product.Name, productID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", map[string]string{
		"id": productID,
	}))
}
