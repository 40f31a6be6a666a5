package supplier_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// DeleteSupplier godoc
// @Summary Delete a supplier
// @Description Delete a supplier; blocked while products still reference it
// @Tags CMS - Suppliers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Supplier ID (UUID)"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse "Supplier still has products"
// @Router /api/v1/admin/suppliers/{id} [delete]
func DeleteSupplier(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid supplier ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var supplier models.Supplier
	if err := config.DB.WithContext(ctx).
		First(&supplier, "id = ?", supplierID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Supplier not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	var productCount int64
	if err := config.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("supplier_id = ?", supplierID).
		Count(&productCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if productCount > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Supplier still has products; reassign them first"))
		return
	}

	if err := config.DB.WithContext(ctx).
		Delete(&models.Supplier{}, "id = ?", supplierID).Error; err != nil {
		log.Printf("[supplier.delete] failed to delete supplier: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete supplier"))
		return
	}

	log.Printf("✅ [supplier.delete] deleted %s (%s)", supplier.CompanyName, supplierID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Supplier deleted successfully", map[string]string{
		"id": supplierID.String(),
	}))
}
