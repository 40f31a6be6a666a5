package supplier_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// GetSupplierByID godoc
// @Summary Get a supplier by ID
// @Tags CMS - Suppliers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Supplier ID (UUID)"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/admin/suppliers/{id} [get]
func GetSupplierByID(c *gin.Context) {
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
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count products"))
		return
	}

	row := models.SupplierListRow{
		Supplier:     supplier,
		ProductCount: int(productCount),
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Supplier fetched successfully", row))
}
