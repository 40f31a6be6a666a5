package supplier_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// UpdateSupplier godoc
// @Summary Update a supplier
// @Tags CMS - Suppliers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Supplier ID (UUID)"
// @Param supplier body models.UpdateSupplierRequest true "Fields to update"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse "Duplicate email"
// @Router /api/v1/admin/suppliers/{id} [patch]
func UpdateSupplier(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid supplier ID"))
		return
	}

	var req models.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
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

	updates := map[string]interface{}{}

	if req.CompanyName != nil {
		updates["company_name"] = *req.CompanyName
	}
	if req.ContactName != nil {
		updates["contact_name"] = *req.ContactName
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != supplier.Email {
			var dupeCount int64
			if err := config.DB.WithContext(ctx).
				Model(&models.Supplier{}).
				Where("email = ? AND id <> ?", email, supplierID).
				Count(&dupeCount).Error; err != nil {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
				return
			}
			if dupeCount > 0 {
				c.JSON(http.StatusConflict, models.ErrorResponse(c, "A supplier with this email already exists"))
				return
			}
			updates["email"] = email
		}
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if req.LeadTimeDays != nil {
		updates["lead_time_days"] = *req.LeadTimeDays
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.DB.WithContext(ctx).
		Model(&supplier).
		Updates(updates).Error; err != nil {
		log.Printf("[supplier.update] failed to update supplier: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update supplier"))
		return
	}

	if err := config.DB.WithContext(ctx).
		First(&supplier, "id = ?", supplierID).Error; err != nil {
		log.Printf("[supplier.update] failed to reload supplier: %v", err)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Supplier updated successfully", supplier))
}
