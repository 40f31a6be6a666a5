package supplier_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// CreateSupplier godoc
// @Summary Create a supplier
// @Tags CMS - Suppliers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param supplier body models.SupplierRequest true "Supplier details"
// @Success 201 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse "Duplicate email"
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/suppliers [post]
func CreateSupplier(c *gin.Context) {
	var req models.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var dupeCount int64
	if err := config.DB.WithContext(ctx).
		Model(&models.Supplier{}).
		Where("email = ?", email).
		Count(&dupeCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if dupeCount > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A supplier with this email already exists"))
		return
	}

	leadTime := req.LeadTimeDays
	if leadTime == 0 {
		leadTime = 7
	}

	supplier := models.Supplier{
		CompanyName:  req.CompanyName,
		ContactName:  req.ContactName,
		Email:        email,
		Phone:        req.Phone,
		Country:      req.Country,
		LeadTimeDays: leadTime,
		Status:       "active",
		Notes:        req.Notes,
	}

	if err := config.DB.WithContext(ctx).Create(&supplier).Error; err != nil {
		log.Printf("[supplier.create] failed to create supplier: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create supplier"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Supplier created successfully", supplier))
}
