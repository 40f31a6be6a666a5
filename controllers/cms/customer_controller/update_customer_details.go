package customer_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/novamart-commerce/novamart-backoffice/services"
	"gorm.io/gorm"
)

// UpdateCustomerDetailsRequest blocks or unblocks a customer account.
type UpdateCustomerDetailsRequest struct {
	Status string  `json:"status" binding:"required,oneof=active blocked"`
	Reason *string `json:"reason,omitempty"`
}

// UpdateCustomerDetails godoc
// @Summary Update customer status (CMS)
// @Description Block or unblock a customer. Blocking requires a reason.
// @Tags CMS - Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID (UUID)"
// @Param status body UpdateCustomerDetailsRequest true "New status"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/admin/customers/{id} [patch]
func UpdateCustomerDetails(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid customer ID"))
		return
	}

	var req UpdateCustomerDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if req.Status == "blocked" && (req.Reason == nil || *req.Reason == "") {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "A reason is required when blocking a customer"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.DB.WithContext(ctx).
		First(&user, "id = ?", customerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customer not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	if user.Status == req.Status {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Customer is already "+req.Status))
		return
	}

	updates := map[string]interface{}{
		"status": req.Status,
	}
	if req.Status == "blocked" {
		updates["blocked_reason"] = *req.Reason
	} else {
		updates["blocked_reason"] = nil
	}

	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			return err
		}
		if req.Status == "active" {
			if _, err := services.NotifyUser(tx, user.ID, models.NotificationTypeSystem,
				"Account reinstated",
				"Your account has been reinstated. Welcome back!"); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[admin.customers] failed to update customer status: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update customer"))
		return
	}

	user.Status = req.Status
	if req.Status == "blocked" {
		user.BlockedReason = req.Reason
	} else {
		user.BlockedReason = nil
	}

	log.Printf("✅ [admin.customers] customer %s is now %s", user.Email, req.Status)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer updated successfully", user.ToResponse()))
}
