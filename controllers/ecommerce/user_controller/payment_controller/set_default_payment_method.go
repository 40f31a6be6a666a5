package payment_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// SetDefaultPaymentMethod godoc
// @Summary Set default payment method
// @Description Makes one of the customer's cards the default
// @Tags User - Payment Methods
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment method ID"
// @Success 200 {object} models.APIResponse{data=object{id=string}}
// @Failure 400 {object} models.APIResponse
// @Failure 403 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/user/payment-methods/{id}/default [patch]
func SetDefaultPaymentMethod(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	methodID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid payment method ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var method models.UserPaymentMethod
	if err := config.DB.WithContext(ctx).
		Where("id = ? AND status = ?", methodID, "active").
		First(&method).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Payment method not found"))
		return
	}
	if method.UserID != userID {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Permission denied"))
		return
	}

	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.UserPaymentMethod{}).
			Where("user_id = ? AND id != ?", userID, methodID).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&method).Update("is_default", true).Error
	})
	if err != nil {
		log.Printf("❌ [user.payments] failed to set default payment method %s: %v", methodID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to set default payment method"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Default payment method updated successfully", gin.H{
		"id": methodID.String(),
	}))
}
