package payment_controller

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

// DeletePaymentMethod godoc
// @Summary Delete a payment method
// @Description Soft-deletes one of the customer's cards. If it was the default, the oldest remaining active card becomes the new default.
// @Tags User - Payment Methods
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment method ID"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 403 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/user/payment-methods/{id} [delete]
func DeletePaymentMethod(c *gin.Context) {
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
		wasDefault := method.IsDefault

		if err := tx.Model(&method).
			Updates(map[string]interface{}{
				"status":     "deleted",
				"is_default": false,
			}).Error; err != nil {
			return err
		}

		if wasDefault {
			var newDefault models.UserPaymentMethod
			err := tx.Where("user_id = ? AND status = ? AND id != ?", userID, "active", methodID).
				Order("created_at ASC").
				First(&newDefault).Error
			if err == nil {
				return tx.Model(&newDefault).Update("is_default", true).Error
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Printf("❌ [user.payments] failed to delete payment method %s: %v", methodID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete payment method"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Payment method deleted successfully", nil))
}
