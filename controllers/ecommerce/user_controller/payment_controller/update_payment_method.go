package payment_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// UpdatePaymentMethodRequest allows fixing expiry and holder details. The
// card number itself can never change; add a new card instead.
type UpdatePaymentMethodRequest struct {
	ExpMonth       *int    `json:"exp_month" binding:"omitempty,min=1,max=12"`
	ExpYear        *int    `json:"exp_year" binding:"omitempty,min=2025"`
	CardholderName *string `json:"cardholder_name,omitempty"`
}

// UpdatePaymentMethod godoc
// @Summary Update a payment method
// @Description Updates expiry or cardholder name of one of the customer's cards
// @Tags User - Payment Methods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment method ID"
// @Param payload body UpdatePaymentMethodRequest true "Fields to update"
// @Success 200 {object} models.APIResponse{data=models.PaymentMethodResponse}
// @Failure 400 {object} models.APIResponse
// @Failure 403 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/user/payment-methods/{id} [patch]
func UpdatePaymentMethod(c *gin.Context) {
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

	var req UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	updates := make(map[string]interface{})
	if req.ExpMonth != nil {
		updates["exp_month"] = *req.ExpMonth
	}
	if req.ExpYear != nil {
		updates["exp_year"] = *req.ExpYear
	}
	if req.CardholderName != nil {
		updates["cardholder_name"] = *req.CardholderName
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	expMonth := method.ExpMonth
	expYear := method.ExpYear
	if req.ExpMonth != nil {
		expMonth = *req.ExpMonth
	}
	if req.ExpYear != nil {
		expYear = *req.ExpYear
	}
	now := time.Now()
	if expYear < now.Year() || (expYear == now.Year() && expMonth < int(now.Month())) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Card would be expired"))
		return
	}

	if err := config.DB.WithContext(ctx).
		Model(&method).
		Updates(updates).Error; err != nil {
		log.Printf("❌ [user.payments] failed to update payment method %s: %v", methodID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update payment method"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Payment method updated successfully", method.ToResponse()))
}
