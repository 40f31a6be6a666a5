package payment_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// AddPaymentMethod godoc
// @Summary Add a new payment method
// @Description Adds a card for the authenticated customer. Only the last four digits are stored.
// @Tags User - Payment Methods
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body models.AddPaymentMethodRequest true "Card details"
// @Success 201 {object} models.APIResponse{data=models.PaymentMethodResponse}
// @Failure 400 {object} models.APIResponse
// @Failure 401 {object} models.APIResponse
// @Router /api/v1/user/payment-methods [post]
func AddPaymentMethod(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.AddPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request payload"))
		return
	}

	cardNumber := normalizeCardNumber(req.CardNumber)
	if cardNumber == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid card number"))
		return
	}

	now := time.Now()
	if req.ExpYear < now.Year() ||
		(req.ExpYear == now.Year() && req.ExpMonth < int(now.Month())) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Card is expired"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var paymentMethod models.UserPaymentMethod
	err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.IsDefault {
			if err := tx.Model(&models.UserPaymentMethod{}).
				Where("user_id = ? AND is_default = ?", userID, true).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}

		// Only the last four digits survive; the PAN is dropped here
		paymentMethod = models.UserPaymentMethod{
			UserID:                  userID,
			Type:                    "card",
			IsDefault:               req.IsDefault,
			Provider:                req.Provider,
			ProviderPaymentMethodID: req.ProviderPaymentMethodID,
			CardType:                req.CardType,
			CardBrand:               req.CardBrand,
			CardLast4:               cardNumber[len(cardNumber)-4:],
			ExpMonth:                req.ExpMonth,
			ExpYear:                 req.ExpYear,
			CardholderName:          req.CardholderName,
			Status:                  "active",
		}

		return tx.Create(&paymentMethod).Error
	})
	if err != nil {
		log.Printf("❌ [user.payments] failed to add payment method: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add payment method"))
		return
	}

	log.Printf("✅ [user.payments] payment method %s added for user %s", paymentMethod.ID, userID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Payment method added successfully", paymentMethod.ToResponse()))
}
