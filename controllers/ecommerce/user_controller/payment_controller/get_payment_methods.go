package payment_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// GetPaymentMethods godoc
// @Summary Get payment methods
// @Description All active cards of the authenticated customer, masked, default first
// @Tags User - Payment Methods
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=[]models.PaymentMethodResponse}
// @Failure 401 {object} models.APIResponse
// @Router /api/v1/user/payment-methods [get]
func GetPaymentMethods(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var methods []models.UserPaymentMethod
	if err := config.DB.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, "active").
		Order("is_default DESC, created_at ASC").
		Find(&methods).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch payment methods"))
		return
	}

	responses := make([]models.PaymentMethodResponse, 0, len(methods))
	for i := range methods {
		responses = append(responses, methods[i].ToResponse())
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Payment methods fetched successfully", responses))
}
