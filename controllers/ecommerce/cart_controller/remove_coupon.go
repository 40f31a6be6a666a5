package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// RemoveCoupon godoc
// @Summary Remove the applied coupon
// @Description Clears the coupon from the open cart
// @Tags Store - Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=models.CartResponse}
// @Failure 401 {object} models.APIResponse
// @Router /api/v1/store/cart/coupon [delete]
func RemoveCoupon(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cart, err := loadOpenCart(userID)
	if err != nil {
		log.Printf("❌ [cart] failed to load cart for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load cart"))
		return
	}

	if cart.CouponCode != nil {
		clearCartCoupon(cart)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Coupon removed", buildCartResponse(cart)))
}
