package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// GetCart godoc
// @Summary Get the open cart
// @Description Returns the customer's open cart with derived totals, creating an empty cart on first use
// @Tags Store - Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=models.CartResponse}
// @Failure 401 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/store/cart [get]
func GetCart(c *gin.Context) {
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

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", buildCartResponse(cart)))
}
