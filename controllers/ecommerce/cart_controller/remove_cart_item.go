package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// RemoveCartItem godoc
// @Summary Remove a cart line
// @Description Deletes a line from the open cart
// @Tags Store - Cart
// @Produce json
// @Security BearerAuth
// @Param itemId path string true "Cart item ID"
// @Success 200 {object} models.APIResponse{data=models.CartResponse}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/store/cart/items/{itemId} [delete]
func RemoveCartItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid item ID"))
		return
	}

	cart, err := loadOpenCart(userID)
	if err != nil {
		log.Printf("❌ [cart] failed to load cart for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load cart"))
		return
	}

	found := false
	remaining := make([]models.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ID == itemID {
			found = true
			continue
		}
		remaining = append(remaining, item)
	}
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Cart item not found"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cart.ID).
		Delete(&models.CartItem{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to remove cart item"))
		return
	}
	cart.Items = remaining

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", buildCartResponse(cart)))
}
