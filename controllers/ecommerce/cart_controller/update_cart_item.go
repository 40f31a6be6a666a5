package cart_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// UpdateCartItem godoc
// @Summary Update a cart line quantity
// @Description Sets the quantity of a cart line, rechecking stock
// @Tags Store - Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param itemId path string true "Cart item ID"
// @Param item body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.APIResponse{data=models.CartResponse}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse "Not enough stock"
// @Router /api/v1/store/cart/items/{itemId} [patch]
func UpdateCartItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid item ID"))
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	cart, err := loadOpenCart(userID)
	if err != nil {
		log.Printf("❌ [cart] failed to load cart for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load cart"))
		return
	}

	var item *models.CartItem
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			item = &cart.Items[i]
			break
		}
	}
	if item == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Cart item not found"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.DB.WithContext(ctx).
		Where("id = ?", item.ProductID).
		First(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	if available := availableUnitsFor(&product, item.VariantName); req.Quantity > available {
		c.JSON(http.StatusConflict, models.ErrorResponse(c,
			fmt.Sprintf("Only %d units available", available)))
		return
	}

	if err := config.DB.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"quantity": req.Quantity,
			"price":    product.Price,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart item"))
		return
	}
	item.Quantity = req.Quantity
	item.Price = product.Price

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart item updated", buildCartResponse(cart)))
}
