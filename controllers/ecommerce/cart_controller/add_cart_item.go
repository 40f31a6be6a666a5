package cart_controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// AddCartItem godoc
// @Summary Add an item to the cart
// @Description Adds a product to the open cart, merging into an existing line for the same product and variant
// @Tags Store - Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body models.AddCartItemRequest true "Product, variant and quantity"
// @Success 200 {object} models.APIResponse{data=models.CartResponse}
// @Failure 400 {object} models.APIResponse
// @Failure 401 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse "Not enough stock"
// @Router /api/v1/store/cart/items [post]
func AddCartItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.DB.WithContext(ctx).
		Where("id = ? AND status = ?", productID, "Active").
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	// Products with variants must be added by variant name
	if len(product.Variants) > 0 {
		if req.VariantName == nil || *req.VariantName == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Variant is required for this product"))
			return
		}
		if product.Inventory.UnitsFor(*req.VariantName) == 0 {
			known := false
			for _, entry := range product.Inventory {
				if entry.VariantName == *req.VariantName {
					known = true
					break
				}
			}
			if !known {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown variant"))
				return
			}
		}
	}

	cart, err := loadOpenCart(userID)
	if err != nil {
		log.Printf("❌ [cart] failed to load cart for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load cart"))
		return
	}

	// Merge into an existing line for the same product/variant
	var existing *models.CartItem
	for i := range cart.Items {
		if cart.Items[i].ProductID != productID {
			continue
		}
		sameVariant := (cart.Items[i].VariantName == nil && req.VariantName == nil) ||
			(cart.Items[i].VariantName != nil && req.VariantName != nil && *cart.Items[i].VariantName == *req.VariantName)
		if sameVariant {
			existing = &cart.Items[i]
			break
		}
	}

	newQuantity := req.Quantity
	if existing != nil {
		newQuantity += existing.Quantity
	}
	if newQuantity > models.MaxCartItemQuantity {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c,
			fmt.Sprintf("Quantity cannot exceed %d per item", models.MaxCartItemQuantity)))
		return
	}

	if available := availableUnitsFor(&product, req.VariantName); newQuantity > available {
		c.JSON(http.StatusConflict, models.ErrorResponse(c,
			fmt.Sprintf("Only %d units available", available)))
		return
	}

	if existing != nil {
		if err := config.DB.WithContext(ctx).
			Model(&models.CartItem{}).
			Where("id = ?", existing.ID).
			Updates(map[string]interface{}{
				"quantity": newQuantity,
				"price":    product.Price,
			}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart item"))
			return
		}
		existing.Quantity = newQuantity
		existing.Price = product.Price
	} else {
		item := models.CartItem{
			CartID:      cart.ID,
			ProductID:   productID,
			ProductName: product.Name,
			VariantName: req.VariantName,
			Price:       product.Price,
			Quantity:    req.Quantity,
		}
		if err := config.DB.WithContext(ctx).Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add cart item"))
			return
		}
		cart.Items = append(cart.Items, item)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added to cart", buildCartResponse(cart)))
}
