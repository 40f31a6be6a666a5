package cart_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/middleware"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/novamart-commerce/novamart-backoffice/services"
	"gorm.io/gorm"
)

// currentUserID pulls the authenticated customer out of the context. It
// writes the 401 itself so handlers can bail with a bare return.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return uuid.Nil, false
	}

	return userID, true
}

// loadOpenCart returns the customer's open cart with its items, creating an
// empty one on first use.
func loadOpenCart(userID uuid.UUID) (*models.Cart, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var cart models.Cart
	err := config.DB.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("user_id = ? AND status = ?", userID, models.CartStatusOpen).
		First(&cart).Error

	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = models.Cart{
		UserID: userID,
		Status: models.CartStatusOpen,
	}
	if err := config.DB.WithContext(ctx).Create(&cart).Error; err != nil {
		return nil, err
	}
	cart.Items = make([]models.CartItem, 0)

	return &cart, nil
}

// buildCartResponse derives the priced view of a cart. An applied coupon is
// re-evaluated against the current lines on every read; a coupon that no
// longer qualifies is silently dropped from the cart.
func buildCartResponse(cart *models.Cart) models.CartResponse {
	discount := 0.0

	if cart.CouponCode != nil {
		result, err := services.GetCouponService().EvaluateCampaign(config.DB, *cart.CouponCode, cart.UserID, cart.Items)
		if err == nil {
			discount = result.Discount
		} else {
			log.Printf("⚠️ [cart] dropping coupon %s from cart %s: %v", *cart.CouponCode, cart.ID, err)
			clearCartCoupon(cart)
		}
	}

	return models.CartResponse{
		ID:         cart.ID,
		Items:      cart.Items,
		CouponCode: cart.CouponCode,
		Totals:     models.ComputeCartTotals(cart.Items, discount),
		UpdatedAt:  cart.UpdatedAt,
	}
}

func clearCartCoupon(cart *models.Cart) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).
		Model(&models.Cart{}).
		Where("id = ?", cart.ID).
		Updates(map[string]interface{}{
			"coupon_campaign_id": nil,
			"coupon_code":        nil,
		}).Error; err != nil {
		log.Printf("❌ [cart] failed to clear coupon on cart %s: %v", cart.ID, err)
		return
	}

	cart.CouponCampaignID = nil
	cart.CouponCode = nil
}

// availableUnitsFor resolves the sellable stock for a cart line. Products
// without variants track a single unnamed stock entry.
func availableUnitsFor(product *models.Product, variantName *string) int {
	if variantName != nil && *variantName != "" {
		return product.Inventory.UnitsFor(*variantName)
	}
	return product.Inventory.AvailableUnits()
}
