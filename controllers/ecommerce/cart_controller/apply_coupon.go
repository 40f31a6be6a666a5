package cart_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/novamart-commerce/novamart-backoffice/services"
)

func couponErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrCouponNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrCouponExhausted),
		errors.Is(err, services.ErrCouponUserLimit):
		return http.StatusConflict
	case errors.Is(err, services.ErrCouponInactive),
		errors.Is(err, services.ErrCouponNotStarted),
		errors.Is(err, services.ErrCouponExpired),
		errors.Is(err, services.ErrCouponMinSubtotal),
		errors.Is(err, services.ErrCouponCategoryScope),
		errors.Is(err, services.ErrCouponFirstOrder):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ApplyCoupon godoc
// @Summary Apply a coupon to the cart
// @Description Evaluates a coupon code against the open cart and stores it on success
// @Tags Store - Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param coupon body models.ApplyCouponRequest true "Coupon code"
// @Success 200 {object} models.APIResponse{data=models.CartResponse}
// @Failure 400 {object} models.APIResponse "Coupon rules not met"
// @Failure 404 {object} models.APIResponse "Unknown code"
// @Failure 409 {object} models.APIResponse "Redemption limit reached"
// @Router /api/v1/store/cart/coupon [post]
func ApplyCoupon(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.ApplyCouponRequest
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

	if len(cart.Items) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cannot apply a coupon to an empty cart"))
		return
	}

	result, err := services.GetCouponService().EvaluateCampaign(config.DB, req.Code, userID, cart.Items)
	if err != nil {
		status := couponErrorStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("❌ [cart] coupon evaluation failed: %v", err)
			c.JSON(status, models.ErrorResponse(c, "Failed to evaluate coupon"))
			return
		}
		c.JSON(status, models.ErrorResponse(c, err.Error()))
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).
		Model(&models.Cart{}).
		Where("id = ?", cart.ID).
		Updates(map[string]interface{}{
			"coupon_campaign_id": result.Campaign.ID,
			"coupon_code":        code,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to apply coupon"))
		return
	}

	campaignID := result.Campaign.ID
	cart.CouponCampaignID = &campaignID
	cart.CouponCode = &code

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Coupon applied", buildCartResponse(cart)))
}
