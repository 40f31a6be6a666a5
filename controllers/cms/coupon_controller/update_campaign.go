package coupon_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	category_cache "github.com/novamart-commerce/novamart-backoffice/cache"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// UpdateCampaign godoc
// @Summary Update a coupon campaign
// @Description Partially update a campaign; the code itself is immutable
// @Tags CMS - Coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID (UUID)"
// @Param campaign body models.UpdateCouponCampaignRequest true "Fields to update"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/campaigns/{id} [patch]
func UpdateCampaign(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid campaign ID"))
		return
	}

	var req models.UpdateCouponCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var campaign models.CouponCampaign
	if err := config.DB.WithContext(ctx).
		First(&campaign, "id = ?", campaignID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Campaign not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	updates := map[string]interface{}{}

	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DiscountType != nil {
		updates["discount_type"] = *req.DiscountType
	}
	if req.DiscountValue != nil {
		updates["discount_value"] = *req.DiscountValue
	}
	if req.MaxDiscount != nil {
		updates["max_discount"] = *req.MaxDiscount
	}
	if req.MinSubtotal != nil {
		updates["min_subtotal"] = *req.MinSubtotal
	}
	if req.CategoryScope != nil {
		if len(*req.CategoryScope) > 0 {
			var count int64
			if err := config.DB.WithContext(ctx).
				Model(&models.Category{}).
				Where("id IN ?", *req.CategoryScope).
				Count(&count).Error; err != nil {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
				return
			}
			if int(count) != len(*req.CategoryScope) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "category_scope contains unknown categories"))
				return
			}
		}
		updates["category_scope"] = models.UUIDList(*req.CategoryScope)
	}
	if req.FirstOrderOnly != nil {
		updates["first_order_only"] = *req.FirstOrderOnly
	}
	if req.PerUserLimit != nil {
		updates["per_user_limit"] = *req.PerUserLimit
	}
	if req.MaxRedemptions != nil {
		updates["max_redemptions"] = *req.MaxRedemptions
	}
	if req.StartsAt != nil {
		updates["starts_at"] = *req.StartsAt
	}
	if req.EndsAt != nil {
		updates["ends_at"] = *req.EndsAt
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	// Validate the resulting discount shape
	discountType := campaign.DiscountType
	if req.DiscountType != nil {
		discountType = *req.DiscountType
	}
	discountValue := campaign.DiscountValue
	if req.DiscountValue != nil {
		discountValue = *req.DiscountValue
	}
	if discountType == models.DiscountTypePercent && discountValue > 100 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Percent discount cannot exceed 100"))
		return
	}

	if err := config.DB.WithContext(ctx).
		Model(&campaign).
		Updates(updates).Error; err != nil {
		log.Printf("[campaign.update] failed to update campaign: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update campaign"))
		return
	}

	if err := config.DB.WithContext(ctx).
		First(&campaign, "id = ?", campaignID).Error; err != nil {
		log.Printf("[campaign.update] failed to reload campaign: %v", err)
	}

	category_cache.InvalidateCampaigns()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Campaign updated successfully", campaign))
}
