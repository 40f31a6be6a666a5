package coupon_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	category_cache "github.com/novamart-commerce/novamart-backoffice/cache"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// CreateCampaign godoc
// @Summary Create a coupon campaign
// @Description Create a discount campaign redeemable by code at checkout
// @Tags CMS - Coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param campaign body models.CouponCampaignRequest true "Campaign details"
// @Success 201 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse "Duplicate code"
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/campaigns [post]
func CreateCampaign(c *gin.Context) {
	var req models.CouponCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if req.EndsAt != nil && !req.EndsAt.After(req.StartsAt) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "ends_at must be after starts_at"))
		return
	}
	if req.DiscountType == models.DiscountTypePercent && req.DiscountValue > 100 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Percent discount cannot exceed 100"))
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Validate scoped categories exist
	if len(req.CategoryScope) > 0 {
		var count int64
		if err := config.DB.WithContext(ctx).
			Model(&models.Category{}).
			Where("id IN ?", req.CategoryScope).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			return
		}
		if int(count) != len(req.CategoryScope) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "category_scope contains unknown categories"))
			return
		}
	}

	var dupeCount int64
	if err := config.DB.WithContext(ctx).
		Model(&models.CouponCampaign{}).
		Where("code = ?", code).
		Count(&dupeCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if dupeCount > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A campaign with this code already exists"))
		return
	}

	perUserLimit := req.PerUserLimit
	if perUserLimit < 1 {
		perUserLimit = 1
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	campaign := models.CouponCampaign{
		Code:           code,
		Description:    req.Description,
		DiscountType:   req.DiscountType,
		DiscountValue:  req.DiscountValue,
		MaxDiscount:    req.MaxDiscount,
		MinSubtotal:    req.MinSubtotal,
		CategoryScope:  models.UUIDList(req.CategoryScope),
		FirstOrderOnly: req.FirstOrderOnly,
		PerUserLimit:   perUserLimit,
		MaxRedemptions: req.MaxRedemptions,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
		IsActive:       isActive,
	}

	if err := config.DB.WithContext(ctx).Create(&campaign).Error; err != nil {
		log.Printf("[campaign.create] failed to create campaign: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create campaign"))
		return
	}

	category_cache.InvalidateCampaigns()

	log.Printf("✅ [campaign.create] created %s (%s)", campaign.Code, campaign.ID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Campaign created successfully", campaign))
}
