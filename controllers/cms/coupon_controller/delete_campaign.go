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

// DeleteCampaign godoc
// @Summary Delete a coupon campaign
// @Description Delete a campaign; blocked once it has redemptions (deactivate instead)
// @Tags CMS - Coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID (UUID)"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse "Campaign has redemptions"
// @Router /api/v1/admin/campaigns/{id} [delete]
func DeleteCampaign(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid campaign ID"))
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

	var redemptionCount int64
	if err := config.DB.WithContext(ctx).
		Model(&models.CouponRedemption{}).
		Where("campaign_id = ?", campaignID).
		Count(&redemptionCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if redemptionCount > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Campaign has redemptions; deactivate it instead"))
		return
	}

	if err := config.DB.WithContext(ctx).
		Delete(&models.CouponCampaign{}, "id = ?", campaignID).Error; err != nil {
		log.Printf("[campaign.delete] failed to delete campaign: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete campaign"))
		return
	}

	category_cache.InvalidateCampaigns()

	log.Printf("✅ [campaign.delete] deleted %s (%s)", campaign.Code, campaignID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Campaign deleted successfully", map[string]string{
		"id": campaignID.String(),
	}))
}
