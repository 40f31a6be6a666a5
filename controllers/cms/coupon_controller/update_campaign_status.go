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

// UpdateCampaignStatus godoc
// @Summary Activate or deactivate a campaign
// @Tags CMS - Coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID (UUID)"
// @Param status body models.UpdateCampaignStatusRequest true "New status"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/admin/campaigns/{id}/status [patch]
func UpdateCampaignStatus(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid campaign ID"))
		return
	}

	var req models.UpdateCampaignStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
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

	if campaign.IsActive == req.IsActive {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "No changes detected", campaign))
		return
	}

	if err := config.DB.WithContext(ctx).
		Model(&campaign).
		Update("is_active", req.IsActive).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update campaign status"))
		return
	}

	campaign.IsActive = req.IsActive
	category_cache.InvalidateCampaigns()

	state := "deactivated"
	if req.IsActive {
		state = "activated"
	}
	log.Printf("✅ [campaign.status] %s %s", campaign.Code, state)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Campaign "+state, campaign))
}
