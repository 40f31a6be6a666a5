package coupon_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// GetCampaignByID godoc
// @Summary Get a campaign by ID
// @Tags CMS - Coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID (UUID)"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/admin/campaigns/{id} [get]
func GetCampaignByID(c *gin.Context) {
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

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Campaign fetched successfully", campaign))
}
