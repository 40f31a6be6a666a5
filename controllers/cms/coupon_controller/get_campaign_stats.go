package coupon_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// GetCampaignStats godoc
// @Summary Get campaign redemption statistics
// @Description Redemption counts, discounted total and unique customers for one campaign
// @Tags CMS - Coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID (UUID)"
// @Success 200 {object} models.APIResponse{data=models.CampaignStatsResponse}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/campaigns/{id}/stats [get]
func GetCampaignStats(c *gin.Context) {
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

	var agg struct {
		Total           int
		Active          int
		Released        int
		TotalDiscounted float64
		UniqueCustomers int
		LastRedemption  *time.Time
	}
	statsSQL := `
		SELECT
			COUNT(*)::int AS total,
			COUNT(*) FILTER (WHERE NOT released)::int AS active,
			COUNT(*) FILTER (WHERE released)::int AS released,
			COALESCE(SUM(discount) FILTER (WHERE NOT released), 0) AS total_discounted,
			COUNT(DISTINCT user_id)::int AS unique_customers,
			MAX(created_at) AS last_redemption
		FROM coupon_redemptions
		WHERE campaign_id = ?
	`
	if err := config.DB.WithContext(ctx).Raw(statsSQL, campaignID).Scan(&agg).Error; err != nil {
		log.Printf("[campaign.stats] ERROR stats query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch campaign stats"))
		return
	}

	stats := models.CampaignStatsResponse{
		CampaignID:      campaign.ID,
		Code:            campaign.Code,
		Redemptions:     agg.Total,
		ActiveRedeems:   agg.Active,
		ReleasedRedeems: agg.Released,
		TotalDiscounted: agg.TotalDiscounted,
		UniqueCustomers: agg.UniqueCustomers,
	}
	if campaign.MaxRedemptions != nil {
		remaining := *campaign.MaxRedemptions - agg.Active
		if remaining < 0 {
			remaining = 0
		}
		stats.RemainingRedeems = &remaining
	}
	if agg.LastRedemption != nil {
		formatted := agg.LastRedemption.Format(time.RFC3339)
		stats.LastRedemptionAt = &formatted
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Campaign stats fetched successfully", stats))
}
