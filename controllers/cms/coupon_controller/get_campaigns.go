package coupon_controller

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// GetCampaigns godoc
// @Summary Get coupon campaigns
// @Description Paginated campaign list with optional active filter and code search
// @Tags CMS - Coupons
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param active query bool false "Filter by is_active"
// @Param q query string false "Search by code or description"
// @Success 200 {object} models.APIResponse{data=[]models.CouponCampaign,meta=models.Paging}
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/campaigns [get]
func GetCampaigns(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := config.DB.Model(&models.CouponCampaign{})

	if active := c.Query("active"); active != "" {
		if parsed, err := strconv.ParseBool(active); err == nil {
			query = query.Where("is_active = ?", parsed)
		}
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		query = query.Where("code ILIKE ? OR description ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count campaigns"))
		return
	}

	campaigns := make([]models.CouponCampaign, 0)
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&campaigns).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch campaigns"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Paging{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Campaigns fetched successfully", campaigns, meta))
}
