package admin_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// GetAllAdminActivityLogs godoc
// @Summary Get all admin activity logs
// @Description Paginated audit trail of all admin actions, newest first
// @Tags Admin - Activity Logs
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.APIResponse{data=[]models.ActivityLogResponse,meta=models.Paging}
// @Failure 401 {object} models.APIResponse
// @Router /api/v1/admin/activity-logs/all [get]
func GetAllAdminActivityLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var total int64
	if err := config.DB.WithContext(ctx).
		Model(&models.ActivityLog{}).
		Count(&total).Error; err != nil {
		log.Printf("[admin.activity] failed to count logs: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	var logs []models.ActivityLog
	if err := config.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		log.Printf("[admin.activity] failed to fetch logs: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	responses := make([]models.ActivityLogResponse, len(logs))
	for i := range logs {
		responses[i] = logs[i].ToResponse()
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Paging{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity logs retrieved", responses, meta))
}
