package admin_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// GetSingleAdminActivityLogs godoc
// @Summary Get one admin's activity logs
// @Description Paginated audit trail for a single admin, newest first
// @Tags Admin - Activity Logs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.APIResponse{data=[]models.ActivityLogResponse,meta=models.Paging}
// @Failure 400 {object} models.APIResponse
// @Router /api/v1/admin/admins/{id}/activity-logs [get]
func GetSingleAdminActivityLogs(c *gin.Context) {
	adminID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid admin ID"))
		return
	}

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
		Where("admin_id = ?", adminID).
		Count(&total).Error; err != nil {
		log.Printf("[admin.activity] failed to count logs: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	var logs []models.ActivityLog
	if err := config.DB.WithContext(ctx).
		Where("admin_id = ?", adminID).
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
