package admin_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// SearchAdminActivityLogs godoc
// @Summary Search admin activities with filters
// @Description Search and filter activity logs by query, admin email, action, status, resource type, and date range
// @Tags Admin - Activity Logs
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param query query string false "Search by resource name or admin email"
// @Param admin_email query string false "Filter by admin email"
// @Param action query string false "Filter by action (created, updated, deleted, or exact)"
// @Param status query string false "Filter by status" Enums(success, failed)
// @Param resource_type query string false "Filter by resource type"
// @Param created_from query string false "Filter from date (YYYY-MM-DD)"
// @Param created_to query string false "Filter to date (YYYY-MM-DD)"
// @Success 200 {object} models.APIResponse{data=[]models.ActivityLogResponse,meta=models.Paging}
// @Failure 401 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/activity-logs [get]
func SearchAdminActivityLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := c.Query("query")
	adminEmail := c.Query("admin_email")
	action := c.Query("action")
	status := c.Query("status")
	resourceType := c.Query("resource_type")
	createdFrom := c.Query("created_from")
	createdTo := c.Query("created_to")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	dbQuery := config.DB.WithContext(ctx).Model(&models.ActivityLog{})

	if query != "" {
		dbQuery = dbQuery.Where(
			"resource_name ILIKE ? OR admin_email ILIKE ?",
			"%"+query+"%",
			"%"+query+"%",
		)
	}

	if adminEmail != "" {
		dbQuery = dbQuery.Where("admin_email ILIKE ?", "%"+adminEmail+"%")
	}

	// "created"/"updated"/"deleted" match the action verb prefix across
	// resources; anything else is an exact action name
	if action != "" && action != "all" {
		switch action {
		case "created", "updated", "deleted":
			dbQuery = dbQuery.Where("action LIKE ?", action+"%")
		default:
			dbQuery = dbQuery.Where("action = ?", action)
		}
	}

	if status != "" && status != "all" {
		dbQuery = dbQuery.Where("status = ?", status)
	}

	if resourceType != "" && resourceType != "all" {
		dbQuery = dbQuery.Where("resource_type = ?", resourceType)
	}

	if createdFrom != "" {
		if fromDate, err := time.Parse("2006-01-02", createdFrom); err == nil {
			dbQuery = dbQuery.Where("created_at >= ?", fromDate)
		}
	}

	if createdTo != "" {
		// Add a day so the whole end date is included
		if toDate, err := time.Parse("2006-01-02", createdTo); err == nil {
			dbQuery = dbQuery.Where("created_at < ?", toDate.AddDate(0, 0, 1))
		}
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		log.Printf("[admin.search-activity] failed to count logs: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	var logs []models.ActivityLog
	if err := dbQuery.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		log.Printf("[admin.search-activity] failed to fetch logs: %v", err)
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
