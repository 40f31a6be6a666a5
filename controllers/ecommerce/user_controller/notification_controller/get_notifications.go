package notification_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/middleware"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return uuid.Nil, false
	}

	return userID, true
}

// GetNotifications godoc
// @Summary Get own notifications
// @Description Paginated notifications for the authenticated customer, unread first then newest
// @Tags User - Notifications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param unread query bool false "Only unread notifications"
// @Success 200 {object} models.APIResponse{data=object{notifications=[]models.Notification,unread_count=int},meta=models.Paging}
// @Failure 401 {object} models.APIResponse
// @Router /api/v1/user/notifications [get]
func GetNotifications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
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

	query := config.DB.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ?", userID)

	if c.Query("unread") == "true" {
		query = query.Where("read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count notifications"))
		return
	}

	notifications := make([]models.Notification, 0)
	if err := query.
		Order("read ASC, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch notifications"))
		return
	}

	var unreadCount int64
	if err := config.DB.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&unreadCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count unread notifications"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Paging{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Notifications fetched successfully", gin.H{
		"notifications": notifications,
		"unread_count":  unreadCount,
	}, meta))
}
