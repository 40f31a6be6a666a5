package notification_controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// MarkNotificationRead godoc
// @Summary Mark a notification read
// @Description Marks one of the customer's notifications as read
// @Tags User - Notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/user/notifications/{id}/read [patch]
func MarkNotificationRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid notification ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	now := time.Now()
	result := config.DB.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND user_id = ? AND read = ?", notificationID, userID, false).
		Updates(map[string]interface{}{
			"read":    true,
			"read_at": now,
		})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update notification"))
		return
	}
	if result.RowsAffected == 0 {
		// Either unknown, not owned, or already read; check which
		var count int64
		config.DB.WithContext(ctx).
			Model(&models.Notification{}).
			Where("id = ? AND user_id = ?", notificationID, userID).
			Count(&count)
		if count == 0 {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Notification not found"))
			return
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Notification marked as read", nil))
}
