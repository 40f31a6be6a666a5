package notification_controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// MarkAllNotificationsRead godoc
// @Summary Mark all notifications read
// @Description Marks every unread notification of the customer as read
// @Tags User - Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=object{updated=int}}
// @Failure 401 {object} models.APIResponse
// @Router /api/v1/user/notifications/read-all [patch]
func MarkAllNotificationsRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	now := time.Now()
	result := config.DB.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Updates(map[string]interface{}{
			"read":    true,
			"read_at": now,
		})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update notifications"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "All notifications marked as read", gin.H{
		"updated": result.RowsAffected,
	}))
}
