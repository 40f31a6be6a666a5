package notification_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/novamart-commerce/novamart-backoffice/services"
	"gorm.io/gorm"
)

// BroadcastNotification godoc
// @Summary Broadcast a notification (CMS)
// @Description Send an in-app notification to one customer, or to every active customer when user_id is omitted
// @Tags CMS - Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param notification body models.BroadcastNotificationRequest true "Notification"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/admin/notifications/broadcast [post]
func BroadcastNotification(c *gin.Context) {
	var req models.BroadcastNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	adminIDRaw, exists := c.Get("adminID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var targets []uuid.UUID

	if req.UserID != nil && *req.UserID != "" {
		userID, err := uuid.Parse(*req.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid user ID"))
			return
		}
		var count int64
		if err := config.DB.WithContext(ctx).
			Model(&models.User{}).
			Where("id = ?", userID).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			return
		}
		if count == 0 {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customer not found"))
			return
		}
		targets = []uuid.UUID{userID}
	} else {
		// Blocked accounts don't receive broadcasts
		if err := config.DB.WithContext(ctx).
			Model(&models.User{}).
			Where("status = ?", "active").
			Pluck("id", &targets).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load recipients"))
			return
		}
		if len(targets) == 0 {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "No active customers to notify", map[string]int{
				"recipients": 0,
			}))
			return
		}
	}

	err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, userID := range targets {
			if _, err := services.NotifyUser(tx, userID, req.Type, req.Title, req.Body); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("❌ [admin.notifications] broadcast failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to send notifications"))
		return
	}

	adminEmail, _ := c.Get("adminEmail")
	adminID, _ := uuid.Parse(adminIDRaw.(string))
	services.LogActivitySuccess(adminID, adminEmail.(string),
		models.ActionBroadcastNotification, models.ResourceTypeNotification,
		"broadcast", req.Title,
		map[string]interface{}{
			"type":       req.Type,
			"recipients": len(targets),
		}, c)

	log.Printf("✅ [admin.notifications] broadcast %q to %d customers", req.Title, len(targets))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Notification sent successfully", map[string]int{
		"recipients": len(targets),
	}))
}
