package admin_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// AdminStats summarizes the admin surface for the dashboard header
type AdminStats struct {
	TotalAdmins    int    `json:"total_admins"`
	ActiveAdmins   int    `json:"active_admins"`
	SuspendedAdmin int    `json:"suspended_admins"`
	ActiveSessions int    `json:"active_sessions"`
	DailyActions   int    `json:"daily_actions"`
	SystemStatus   string `json:"system_status"`
}

// GetAdminStats godoc
// @Summary Get admin dashboard statistics
// @Description Get stats about admins, sessions and today's activity
// @Tags Admin - Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=AdminStats}
// @Failure 401 {object} models.APIResponse "Unauthorized"
// @Failure 500 {object} models.APIResponse "Server error"
// @Router /api/v1/admin/stats [get]
func GetAdminStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var totalAdmins int64
	if err := config.DB.WithContext(ctx).
		Model(&models.Admin{}).
		Count(&totalAdmins).Error; err != nil {
		log.Printf("[admin.stats] failed to count total admins: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stats"))
		return
	}

	var activeAdmins int64
	if err := config.DB.WithContext(ctx).
		Model(&models.Admin{}).
		Where("status = ?", "active").
		Count(&activeAdmins).Error; err != nil {
		log.Printf("[admin.stats] failed to count active admins: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stats"))
		return
	}

	var suspendedAdmins int64
	if err := config.DB.WithContext(ctx).
		Model(&models.Admin{}).
		Where("status = ?", "suspended").
		Count(&suspendedAdmins).Error; err != nil {
		log.Printf("[admin.stats] failed to count suspended admins: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stats"))
		return
	}

	// Sessions of suspended admins don't count even if their rows are alive
	var activeSessions int64
	if err := config.DB.WithContext(ctx).
		Model(&models.AdminSession{}).
		Joins("JOIN admins ON admin_sessions.admin_id = admins.id").
		Where("admin_sessions.is_active = ? AND admin_sessions.expires_at > ? AND admins.status != ?", true, time.Now(), "suspended").
		Count(&activeSessions).Error; err != nil {
		log.Printf("[admin.stats] failed to count active sessions: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stats"))
		return
	}

	startOfDay := time.Now().Truncate(24 * time.Hour)
	var dailyActions int64
	if err := config.DB.WithContext(ctx).
		Model(&models.ActivityLog{}).
		Where("created_at >= ?", startOfDay).
		Count(&dailyActions).Error; err != nil {
		log.Printf("[admin.stats] failed to count daily actions: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stats"))
		return
	}

	stats := AdminStats{
		TotalAdmins:    int(totalAdmins),
		ActiveAdmins:   int(activeAdmins),
		SuspendedAdmin: int(suspendedAdmins),
		ActiveSessions: int(activeSessions),
		DailyActions:   int(dailyActions),
		SystemStatus:   "Healthy",
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin stats retrieved", stats))
}
