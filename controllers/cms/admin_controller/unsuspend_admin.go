package admin_controller

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

// UnsuspendAdmin godoc
// @Summary Unsuspend an admin (Super admin only)
// @Description Restore a suspended admin account to active
// @Tags Admin - Management
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID (UUID)"
// @Success 200 {object} models.APIResponse{data=models.AdminResponse}
// @Failure 400 {object} models.APIResponse
// @Failure 403 {object} models.APIResponse "Super admin access required"
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/admin/admins/{id}/unsuspend [post]
func UnsuspendAdmin(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid admin ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admin models.Admin
	if err := config.DB.WithContext(ctx).
		First(&admin, "id = ?", targetID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Admin not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	if admin.Status != "suspended" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Admin is not suspended"))
		return
	}

	if err := config.DB.WithContext(ctx).
		Model(&admin).
		Update("status", "active").Error; err != nil {
		log.Printf("[admin.unsuspend] failed to unsuspend admin: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to unsuspend admin"))
		return
	}

	// Recompute from last login: a long-dormant account comes back as inactive
	admin.Status = services.GetCalculatedAdminStatus("active", admin.LastLoginAt)

	actorIDRaw, _ := c.Get("adminID")
	actorEmail, _ := c.Get("adminEmail")
	actorID, _ := uuid.Parse(actorIDRaw.(string))
	services.LogActivitySuccess(actorID, actorEmail.(string),
		models.ActionUnsuspendAdmin, models.ResourceTypeAdmin,
		admin.ID.String(), admin.Name, nil, c)

	log.Printf("✅ [admin.unsuspend] %s unsuspended by %s", admin.Email, actorEmail)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin unsuspended successfully", admin.ToResponse()))
}
