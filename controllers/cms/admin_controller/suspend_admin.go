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

// SuspendAdmin godoc
// @Summary Suspend an admin (Super admin only)
// @Description Suspend an admin account. Suspended admins cannot log in or use the API.
// @Tags Admin - Management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID (UUID)"
// @Param request body models.SetAdminSuspensionRequest true "Suspension details"
// @Success 200 {object} models.APIResponse{data=models.AdminResponse}
// @Failure 400 {object} models.APIResponse
// @Failure 403 {object} models.APIResponse "Super admin access required"
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/admin/admins/{id}/suspend [post]
func SuspendAdmin(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid admin ID"))
		return
	}

	actorIDRaw, exists := c.Get("adminID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	// Suspending yourself would lock everyone out of the account mid-session
	if actorIDRaw.(string) == targetID.String() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "You cannot suspend your own account"))
		return
	}

	var req models.SetAdminSuspensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
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

	if admin.Status == "suspended" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Admin is already suspended"))
		return
	}

	if err := config.DB.WithContext(ctx).
		Model(&admin).
		Update("status", "suspended").Error; err != nil {
		log.Printf("[admin.suspend] failed to suspend admin: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to suspend admin"))
		return
	}
	admin.Status = "suspended"

	// Kill any live sessions so the suspension takes effect immediately
	if err := services.GetAdminSessionService().DeactivateSession(ctx, admin.ID); err != nil {
		log.Printf("⚠️ [admin.suspend] failed to deactivate sessions: %v", err)
	}

	actorID, _ := uuid.Parse(actorIDRaw.(string))
	actorEmail, _ := c.Get("adminEmail")
	services.LogActivitySuccess(actorID, actorEmail.(string),
		models.ActionSuspendAdmin, models.ResourceTypeAdmin,
		admin.ID.String(), admin.Name,
		map[string]interface{}{"reason": req.Reason}, c)

	log.Printf("✅ [admin.suspend] %s suspended by %s", admin.Email, actorEmail)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin suspended successfully", admin.ToResponse()))
}
