package admin_auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/novamart-commerce/novamart-backoffice/services"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Deactivate the admin's sessions and clear the auth cookie
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse
// @Failure 401 {object} models.APIResponse
// @Router /api/v1/admin/logout [post]
func AdminLogout(c *gin.Context) {
	adminIDRaw, exists := c.Get("adminID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	adminID, err := uuid.Parse(adminIDRaw.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionService := services.GetAdminSessionService()
	if err := sessionService.DeactivateSession(ctx, adminID); err != nil {
		log.Printf("[admin.logout] failed to deactivate sessions: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Expire the cookie
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("admin_token", "", -1, "/", "", false, true)

	log.Printf("✅ [admin.logout] admin %s logged out", adminID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out successfully", nil))
}
