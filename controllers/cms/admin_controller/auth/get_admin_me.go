package admin_auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/novamart-commerce/novamart-backoffice/services"
	"gorm.io/gorm"
)

// GetAdminMe godoc
// @Summary Get current admin profile
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=models.AdminResponse}
// @Failure 401 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/admin/me [get]
func GetAdminMe(c *gin.Context) {
	adminIDRaw, exists := c.Get("adminID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admin models.Admin
	if err := config.DB.WithContext(ctx).
		First(&admin, "id = ?", adminIDRaw.(string)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Admin not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	admin.Status = services.GetCalculatedAdminStatus(admin.Status, admin.LastLoginAt)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin fetched successfully", admin.ToResponse()))
}
