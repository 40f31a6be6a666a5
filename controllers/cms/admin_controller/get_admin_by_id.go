package admin_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/novamart-commerce/novamart-backoffice/services"
	"gorm.io/gorm"
)

// GetAdminByID godoc
// @Summary Get a single admin
// @Tags Admin - Management
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID (UUID)"
// @Success 200 {object} models.APIResponse{data=models.AdminResponse}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/admin/admins/{id} [get]
func GetAdminByID(c *gin.Context) {
	adminID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid admin ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admin models.Admin
	if err := config.DB.WithContext(ctx).
		First(&admin, "id = ?", adminID).Error; err != nil {
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
