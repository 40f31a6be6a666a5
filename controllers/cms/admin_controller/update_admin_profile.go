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

// UpdateAdminProfile godoc
// @Summary Update own admin profile
// @Description Update the authenticated admin's name, phone, country or avatar
// @Tags Admin - Management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body models.UpdateAdminProfileRequest true "Fields to update"
// @Success 200 {object} models.APIResponse{data=models.AdminResponse}
// @Failure 400 {object} models.APIResponse
// @Failure 401 {object} models.APIResponse
// @Router /api/v1/admin/me [patch]
func UpdateAdminProfile(c *gin.Context) {
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

	var req models.UpdateAdminProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
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

	before := map[string]interface{}{
		"name":         admin.Name,
		"phone_number": admin.PhoneNumber,
		"country":      admin.Country,
		"avatar":       admin.Avatar,
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.DB.WithContext(ctx).
		Model(&admin).
		Updates(updates).Error; err != nil {
		log.Printf("[admin.profile] failed to update profile: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update profile"))
		return
	}

	if err := config.DB.WithContext(ctx).
		First(&admin, "id = ?", adminID).Error; err != nil {
		log.Printf("[admin.profile] failed to reload admin: %v", err)
	}

	services.LogActivitySuccess(adminID, admin.Email,
		models.ActionUpdateAdminProfile, models.ResourceTypeAdmin,
		admin.ID.String(), admin.Name,
		services.CreateChanges(before, updates), c)

	log.Printf("✅ [admin.profile] profile updated for %s", admin.Email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile updated successfully", admin.ToResponse()))
}
