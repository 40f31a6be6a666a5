package profile_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// UpdateProfile godoc
// @Summary Update profile
// @Description Partial update of the customer's name, phone or avatar
// @Tags User - Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body models.UpdateUserRequest true "Fields to update"
// @Success 200 {object} models.APIResponse{data=models.UserResponse}
// @Failure 400 {object} models.APIResponse
// @Failure 401 {object} models.APIResponse
// @Router /api/v1/user [patch]
func UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil && *req.Name != "" {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.DB.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "User not found"))
		return
	}

	if err := config.DB.WithContext(ctx).
		Model(&user).
		Updates(updates).Error; err != nil {
		log.Printf("❌ [user.profile] failed to update profile for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update profile"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile updated successfully", user.ToResponse()))
}
