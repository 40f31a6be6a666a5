package profile_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/middleware"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return uuid.Nil, false
	}

	return userID, true
}

// GetMe godoc
// @Summary Get current authenticated customer
// @Description Check authentication status and return the profile
// @Tags User - Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=models.UserResponse}
// @Failure 401 {object} models.APIResponse
// @Failure 403 {object} models.APIResponse "Account blocked"
// @Router /api/v1/user/me [get]
func GetMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
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

	if user.Status != "active" {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Account is not active"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Authenticated", user.ToResponse()))
}
