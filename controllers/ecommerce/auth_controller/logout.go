package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// Logout godoc
// @Summary Logout customer
// @Description Clears the auth cookie
// @Tags Auth - Google OAuth
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /api/v1/auth/logout [post]
func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	c.SetCookie("user_data", "", -1, "/", "", false, false)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out successfully", nil))
}
