package address_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// GetAddresses godoc
// @Summary Get addresses
// @Description All active addresses of the authenticated customer, default first
// @Tags User - Addresses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=[]models.Address}
// @Failure 401 {object} models.APIResponse
// @Router /api/v1/user/addresses [get]
func GetAddresses(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	addresses := make([]models.Address, 0)
	if err := config.DB.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, "active").
		Order("is_default DESC, created_at ASC").
		Find(&addresses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch addresses"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Addresses fetched successfully", addresses))
}
