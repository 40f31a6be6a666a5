package address_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// AddAddress godoc
// @Summary Add new address
// @Description Add a new address for the authenticated customer
// @Tags User - Addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param address body models.AddAddressRequest true "Address details"
// @Success 201 {object} models.APIResponse{data=models.Address}
// @Failure 400 {object} models.APIResponse
// @Failure 401 {object} models.APIResponse
// @Router /api/v1/user/addresses [post]
func AddAddress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.AddAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if req.IsDefault {
		if err := config.DB.WithContext(ctx).
			Model(&models.Address{}).
			Where("user_id = ? AND is_default = ?", userID, true).
			Update("is_default", false).Error; err != nil {
			log.Printf("❌ [user.addresses] failed to unset other defaults: %v", err)
		}
	}

	address := models.Address{
		UserID:    userID,
		Label:     req.Label,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
		Country:   req.Country,
		Phone:     req.Phone,
		IsDefault: req.IsDefault,
		Status:    "active",
	}

	if err := config.DB.WithContext(ctx).Create(&address).Error; err != nil {
		log.Printf("❌ [user.addresses] failed to add address: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add address"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Address added successfully", address))
}
