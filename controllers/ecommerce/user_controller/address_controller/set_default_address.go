package address_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// SetDefaultAddress godoc
// @Summary Set default address
// @Description Makes one of the customer's addresses the default
// @Tags User - Addresses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Success 200 {object} models.APIResponse{data=object{id=string}}
// @Failure 400 {object} models.APIResponse
// @Failure 403 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/user/addresses/{id}/default [patch]
func SetDefaultAddress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid address ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var address models.Address
	if err := config.DB.WithContext(ctx).
		Where("id = ? AND status = ?", addressID, "active").
		First(&address).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Address not found"))
		return
	}
	if address.UserID != userID {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Permission denied"))
		return
	}

	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Address{}).
			Where("user_id = ? AND id != ?", userID, addressID).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&address).Update("is_default", true).Error
	})
	if err != nil {
		log.Printf("❌ [user.addresses] failed to set default address %s: %v", addressID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to set default address"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Default address updated successfully", gin.H{
		"id": addressID.String(),
	}))
}
