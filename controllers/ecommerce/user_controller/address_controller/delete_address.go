package address_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// DeleteAddress godoc
// @Summary Delete an address
// @Description Soft-deletes one of the customer's addresses. If it was the default, the oldest remaining active address becomes the new default.
// @Tags User - Addresses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 403 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/user/addresses/{id} [delete]
func DeleteAddress(c *gin.Context) {
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
		wasDefault := address.IsDefault

		if err := tx.Model(&address).
			Updates(map[string]interface{}{
				"status":     "deleted",
				"is_default": false,
			}).Error; err != nil {
			return err
		}

		// Promote the oldest remaining address when the default goes away
		if wasDefault {
			var newDefault models.Address
			err := tx.Where("user_id = ? AND status = ? AND id != ?", userID, "active", addressID).
				Order("created_at ASC").
				First(&newDefault).Error
			if err == nil {
				return tx.Model(&newDefault).Update("is_default", true).Error
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Printf("❌ [user.addresses] failed to delete address %s: %v", addressID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete address"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Address deleted successfully", nil))
}
