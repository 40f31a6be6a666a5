package wallet_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/novamart-commerce/novamart-backoffice/services"
	"gorm.io/gorm"
)

// GetWallet godoc
// @Summary Get wallet
// @Description Returns the customer's wallet, creating it with a zero balance on first use
// @Tags User - Wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse{data=models.WalletResponse}
// @Failure 401 {object} models.APIResponse
// @Router /api/v1/user/wallet [get]
func GetWallet(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var wallet *models.Wallet
	err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		wallet, err = services.GetWalletService().GetOrCreateWallet(tx, userID)
		return err
	})
	if err != nil {
		log.Printf("❌ [wallet] failed to load wallet for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load wallet"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wallet fetched successfully", wallet.ToResponse()))
}
