package wallet_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/middleware"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/novamart-commerce/novamart-backoffice/services"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TopUpWallet godoc
// @Summary Start a wallet top-up
// @Description Opens a Midtrans Snap payment for the requested amount and records a pending ledger row. The balance moves when the payment webhook reports settlement.
// @Tags User - Wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param topup body models.TopUpWalletRequest true "Top-up amount"
// @Success 201 {object} models.APIResponse{data=models.TopUpResponse}
// @Failure 400 {object} models.APIResponse
// @Failure 401 {object} models.APIResponse
// @Failure 502 {object} models.APIResponse "Payment provider error"
// @Router /api/v1/user/wallet/topup [post]
func TopUpWallet(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.TopUpWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Amount must be a positive decimal"))
		return
	}
	// Snap charges whole currency units, so the ledger must reserve exactly
	// what the provider will collect
	if !amount.IsInteger() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Amount must be a whole number"))
		return
	}

	userName, _ := c.Get("userName")
	userEmail, _ := middleware.GetUserEmailFromContext(c)

	transactionID := uuid.Must(uuid.NewV7())

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// A pending ledger row reserves the reference; the webhook completes or
	// fails it later without moving the balance twice
	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wallet, err := services.GetWalletService().GetOrCreateWallet(tx, userID)
		if err != nil {
			return err
		}

		pending := models.WalletTransaction{
			WalletID:     wallet.ID,
			Type:         models.WalletTxCredit,
			Amount:       amount,
			BalanceAfter: wallet.Balance,
			Reference:    "topup:" + transactionID.String(),
			Reason:       "Wallet top-up",
			Status:       models.WalletTxStatusPending,
		}
		return tx.Create(&pending).Error
	})
	if err != nil {
		log.Printf("❌ [wallet] failed to record pending top-up for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to start top-up"))
		return
	}

	name, _ := userName.(string)
	snapResp, err := services.GetPaymentService().CreateTopUpTransaction(
		transactionID.String(), amount, name, userEmail)
	if err != nil {
		log.Printf("❌ [wallet] snap transaction failed for %s: %v", userID, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Payment provider is unavailable"))
		return
	}
	snapResp.TransactionID = transactionID

	log.Printf("✅ [wallet] top-up %s started for user %s (%s)", transactionID, userID, amount.StringFixed(2))
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Top-up started", snapResp))
}
