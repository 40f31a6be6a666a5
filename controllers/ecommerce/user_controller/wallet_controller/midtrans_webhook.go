package wallet_controller

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/novamart-commerce/novamart-backoffice/services"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errGrossMismatch = errors.New("gross amount does not match the pending top-up")

// midtransNotification is the subset of the Midtrans HTTP notification the
// top-up flow cares about.
type midtransNotification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	SignatureKey      string `json:"signature_key"`
}

// verifySignature checks the notification against the server key:
// sha512(order_id + status_code + gross_amount + server_key)
func (n *midtransNotification) verifySignature() bool {
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	payload := n.OrderID + n.StatusCode + n.GrossAmount + serverKey
	sum := sha512.Sum512([]byte(payload))
	return hex.EncodeToString(sum[:]) == n.SignatureKey
}

// MidtransWebhook godoc
// @Summary Midtrans payment notification
// @Description Settles or fails a pending wallet top-up. Verified against the Midtrans signature key; safe to replay.
// @Tags User - Wallet
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse "Bad payload or signature"
// @Failure 404 {object} models.APIResponse "Unknown transaction"
// @Router /api/v1/webhooks/midtrans [post]
func MidtransWebhook(c *gin.Context) {
	var notification midtransNotification
	if err := c.ShouldBindJSON(&notification); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid notification payload"))
		return
	}

	if !notification.verifySignature() {
		log.Printf("⚠️ [wallet.webhook] signature mismatch for order %s", notification.OrderID)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid signature"))
		return
	}

	reference := "topup:" + notification.OrderID
	newStatus := services.SettlementStatus(notification.TransactionStatus, notification.FraudStatus)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ledger models.WalletTransaction
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("reference = ?", reference).
			First(&ledger).Error; err != nil {
			return err
		}

		// Replays and late notifications after settlement are no-ops
		if ledger.Status != models.WalletTxStatusPending || newStatus == models.WalletTxStatusPending {
			return nil
		}

		// Never credit more or less than the provider actually collected
		gross, err := decimal.NewFromString(notification.GrossAmount)
		if err != nil || !gross.Equal(ledger.Amount) {
			return fmt.Errorf("%w: notification says %s, ledger holds %s",
				errGrossMismatch, notification.GrossAmount, ledger.Amount.StringFixed(2))
		}

		var wallet models.Wallet
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", ledger.WalletID).
			First(&wallet).Error; err != nil {
			return err
		}

		if newStatus == models.WalletTxStatusFailed {
			return tx.Model(&models.WalletTransaction{}).
				Where("id = ?", ledger.ID).
				Update("status", models.WalletTxStatusFailed).Error
		}

		newBalance := wallet.Balance.Add(ledger.Amount)
		if err := tx.Model(&models.Wallet{}).
			Where("id = ?", wallet.ID).
			Update("balance", newBalance).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.WalletTransaction{}).
			Where("id = ?", ledger.ID).
			Updates(map[string]interface{}{
				"status":        models.WalletTxStatusCompleted,
				"balance_after": newBalance,
			}).Error; err != nil {
			return err
		}

		if err := services.EmitEvent(tx, models.EventWalletAdjusted, wallet.ID, map[string]interface{}{
			"user_id":   wallet.UserID.String(),
			"type":      models.WalletTxCredit,
			"amount":    ledger.Amount.StringFixed(2),
			"reference": ledger.Reference,
			"source":    "topup",
		}); err != nil {
			return err
		}

		_, err = services.NotifyUser(tx, wallet.UserID, models.NotificationTypeWallet,
			"Wallet topped up",
			fmt.Sprintf("Your wallet was credited with %s %s.", ledger.Amount.StringFixed(2), wallet.Currency))
		return err
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Transaction not found"))
			return
		}
		if errors.Is(err, errGrossMismatch) {
			log.Printf("⚠️ [wallet.webhook] %v (order %s)", err, notification.OrderID)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Gross amount mismatch"))
			return
		}
		log.Printf("❌ [wallet.webhook] failed to process notification for %s: %v", notification.OrderID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to process notification"))
		return
	}

	log.Printf("✅ [wallet.webhook] order %s -> %s", notification.OrderID, newStatus)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Notification processed", nil))
}
