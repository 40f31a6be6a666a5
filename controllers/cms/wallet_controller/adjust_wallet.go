package wallet_controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/novamart-commerce/novamart-backoffice/services"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AdjustWallet godoc
// @Summary Adjust a customer wallet (CMS)
// @Description Manually credit or debit a customer's wallet. Idempotent per reference.
// @Tags CMS - Wallets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID (UUID)"
// @Param adjustment body models.AdjustWalletRequest true "Adjustment"
// @Success 200 {object} models.APIResponse{data=models.WalletTransactionResponse}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 422 {object} models.APIResponse "Insufficient balance"
// @Router /api/v1/admin/customers/{id}/wallet/adjust [post]
func AdjustWallet(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid customer ID"))
		return
	}

	var req models.AdjustWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Amount must be a positive decimal"))
		return
	}

	adminIDRaw, exists := c.Get("adminID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	adminID, err := uuid.Parse(adminIDRaw.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var userCount int64
	if err := config.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", customerID).
		Count(&userCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if userCount == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customer not found"))
		return
	}

	reference := ""
	if req.Reference != nil && *req.Reference != "" {
		reference = "adjust:" + *req.Reference
	} else {
		reference = fmt.Sprintf("adjust:%s:%d", adminID, time.Now().UnixNano())
	}

	var ledger *models.WalletTransaction
	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		if req.Type == models.WalletTxCredit {
			ledger, txErr = services.GetWalletService().Credit(tx, customerID, amount, reference, req.Reason, &adminID)
		} else {
			ledger, txErr = services.GetWalletService().Debit(tx, customerID, amount, reference, req.Reason, &adminID)
		}
		if txErr != nil {
			return txErr
		}

		if err := services.EmitEvent(tx, models.EventWalletAdjusted, customerID, map[string]interface{}{
			"transaction_id": ledger.ID.String(),
			"type":           req.Type,
			"amount":         amount.StringFixed(2),
			"reason":         req.Reason,
			"admin_id":       adminID.String(),
		}); err != nil {
			return err
		}

		verb := "credited to"
		if req.Type == models.WalletTxDebit {
			verb = "debited from"
		}
		_, err := services.NotifyUser(tx, customerID, models.NotificationTypeWallet,
			"Wallet adjustment",
			fmt.Sprintf("$%s was %s your wallet: %s", amount.StringFixed(2), verb, req.Reason))
		return err
	})
	if err != nil {
		if errors.Is(err, services.ErrInsufficientBalance) {
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, "Insufficient wallet balance"))
			return
		}
		if errors.Is(err, services.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Amount must be a positive decimal"))
			return
		}
		log.Printf("❌ [admin.wallets] adjustment failed for %s: %v", customerID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to adjust wallet"))
		return
	}

	log.Printf("✅ [admin.wallets] %s %s $%s for customer %s", adminID, req.Type, amount.StringFixed(2), customerID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wallet adjusted successfully", ledger.ToResponse()))
}
