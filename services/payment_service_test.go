package services

import (
	"testing"

	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// Fractional and non-positive amounts never reach Midtrans; Snap works in
// whole currency units and rounding would charge less than the ledger holds.
func TestCreateTopUpTransactionRejectsFractionalAmount(t *testing.T) {
	svc := NewPaymentService()

	for _, raw := range []string{"1.99", "0.50", "0", "-10"} {
		amount, err := decimal.NewFromString(raw)
		assert.NoError(t, err)

		resp, err := svc.CreateTopUpTransaction("tx-test", amount, "Shopper", "shopper@example.com")
		assert.Nil(t, resp, "amount %s", raw)
		assert.ErrorIs(t, err, ErrInvalidAmount, "amount %s", raw)
	}
}

func TestSettlementStatus(t *testing.T) {
	tests := []struct {
		transactionStatus string
		fraudStatus       string
		want              string
	}{
		{"settlement", "", models.WalletTxStatusCompleted},
		{"capture", "accept", models.WalletTxStatusCompleted},
		{"capture", "challenge", models.WalletTxStatusPending},
		{"pending", "", models.WalletTxStatusPending},
		{"deny", "", models.WalletTxStatusFailed},
		{"cancel", "", models.WalletTxStatusFailed},
		{"expire", "", models.WalletTxStatusFailed},
		{"failure", "", models.WalletTxStatusFailed},
		{"something-new", "", models.WalletTxStatusPending},
	}

	for _, tt := range tests {
		got := SettlementStatus(tt.transactionStatus, tt.fraudStatus)
		assert.Equal(t, tt.want, got, "%s/%s", tt.transactionStatus, tt.fraudStatus)
	}
}
