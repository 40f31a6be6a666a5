package services

import (
	"fmt"
	"os"

	midtransgo "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/shopspring/decimal"
)

// PaymentService wraps the Midtrans Snap client for wallet top-ups
type PaymentService struct {
	client snap.Client
}

func NewPaymentService() *PaymentService {
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	isProduction := os.Getenv("MIDTRANS_IS_PRODUCTION") == "true"

	var env midtransgo.EnvironmentType
	if isProduction {
		env = midtransgo.Production
	} else {
		env = midtransgo.Sandbox
	}

	c := snap.Client{}
	c.New(serverKey, env)

	return &PaymentService{client: c}
}

// CreateTopUpTransaction opens a Snap payment page for a wallet top-up.
// Snap amounts are whole currency units; a fractional amount is rejected
// rather than silently rounded, so the charge always equals the ledger row.
func (s *PaymentService) CreateTopUpTransaction(transactionID string, amount decimal.Decimal, customerName, customerEmail string) (*models.TopUpResponse, error) {
	if !amount.IsInteger() || amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	gross := amount.IntPart()

	snapReq := &snap.Request{
		TransactionDetails: midtransgo.TransactionDetails{
			OrderID:  transactionID,
			GrossAmt: gross,
		},
		CustomerDetail: &midtransgo.CustomerDetails{
			FName: customerName,
			Email: customerEmail,
		},
		Items: &[]midtransgo.ItemDetails{
			{
				ID:    "wallet-topup",
				Price: gross,
				Qty:   1,
				Name:  "Wallet top-up",
			},
		},
	}

	snapResp, err := s.client.CreateTransaction(snapReq)
	if err != nil {
		return nil, fmt.Errorf("failed to create snap transaction: %w", err)
	}

	return &models.TopUpResponse{
		SnapToken:   snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

// SettlementStatus maps a Midtrans notification transaction_status to the
// wallet transaction status it should produce
func SettlementStatus(transactionStatus, fraudStatus string) string {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "accept" {
			return models.WalletTxStatusCompleted
		}
		return models.WalletTxStatusPending
	case "settlement":
		return models.WalletTxStatusCompleted
	case "pending":
		return models.WalletTxStatusPending
	case "deny", "cancel", "expire", "failure":
		return models.WalletTxStatusFailed
	default:
		return models.WalletTxStatusPending
	}
}

// Global instance
var paymentService *PaymentService

func GetPaymentService() *PaymentService {
	if paymentService == nil {
		paymentService = NewPaymentService()
	}
	return paymentService
}
