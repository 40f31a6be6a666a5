package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	WalletTxCredit = "credit"
	WalletTxDebit  = "debit"

	WalletTxStatusPending   = "pending"
	WalletTxStatusCompleted = "completed"
	WalletTxStatusFailed    = "failed"
)

// Wallet holds one customer's store credit. Balances are exact decimals,
// never floats.
type Wallet struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	Balance   decimal.Decimal `json:"balance" gorm:"type:numeric(14,2);not null;default:0"`
	Currency  string          `json:"currency" gorm:"type:varchar(3);not null;default:'USD'"`
	CreatedAt time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.Must(uuid.NewV7())
	}
	if w.Currency == "" {
		w.Currency = "USD"
	}
	return nil
}

func (Wallet) TableName() string {
	return "wallets"
}

// WalletTransaction is one immutable ledger row. Reference is unique per
// wallet and makes adjustments idempotent: replaying the same reference
// returns the original row instead of moving the balance twice.
type WalletTransaction struct {
	ID           uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	WalletID     uuid.UUID       `json:"wallet_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_wallet_tx_reference,priority:1"`
	Type         string          `json:"type" gorm:"type:varchar(10);not null;check:type IN ('credit', 'debit')"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:numeric(14,2);not null"`
	BalanceAfter decimal.Decimal `json:"balance_after" gorm:"type:numeric(14,2);not null"`
	Reference    string          `json:"reference" gorm:"type:varchar(120);not null;uniqueIndex:idx_wallet_tx_reference,priority:2"`
	Reason       string          `json:"reason" gorm:"not null"`
	Status       string          `json:"status" gorm:"type:varchar(20);not null;default:'completed'"`
	AdminID      *uuid.UUID      `json:"admin_id,omitempty" gorm:"type:uuid"`
	CreatedAt    time.Time       `json:"created_at" gorm:"autoCreateTime;index"`
}

func (wt *WalletTransaction) BeforeCreate(tx *gorm.DB) error {
	if wt.ID == uuid.Nil {
		wt.ID = uuid.Must(uuid.NewV7())
	}
	if wt.Status == "" {
		wt.Status = WalletTxStatusCompleted
	}
	return nil
}

func (WalletTransaction) TableName() string {
	return "wallet_transactions"
}

// ═══════════════════════════════════════════════════════════
// Request/Response Models
// ═══════════════════════════════════════════════════════════

// AdjustWalletRequest is the CMS manual credit/debit payload.
type AdjustWalletRequest struct {
	Type      string  `json:"type" binding:"required,oneof=credit debit"`
	Amount    string  `json:"amount" binding:"required"` // decimal string, e.g. "25.00"
	Reason    string  `json:"reason" binding:"required,min=3"`
	Reference *string `json:"reference,omitempty"` // generated when omitted
}

// TopUpWalletRequest starts a Midtrans Snap top-up.
type TopUpWalletRequest struct {
	Amount string `json:"amount" binding:"required"` // decimal string
}

type WalletResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Balance   string    `json:"balance"`
	Currency  string    `json:"currency"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (w *Wallet) ToResponse() WalletResponse {
	return WalletResponse{
		ID:        w.ID,
		UserID:    w.UserID,
		Balance:   w.Balance.StringFixed(2),
		Currency:  w.Currency,
		UpdatedAt: w.UpdatedAt,
	}
}

type WalletTransactionResponse struct {
	ID           uuid.UUID `json:"id"`
	Type         string    `json:"type"`
	Amount       string    `json:"amount"`
	BalanceAfter string    `json:"balance_after"`
	Reference    string    `json:"reference"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func (wt *WalletTransaction) ToResponse() WalletTransactionResponse {
	return WalletTransactionResponse{
		ID:           wt.ID,
		Type:         wt.Type,
		Amount:       wt.Amount.StringFixed(2),
		BalanceAfter: wt.BalanceAfter.StringFixed(2),
		Reference:    wt.Reference,
		Reason:       wt.Reason,
		Status:       wt.Status,
		CreatedAt:    wt.CreatedAt,
	}
}

type TopUpResponse struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	SnapToken     string    `json:"snap_token"`
	RedirectURL   string    `json:"redirect_url"`
}
