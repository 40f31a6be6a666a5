package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
)

// WalletService moves money in and out of customer wallets. All mutations
// run inside the caller's transaction and are idempotent per reference:
// replaying a reference returns the original ledger row without touching
// the balance.
type WalletService struct{}

func NewWalletService() *WalletService {
	return &WalletService{}
}

// GetOrCreateWallet loads a user's wallet with a row lock, creating it with
// a zero balance on first use
func (s *WalletService) GetOrCreateWallet(tx *gorm.DB, userID uuid.UUID) (*models.Wallet, error) {
	var wallet models.Wallet
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&wallet).Error
	if err == nil {
		return &wallet, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	wallet = models.Wallet{
		UserID:   userID,
		Balance:  decimal.Zero,
		Currency: "USD",
	}
	if err := tx.Create(&wallet).Error; err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}
	return &wallet, nil
}

// Credit adds funds to a wallet
func (s *WalletService) Credit(tx *gorm.DB, userID uuid.UUID, amount decimal.Decimal, reference, reason string, adminID *uuid.UUID) (*models.WalletTransaction, error) {
	return s.apply(tx, userID, models.WalletTxCredit, amount, reference, reason, adminID)
}

// Debit removes funds from a wallet. Fails with ErrInsufficientBalance when
// the balance would go negative.
func (s *WalletService) Debit(tx *gorm.DB, userID uuid.UUID, amount decimal.Decimal, reference, reason string, adminID *uuid.UUID) (*models.WalletTransaction, error) {
	return s.apply(tx, userID, models.WalletTxDebit, amount, reference, reason, adminID)
}

func (s *WalletService) apply(tx *gorm.DB, userID uuid.UUID, txType string, amount decimal.Decimal, reference, reason string, adminID *uuid.UUID) (*models.WalletTransaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	wallet, err := s.GetOrCreateWallet(tx, userID)
	if err != nil {
		return nil, err
	}

	// Idempotency: a reference already on the ledger wins
	var existing models.WalletTransaction
	err = tx.Where("wallet_id = ? AND reference = ?", wallet.ID, reference).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var newBalance decimal.Decimal
	switch txType {
	case models.WalletTxCredit:
		newBalance = wallet.Balance.Add(amount)
	case models.WalletTxDebit:
		newBalance = wallet.Balance.Sub(amount)
		if newBalance.IsNegative() {
			return nil, ErrInsufficientBalance
		}
	default:
		return nil, fmt.Errorf("unknown transaction type: %s", txType)
	}

	if err := tx.Model(&models.Wallet{}).
		Where("id = ?", wallet.ID).
		Update("balance", newBalance).Error; err != nil {
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}

	ledger := models.WalletTransaction{
		WalletID:     wallet.ID,
		Type:         txType,
		Amount:       amount,
		BalanceAfter: newBalance,
		Reference:    reference,
		Reason:       reason,
		Status:       models.WalletTxStatusCompleted,
		AdminID:      adminID,
	}
	if err := tx.Create(&ledger).Error; err != nil {
		return nil, fmt.Errorf("failed to write ledger row: %w", err)
	}

	return &ledger, nil
}

// Global instance
var walletService *WalletService

func GetWalletService() *WalletService {
	if walletService == nil {
		walletService = NewWalletService()
	}
	return walletService
}
