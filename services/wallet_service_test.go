package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newWalletTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gdb, mock
}

func walletRow(walletID, userID uuid.UUID, balance string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "balance", "currency"}).
		AddRow(walletID.String(), userID.String(), balance, "USD")
}

// Replaying a reference already on the ledger must return the original row
// and leave the balance alone.
func TestWalletServiceIdempotentReplay(t *testing.T) {
	db, mock := newWalletTestDB(t)

	walletID := uuid.Must(uuid.NewV7())
	userID := uuid.Must(uuid.NewV7())
	existingID := uuid.Must(uuid.NewV7())

	mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE user_id = \$1`).
		WillReturnRows(walletRow(walletID, userID, "40.00"))
	mock.ExpectQuery(`SELECT \* FROM "wallet_transactions" WHERE wallet_id = \$1 AND reference = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "wallet_id", "type", "amount", "balance_after", "reference", "reason", "status"}).
			AddRow(existingID.String(), walletID.String(), "credit", "25.00", "65.00", "refund:abc", "Refund", "completed"))

	ledger, err := NewWalletService().Credit(db, userID, decimal.RequireFromString("25.00"), "refund:abc", "Refund", nil)

	require.NoError(t, err)
	assert.Equal(t, existingID, ledger.ID)
	assert.True(t, ledger.BalanceAfter.Equal(decimal.RequireFromString("65.00")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A debit past the balance fails before any write happens.
func TestWalletServiceDebitOverdraft(t *testing.T) {
	db, mock := newWalletTestDB(t)

	walletID := uuid.Must(uuid.NewV7())
	userID := uuid.Must(uuid.NewV7())

	mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE user_id = \$1`).
		WillReturnRows(walletRow(walletID, userID, "10.00"))
	mock.ExpectQuery(`SELECT \* FROM "wallet_transactions" WHERE wallet_id = \$1 AND reference = \$2`).
		WillReturnError(gorm.ErrRecordNotFound)

	ledger, err := NewWalletService().Debit(db, userID, decimal.RequireFromString("25.00"), "order:xyz", "Payment", nil)

	assert.Nil(t, ledger)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletServiceRejectsNonPositiveAmount(t *testing.T) {
	db, mock := newWalletTestDB(t)
	userID := uuid.Must(uuid.NewV7())

	for _, raw := range []string{"0", "-5.00"} {
		ledger, err := NewWalletService().Credit(db, userID, decimal.RequireFromString(raw), "adj:1", "Adjustment", nil)
		assert.Nil(t, ledger, "amount %s", raw)
		assert.ErrorIs(t, err, ErrInvalidAmount, "amount %s", raw)
	}

	// No queries may have reached the database
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletServiceCreditWritesLedger(t *testing.T) {
	db, mock := newWalletTestDB(t)

	walletID := uuid.Must(uuid.NewV7())
	userID := uuid.Must(uuid.NewV7())

	mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE user_id = \$1`).
		WillReturnRows(walletRow(walletID, userID, "40.00"))
	mock.ExpectQuery(`SELECT \* FROM "wallet_transactions" WHERE wallet_id = \$1 AND reference = \$2`).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectExec(`UPDATE "wallets" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "wallet_transactions"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ledger, err := NewWalletService().Credit(db, userID, decimal.RequireFromString("25.00"), "topup:tx1", "Wallet top-up", nil)

	require.NoError(t, err)
	assert.Equal(t, walletID, ledger.WalletID)
	assert.True(t, ledger.BalanceAfter.Equal(decimal.RequireFromString("65.00")))
	assert.Equal(t, "completed", ledger.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
