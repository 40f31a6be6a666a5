package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func campaignRow(campaignID uuid.UUID, code string, maxRedemptions int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "code", "description", "discount_type", "discount_value",
		"min_subtotal", "category_scope", "first_order_only", "per_user_limit",
		"max_redemptions", "redemption_count", "starts_at", "is_active",
	}).AddRow(
		campaignID.String(), code, "Launch promo", models.DiscountTypePercent, 10.0,
		0.0, []byte("[]"), false, 1,
		maxRedemptions, 0, time.Now().Add(-time.Hour), true,
	)
}

// Checkout evaluation must pin the campaign row so two orders racing for the
// last redemption count it one at a time instead of both slipping under the cap.
func TestEvaluateCampaignLockedExhaustedCap(t *testing.T) {
	db, mock := newWalletTestDB(t)

	campaignID := uuid.Must(uuid.NewV7())
	userID := uuid.Must(uuid.NewV7())
	items := []models.CartItem{{ProductID: uuid.Must(uuid.NewV7()), ProductName: "House Blend", Price: 30.00, Quantity: 1}}

	// The campaign load has to carry the row lock
	mock.ExpectQuery(`SELECT \* FROM "coupon_campaigns" WHERE code = \$1 (.+)FOR UPDATE`).
		WillReturnRows(campaignRow(campaignID, "LAUNCH10", 2))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "coupon_redemptions" WHERE campaign_id = \$1 AND released = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	result, err := NewCouponService().EvaluateCampaignLocked(db, "launch10", userID, items)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrCouponExhausted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEvaluateCampaignLockedGrantsDiscount(t *testing.T) {
	db, mock := newWalletTestDB(t)

	campaignID := uuid.Must(uuid.NewV7())
	userID := uuid.Must(uuid.NewV7())
	items := []models.CartItem{{ProductID: uuid.Must(uuid.NewV7()), ProductName: "House Blend", Price: 30.00, Quantity: 2}}

	mock.ExpectQuery(`SELECT \* FROM "coupon_campaigns" WHERE code = \$1 (.+)FOR UPDATE`).
		WillReturnRows(campaignRow(campaignID, "LAUNCH10", 100))
	// Global cap count, then the per-user count
	mock.ExpectQuery(`SELECT count\(\*\) FROM "coupon_redemptions" WHERE campaign_id = \$1 AND released = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "coupon_redemptions" WHERE campaign_id = \$1 AND user_id = \$2 AND released = \$3`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	result, err := NewCouponService().EvaluateCampaignLocked(db, "LAUNCH10", userID, items)

	require.NoError(t, err)
	assert.Equal(t, campaignID, result.Campaign.ID)
	assert.InDelta(t, 6.00, result.Discount, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}
