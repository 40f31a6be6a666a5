package services

import (
	"testing"

	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/stretchr/testify/assert"
)

func TestComputeDiscountPercent(t *testing.T) {
	campaign := &models.CouponCampaign{
		DiscountType:  models.DiscountTypePercent,
		DiscountValue: 15,
	}

	assert.Equal(t, 15.00, ComputeDiscount(campaign, 100))
	assert.Equal(t, 3.75, ComputeDiscount(campaign, 25))
}

func TestComputeDiscountPercentRespectsMaxDiscount(t *testing.T) {
	max := 10.0
	campaign := &models.CouponCampaign{
		DiscountType:  models.DiscountTypePercent,
		DiscountValue: 20,
		MaxDiscount:   &max,
	}

	assert.Equal(t, 10.00, ComputeDiscount(campaign, 100)) // would be 20 uncapped
	assert.Equal(t, 4.00, ComputeDiscount(campaign, 20))   // under the cap
}

func TestComputeDiscountFixed(t *testing.T) {
	campaign := &models.CouponCampaign{
		DiscountType:  models.DiscountTypeFixed,
		DiscountValue: 25,
	}

	assert.Equal(t, 25.00, ComputeDiscount(campaign, 100))
}

func TestComputeDiscountFixedClampedToEligibleAmount(t *testing.T) {
	campaign := &models.CouponCampaign{
		DiscountType:  models.DiscountTypeFixed,
		DiscountValue: 50,
	}

	assert.Equal(t, 30.00, ComputeDiscount(campaign, 30))
}

func TestComputeDiscountZeroEligibleAmount(t *testing.T) {
	campaign := &models.CouponCampaign{
		DiscountType:  models.DiscountTypePercent,
		DiscountValue: 50,
	}

	assert.Equal(t, 0.0, ComputeDiscount(campaign, 0))
	assert.Equal(t, 0.0, ComputeDiscount(campaign, -10))
}

func TestComputeDiscountRoundsToCents(t *testing.T) {
	campaign := &models.CouponCampaign{
		DiscountType:  models.DiscountTypePercent,
		DiscountValue: 33,
	}

	assert.Equal(t, 3.30, ComputeDiscount(campaign, 9.99)) // 3.2967 rounds up
}
