package category_cache

import (
	"testing"

	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaignCacheRoundTrip(t *testing.T) {
	InvalidateCampaigns()

	campaign := models.CouponCampaign{
		ID:   uuid.Must(uuid.NewV7()),
		Code: "WELCOME10",
	}
	SetCampaign(campaign)

	got, ok := GetCampaign("WELCOME10")
	require.True(t, ok)
	assert.Equal(t, campaign.ID, got.ID)

	// Lookups are case-insensitive, matching how codes are normalized
	got, ok = GetCampaign("welcome10")
	require.True(t, ok)
	assert.Equal(t, campaign.ID, got.ID)
}

func TestCampaignCacheMiss(t *testing.T) {
	InvalidateCampaigns()

	_, ok := GetCampaign("NOPE")
	assert.False(t, ok)
}

func TestCampaignCacheInvalidate(t *testing.T) {
	SetCampaign(models.CouponCampaign{ID: uuid.Must(uuid.NewV7()), Code: "FLASH25"})

	InvalidateCampaigns()

	_, ok := GetCampaign("FLASH25")
	assert.False(t, ok)
}
