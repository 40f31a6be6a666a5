package category_cache

import (
	"strings"
	"sync"
	"time"

	"github.com/novamart-commerce/novamart-backoffice/models"
)

// ── Active campaign cache ────────────────────────────────────────────────────
// The storefront hits apply-coupon far more often than admins edit campaigns,
// so active campaigns are cached by code for a short TTL.

const campaignTTL = 1 * time.Minute

type campaignEntry struct {
	campaign  models.CouponCampaign
	fetchedAt time.Time
}

var (
	campaignMu    sync.RWMutex
	campaignCache = make(map[string]*campaignEntry)
)

func GetCampaign(code string) (models.CouponCampaign, bool) {
	code = strings.ToUpper(code)

	campaignMu.RLock()
	defer campaignMu.RUnlock()
	entry, ok := campaignCache[code]
	if ok && time.Since(entry.fetchedAt) < campaignTTL {
		return entry.campaign, true
	}
	return models.CouponCampaign{}, false
}

func SetCampaign(campaign models.CouponCampaign) {
	campaignMu.Lock()
	defer campaignMu.Unlock()
	campaignCache[strings.ToUpper(campaign.Code)] = &campaignEntry{
		campaign:  campaign,
		fetchedAt: time.Now(),
	}
}

// InvalidateCampaigns drops every cached campaign. Called on any campaign
// create/update/status change.
func InvalidateCampaigns() {
	campaignMu.Lock()
	defer campaignMu.Unlock()
	campaignCache = make(map[string]*campaignEntry)
}
