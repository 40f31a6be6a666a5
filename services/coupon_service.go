package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	campaign_cache "github.com/novamart-commerce/novamart-backoffice/cache"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Rejection reasons returned by EvaluateCampaign. Controllers surface these
// verbatim so the storefront can tell the customer why a code was refused.
var (
	ErrCouponNotFound      = errors.New("coupon code not found")
	ErrCouponInactive      = errors.New("coupon is not active")
	ErrCouponNotStarted    = errors.New("coupon is not yet valid")
	ErrCouponExpired       = errors.New("coupon has expired")
	ErrCouponMinSubtotal   = errors.New("cart subtotal is below the coupon minimum")
	ErrCouponCategoryScope = errors.New("no cart items are eligible for this coupon")
	ErrCouponFirstOrder    = errors.New("coupon is only valid on a first order")
	ErrCouponUserLimit     = errors.New("coupon already used the maximum number of times")
	ErrCouponExhausted     = errors.New("coupon redemption limit reached")
)

// CouponService evaluates and redeems coupon campaigns
type CouponService struct{}

func NewCouponService() *CouponService {
	return &CouponService{}
}

// EvaluationResult is the outcome of a successful campaign evaluation
type EvaluationResult struct {
	Campaign       *models.CouponCampaign
	Discount       float64
	EligibleAmount float64
}

// EvaluateCampaign checks a code against a user's cart and order history and
// returns the discount it would grant. Every rule failure maps to one of the
// sentinel errors above. The campaign itself is served from the in-process
// cache when warm; the counts always run on db.
//
// Rules, in order: campaign exists and is active, the time window is open,
// the global redemption cap is not exhausted, the first-order restriction
// holds, the per-user limit holds, the subtotal floor is met, and at least
// one cart line falls inside the category scope.
func (s *CouponService) EvaluateCampaign(db *gorm.DB, code string, userID uuid.UUID, items []models.CartItem) (*EvaluationResult, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	campaign, ok := campaign_cache.GetCampaign(code)
	if !ok {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		if err := db.WithContext(ctx).
			Where("code = ?", code).
			First(&campaign).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCouponNotFound
			}
			return nil, err
		}
		campaign_cache.SetCampaign(campaign)
	}

	return s.evaluate(db, &campaign, userID, items)
}

// EvaluateCampaignLocked is the checkout-side evaluation: it pins the
// campaign row with FOR UPDATE inside the caller's transaction so two
// concurrent checkouts serialize on the redemption caps, and it never reads
// from the cache. Must run inside a transaction.
func (s *CouponService) EvaluateCampaignLocked(tx *gorm.DB, code string, userID uuid.UUID, items []models.CartItem) (*EvaluationResult, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	var campaign models.CouponCampaign
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("code = ?", code).
		First(&campaign).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}

	return s.evaluate(tx, &campaign, userID, items)
}

func (s *CouponService) evaluate(db *gorm.DB, campaign *models.CouponCampaign, userID uuid.UUID, items []models.CartItem) (*EvaluationResult, error) {
	if !campaign.IsActive {
		return nil, ErrCouponInactive
	}

	now := time.Now()
	if now.Before(campaign.StartsAt) {
		return nil, ErrCouponNotStarted
	}
	if campaign.EndsAt != nil && now.After(*campaign.EndsAt) {
		return nil, ErrCouponExpired
	}

	if campaign.MaxRedemptions != nil {
		var activeCount int64
		if err := db.
			Model(&models.CouponRedemption{}).
			Where("campaign_id = ? AND released = ?", campaign.ID, false).
			Count(&activeCount).Error; err != nil {
			return nil, err
		}
		if activeCount >= int64(*campaign.MaxRedemptions) {
			return nil, ErrCouponExhausted
		}
	}

	if campaign.FirstOrderOnly {
		var orderCount int64
		if err := db.
			Model(&models.Order{}).
			Where("user_id = ? AND status NOT IN ?", userID, []string{models.OrderStatusCancelled, models.OrderStatusRefunded}).
			Count(&orderCount).Error; err != nil {
			return nil, err
		}
		if orderCount > 0 {
			return nil, ErrCouponFirstOrder
		}
	}

	var userCount int64
	if err := db.
		Model(&models.CouponRedemption{}).
		Where("campaign_id = ? AND user_id = ? AND released = ?", campaign.ID, userID, false).
		Count(&userCount).Error; err != nil {
		return nil, err
	}
	if userCount >= int64(campaign.PerUserLimit) {
		return nil, ErrCouponUserLimit
	}

	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	if subtotal < campaign.MinSubtotal {
		return nil, ErrCouponMinSubtotal
	}

	eligible, err := s.eligibleAmount(db, campaign, items)
	if err != nil {
		return nil, err
	}
	if eligible <= 0 {
		return nil, ErrCouponCategoryScope
	}

	discount := ComputeDiscount(campaign, eligible)

	return &EvaluationResult{
		Campaign:       campaign,
		Discount:       discount,
		EligibleAmount: eligible,
	}, nil
}

// eligibleAmount returns the portion of the cart the campaign applies to.
// An empty category scope covers the whole cart; otherwise only lines whose
// product belongs to a scoped category (directly or via its parent) count.
func (s *CouponService) eligibleAmount(db *gorm.DB, campaign *models.CouponCampaign, items []models.CartItem) (float64, error) {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	if len(campaign.CategoryScope) == 0 {
		return total, nil
	}

	productIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}

	type productCategory struct {
		ID            uuid.UUID
		SubCategoryID uuid.UUID
		ParentID      *uuid.UUID
	}

	var rows []productCategory
	if err := db.
		Table("products").
		Select("products.id, products.sub_category_id, categories.parent_id").
		Joins("LEFT JOIN categories ON categories.id = products.sub_category_id").
		Where("products.id IN ?", productIDs).
		Scan(&rows).Error; err != nil {
		return 0, err
	}

	scoped := make(map[uuid.UUID]bool, len(campaign.CategoryScope))
	for _, id := range campaign.CategoryScope {
		scoped[id] = true
	}

	eligibleProducts := make(map[uuid.UUID]bool, len(rows))
	for _, row := range rows {
		if scoped[row.SubCategoryID] {
			eligibleProducts[row.ID] = true
			continue
		}
		if row.ParentID != nil && scoped[*row.ParentID] {
			eligibleProducts[row.ID] = true
		}
	}

	eligible := 0.0
	for _, item := range items {
		if eligibleProducts[item.ProductID] {
			eligible += item.Price * float64(item.Quantity)
		}
	}

	return eligible, nil
}

// ComputeDiscount applies the campaign's discount to the eligible amount.
// Percent discounts respect MaxDiscount, fixed discounts never exceed the
// eligible amount.
func ComputeDiscount(campaign *models.CouponCampaign, eligibleAmount float64) float64 {
	if eligibleAmount <= 0 {
		return 0
	}

	var discount float64
	switch campaign.DiscountType {
	case models.DiscountTypePercent:
		discount = eligibleAmount * campaign.DiscountValue / 100
		if campaign.MaxDiscount != nil && discount > *campaign.MaxDiscount {
			discount = *campaign.MaxDiscount
		}
	case models.DiscountTypeFixed:
		discount = campaign.DiscountValue
	}

	if discount > eligibleAmount {
		discount = eligibleAmount
	}
	if discount < 0 {
		discount = 0
	}

	return float64(int(discount*100+0.5)) / 100
}

// RecordRedemption writes a redemption row and bumps the campaign counter
// inside the caller's transaction
func (s *CouponService) RecordRedemption(tx *gorm.DB, campaignID, userID, orderID uuid.UUID, discount float64) error {
	redemption := models.CouponRedemption{
		CampaignID: campaignID,
		UserID:     userID,
		OrderID:    orderID,
		Discount:   discount,
	}

	if err := tx.Create(&redemption).Error; err != nil {
		return fmt.Errorf("failed to record redemption: %w", err)
	}

	if err := tx.Model(&models.CouponCampaign{}).
		Where("id = ?", campaignID).
		UpdateColumn("redemption_count", gorm.Expr("redemption_count + 1")).Error; err != nil {
		return fmt.Errorf("failed to bump redemption count: %w", err)
	}

	return nil
}

// ReleaseRedemption marks an order's redemption released so it no longer
// counts against per-user or global limits. Used on cancel and refund.
func (s *CouponService) ReleaseRedemption(tx *gorm.DB, orderID uuid.UUID) error {
	result := tx.Model(&models.CouponRedemption{}).
		Where("order_id = ? AND released = ?", orderID, false).
		Update("released", true)
	if result.Error != nil {
		return fmt.Errorf("failed to release redemption: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		var redemption models.CouponRedemption
		if err := tx.Where("order_id = ?", orderID).First(&redemption).Error; err == nil {
			if err := tx.Model(&models.CouponCampaign{}).
				Where("id = ? AND redemption_count > 0", redemption.CampaignID).
				UpdateColumn("redemption_count", gorm.Expr("redemption_count - 1")).Error; err != nil {
				log.Printf("⚠️ [coupon] failed to decrement redemption count for campaign %s: %v", redemption.CampaignID, err)
			}
		}
	}

	return nil
}

// Global instance
var couponService *CouponService

func GetCouponService() *CouponService {
	if couponService == nil {
		couponService = NewCouponService()
	}
	return couponService
}
