package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DiscountTypePercent = "percent"
	DiscountTypeFixed   = "fixed"
)

// UUIDList is a JSONB array of category IDs scoping a campaign.
type UUIDList []uuid.UUID

func (u *UUIDList) Scan(value interface{}) error {
	if value == nil {
		*u = make(UUIDList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan UUIDList")
	}
	return json.Unmarshal(bytes, u)
}

func (u UUIDList) Value() (driver.Value, error) {
	if u == nil {
		return json.Marshal([]uuid.UUID{})
	}
	return json.Marshal(u)
}

// CouponCampaign is a discount campaign redeemable by code at checkout.
type CouponCampaign struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Code            string     `json:"code" gorm:"type:varchar(40);uniqueIndex;not null"`
	Description     string     `json:"description" gorm:"not null"`
	DiscountType    string     `json:"discount_type" gorm:"type:varchar(10);not null;check:discount_type IN ('percent', 'fixed')"`
	DiscountValue   float64    `json:"discount_value" gorm:"type:numeric(12,2);not null;check:discount_value > 0"`
	MaxDiscount     *float64   `json:"max_discount,omitempty" gorm:"type:numeric(12,2)"`
	MinSubtotal     float64    `json:"min_subtotal" gorm:"type:numeric(12,2);default:0"`
	CategoryScope   UUIDList   `json:"category_scope" gorm:"type:jsonb;not null;default:'[]'"`
	FirstOrderOnly  bool       `json:"first_order_only" gorm:"default:false"`
	PerUserLimit    int        `json:"per_user_limit" gorm:"default:1"`
	MaxRedemptions  *int       `json:"max_redemptions,omitempty"`
	RedemptionCount int        `json:"redemption_count" gorm:"default:0"`
	StartsAt        time.Time  `json:"starts_at" gorm:"not null"`
	EndsAt          *time.Time `json:"ends_at,omitempty"`
	IsActive        bool       `json:"is_active" gorm:"default:true;index"`
	CreatedAt       time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (cc *CouponCampaign) BeforeCreate(tx *gorm.DB) error {
	if cc.ID == uuid.Nil {
		cc.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (CouponCampaign) TableName() string {
	return "coupon_campaigns"
}

// CouponRedemption records one use of a campaign by a customer. Released
// redemptions (refund/cancel) keep the row with released=true so the
// per-user count excludes them.
type CouponRedemption struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CampaignID uuid.UUID `json:"campaign_id" gorm:"type:uuid;not null;index:idx_redemptions_campaign_user"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index:idx_redemptions_campaign_user"`
	OrderID    uuid.UUID `json:"order_id" gorm:"type:uuid;not null;uniqueIndex"`
	Discount   float64   `json:"discount" gorm:"type:numeric(12,2);not null"`
	Released   bool      `json:"released" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (cr *CouponRedemption) BeforeCreate(tx *gorm.DB) error {
	if cr.ID == uuid.Nil {
		cr.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (CouponRedemption) TableName() string {
	return "coupon_redemptions"
}

// ═══════════════════════════════════════════════════════════
// Request/Response Models
// ═══════════════════════════════════════════════════════════

type CouponCampaignRequest struct {
	Code           string      `json:"code" binding:"required,min=3,max=40" example:"WELCOME10"`
	Description    string      `json:"description" binding:"required"`
	DiscountType   string      `json:"discount_type" binding:"required,oneof=percent fixed"`
	DiscountValue  float64     `json:"discount_value" binding:"required,gt=0"`
	MaxDiscount    *float64    `json:"max_discount,omitempty" binding:"omitempty,gt=0"`
	MinSubtotal    float64     `json:"min_subtotal" binding:"omitempty,min=0"`
	CategoryScope  []uuid.UUID `json:"category_scope,omitempty"`
	FirstOrderOnly bool        `json:"first_order_only"`
	PerUserLimit   int         `json:"per_user_limit" binding:"omitempty,min=1"`
	MaxRedemptions *int        `json:"max_redemptions,omitempty" binding:"omitempty,min=1"`
	StartsAt       time.Time   `json:"starts_at" binding:"required"`
	EndsAt         *time.Time  `json:"ends_at,omitempty"`
	IsActive       *bool       `json:"is_active,omitempty"`
}

type UpdateCouponCampaignRequest struct {
	Description    *string      `json:"description"`
	DiscountType   *string      `json:"discount_type" binding:"omitempty,oneof=percent fixed"`
	DiscountValue  *float64     `json:"discount_value" binding:"omitempty,gt=0"`
	MaxDiscount    *float64     `json:"max_discount" binding:"omitempty,gt=0"`
	MinSubtotal    *float64     `json:"min_subtotal" binding:"omitempty,min=0"`
	CategoryScope  *[]uuid.UUID `json:"category_scope"`
	FirstOrderOnly *bool        `json:"first_order_only"`
	PerUserLimit   *int         `json:"per_user_limit" binding:"omitempty,min=1"`
	MaxRedemptions *int         `json:"max_redemptions" binding:"omitempty,min=1"`
	StartsAt       *time.Time   `json:"starts_at"`
	EndsAt         *time.Time   `json:"ends_at"`
}

type UpdateCampaignStatusRequest struct {
	IsActive bool `json:"is_active"`
}

type CampaignStatsResponse struct {
	CampaignID       uuid.UUID `json:"campaign_id"`
	Code             string    `json:"code"`
	Redemptions      int       `json:"redemptions"`
	ActiveRedeems    int       `json:"active_redemptions"`
	ReleasedRedeems  int       `json:"released_redemptions"`
	TotalDiscounted  float64   `json:"total_discounted"`
	RemainingRedeems *int      `json:"remaining_redemptions,omitempty"`
	UniqueCustomers  int       `json:"unique_customers"`
	LastRedemptionAt *string   `json:"last_redemption_at,omitempty"`
}
