package models

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CartStatusOpen       = "open"
	CartStatusCheckedOut = "checked_out"

	// MaxCartItemQuantity caps a single line's quantity.
	MaxCartItemQuantity = 99

	// TaxRate and ShippingRate are applied to the discounted subtotal at
	// estimate and checkout time.
	TaxRate      = 0.10
	ShippingRate = 0.05
)

// Cart is the single open cart a customer owns until checkout.
type Cart struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index:idx_carts_user_status"`
	Status           string     `json:"status" gorm:"type:varchar(20);not null;default:'open';index:idx_carts_user_status"`
	CouponCampaignID *uuid.UUID `json:"coupon_campaign_id,omitempty" gorm:"type:uuid"`
	CouponCode       *string    `json:"coupon_code,omitempty"`
	CreatedAt        time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	Items []CartItem `json:"items,omitempty" gorm:"foreignKey:CartID"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	if c.Status == "" {
		c.Status = CartStatusOpen
	}
	return nil
}

func (Cart) TableName() string {
	return "carts"
}

// CartItem is one product/variant line in a cart. Price is re-read from the
// products table at checkout; the stored price is only a display snapshot.
type CartItem struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CartID      uuid.UUID `json:"cart_id" gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	ProductName string    `json:"product_name" gorm:"not null"`
	VariantName *string   `json:"variant_name,omitempty"`
	Price       float64   `json:"price" gorm:"type:numeric(12,2);not null"`
	Quantity    int       `json:"quantity" gorm:"not null;check:quantity > 0"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (CartItem) TableName() string {
	return "cart_items"
}

// ═══════════════════════════════════════════════════════════
// Derived totals
// ═══════════════════════════════════════════════════════════

// CartTotals carries the derived pricing of a cart.
type CartTotals struct {
	Subtotal     float64 `json:"subtotal"`
	Discount     float64 `json:"discount"`
	Tax          float64 `json:"tax"`
	ShippingCost float64 `json:"shipping_cost"`
	Total        float64 `json:"total"`
	ItemCount    int     `json:"item_count"`
}

// ComputeCartTotals derives totals from the cart lines and an already
// evaluated discount. Tax and shipping apply to the discounted subtotal, and
// the discount is clamped to the subtotal so the total never goes negative.
func ComputeCartTotals(items []CartItem, discount float64) CartTotals {
	totals := CartTotals{}
	for _, item := range items {
		totals.Subtotal += item.Price * float64(item.Quantity)
		totals.ItemCount += item.Quantity
	}

	if discount < 0 {
		discount = 0
	}
	if discount > totals.Subtotal {
		discount = totals.Subtotal
	}
	totals.Discount = roundMoney(discount)

	discounted := totals.Subtotal - totals.Discount
	totals.Subtotal = roundMoney(totals.Subtotal)
	totals.Tax = roundMoney(discounted * TaxRate)
	totals.ShippingCost = roundMoney(discounted * ShippingRate)
	totals.Total = roundMoney(discounted + totals.Tax + totals.ShippingCost)

	return totals
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// ═══════════════════════════════════════════════════════════
// Request/Response Models
// ═══════════════════════════════════════════════════════════

type AddCartItemRequest struct {
	ProductID   string  `json:"product_id" binding:"required"`
	VariantName *string `json:"variant_name,omitempty"`
	Quantity    int     `json:"quantity" binding:"required,min=1,max=99"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=99"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

type CartResponse struct {
	ID         uuid.UUID  `json:"id"`
	Items      []CartItem `json:"items"`
	CouponCode *string    `json:"coupon_code,omitempty"`
	Totals     CartTotals `json:"totals"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
