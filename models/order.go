package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order status values. Completed may still move to refunded; cancelled and
// refunded are terminal.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRefunded   = "refunded"
)

// orderTransitions lists the allowed next states per status.
var orderTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted:  {OrderStatusRefunded},
	OrderStatusCancelled:  {},
	OrderStatusRefunded:   {},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Order represents a complete customer order
type Order struct {
	ID                 uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	OrderNumber        string     `json:"order_number" gorm:"uniqueIndex;not null"`
	PaymentMethodID    *uuid.UUID `json:"payment_method_id,omitempty" gorm:"type:uuid"`
	AddressID          *uuid.UUID `json:"address_id,omitempty" gorm:"type:uuid"`
	PaymentMethodType  *string    `json:"payment_method_type,omitempty"`
	PaymentMethodLast4 *string    `json:"payment_method_last4,omitempty"`
	AddressSnapshot    *string    `json:"address_snapshot,omitempty" gorm:"type:jsonb"`
	CouponCampaignID   *uuid.UUID `json:"coupon_campaign_id,omitempty" gorm:"type:uuid;index"`
	CouponCode         *string    `json:"coupon_code,omitempty"`
	WalletPaid         float64    `json:"wallet_paid" gorm:"type:numeric(12,2);default:0"`
	Subtotal           float64    `json:"subtotal" gorm:"type:numeric(12,2);not null"`
	Tax                float64    `json:"tax" gorm:"type:numeric(12,2);not null"`
	ShippingCost       float64    `json:"shipping_cost" gorm:"type:numeric(12,2);not null"`
	Discount           float64    `json:"discount" gorm:"type:numeric(12,2);default:0"`
	TotalAmount        float64    `json:"total_amount" gorm:"type:numeric(12,2);not null"`
	Status             string     `json:"status" gorm:"not null;index"`
	DeviceType         string     `json:"device_type" gorm:"type:varchar(20)"`
	CustomerNotes      *string    `json:"customer_notes,omitempty"`
	AdminNotes         *string    `json:"admin_notes,omitempty"`
	CreatedAt          time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt          time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	ShippedAt          *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty"`
	RefundedAt         *time.Time `json:"refunded_at,omitempty"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	return nil
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem represents an individual product line in an order
type OrderItem struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `json:"product_id" gorm:"type:uuid;not null"`
	ProductName string    `json:"product_name" gorm:"not null"`
	VariantName *string   `json:"variant_name,omitempty"`
	Price       float64   `json:"price" gorm:"type:numeric(12,2);not null"`
	Quantity    int       `json:"quantity" gorm:"not null"`
	Subtotal    float64   `json:"subtotal" gorm:"type:numeric(12,2);not null"`
	Status      string    `json:"status" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (OrderItem) TableName() string {
	return "order_items"
}

// OrderWithItems combines an order and its items
type OrderWithItems struct {
	Order
	Items []OrderItem `json:"items"`
}

// OrderHistoryResponse for the storefront list view
type OrderHistoryResponse struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateOrderRequest for checkout
type CreateOrderRequest struct {
	PaymentMethodID string  `json:"payment_method_id" binding:"required"`
	AddressID       string  `json:"address_id" binding:"required"`
	CouponCode      *string `json:"coupon_code,omitempty"`
	UseWallet       bool    `json:"use_wallet"`
	CustomerNotes   *string `json:"customer_notes,omitempty"`
}

// ═══════════════════════════════════════════════════════════
// CMS Views
// ═══════════════════════════════════════════════════════════

type CMSOrderListRow struct {
	ID            uuid.UUID `json:"id"`
	OrderNumber   string    `json:"order_number"`
	CustomerID    uuid.UUID `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CreatedAt     time.Time `json:"created_at"`
	ItemCount     int       `json:"item_count"`
	TotalQuantity int       `json:"total_quantity"`
	TotalAmount   float64   `json:"total_amount"`
	Status        string    `json:"status"`
}

type CMSOrderDetailsResponse struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`

	CustomerID    uuid.UUID `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`

	PaymentMethodType  *string `json:"payment_method_type,omitempty"`
	PaymentMethodLast4 *string `json:"payment_method_last4,omitempty"`

	CouponCode *string `json:"coupon_code,omitempty"`
	WalletPaid float64 `json:"wallet_paid"`

	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shipping_cost"`
	Tax          float64 `json:"tax"`
	Discount     float64 `json:"discount"`
	TotalAmount  float64 `json:"total_amount"`

	CustomerNotes   *string `json:"customer_notes,omitempty"`
	AdminNotes      *string `json:"admin_notes,omitempty"`
	AddressSnapshot *string `json:"address_snapshot,omitempty"`

	Items []OrderItem `gorm:"-" json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status     string  `json:"status" binding:"required,oneof=pending processing shipped completed cancelled refunded"`
	AdminNotes *string `json:"admin_notes,omitempty"` // required for cancelled/refunded
}

type AdminOrderSearchQuery struct {
	Q           string   `form:"q"`
	OrderNumber string   `form:"order_number"`
	Customer    string   `form:"customer"`
	Email       string   `form:"email"`
	Status      string   `form:"status"`
	MinPrice    *float64 `form:"min_price"`
	MaxPrice    *float64 `form:"max_price"`
	CreatedFrom *string  `form:"created_from"` // ISO8601 date or datetime
	CreatedTo   *string  `form:"created_to"`
	Page        int      `form:"page"`
	Limit       int      `form:"limit"`
}

type OrderStatsBreakdown struct {
	Count       int    `json:"count"`
	Description string `json:"description"`
}

type OrderStatsResponse struct {
	TotalOrders                int                 `json:"total_orders"`
	ChangePercentFromLastMonth *float64            `json:"change_percent_from_last_month,omitempty"`
	CurrentMonthTotal          int                 `json:"current_month_total"`
	LastMonthTotal             int                 `json:"last_month_total"`
	Pending                    OrderStatsBreakdown `json:"pending"`
	Processing                 OrderStatsBreakdown `json:"processing"`
	Shipped                    OrderStatsBreakdown `json:"shipped"`
	Completed                  OrderStatsBreakdown `json:"completed"`
	Cancelled                  OrderStatsBreakdown `json:"cancelled"`
	Refunded                   OrderStatsBreakdown `json:"refunded"`
}
