package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	NotificationTypeOrder     = "order"
	NotificationTypeWallet    = "wallet"
	NotificationTypeTicket    = "ticket"
	NotificationTypePromotion = "promotion"
	NotificationTypeSystem    = "system"
)

// Notification is one in-app message for a customer.
type Notification struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index:idx_notifications_user_read"`
	Type      string     `json:"type" gorm:"type:varchar(20);not null;check:type IN ('order', 'wallet', 'ticket', 'promotion', 'system')"`
	Title     string     `json:"title" gorm:"not null"`
	Body      string     `json:"body" gorm:"type:text;not null"`
	Read      bool       `json:"read" gorm:"default:false;index:idx_notifications_user_read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Notification) TableName() string {
	return "notifications"
}

// OutboxEvent is a pending event row. The API writes events in the same
// transaction as the domain change; cmd/worker publishes them to Kafka and
// stamps dispatched_at.
type OutboxEvent struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	EventType    string         `json:"event_type" gorm:"type:varchar(60);not null;index"`
	AggregateID  uuid.UUID      `json:"aggregate_id" gorm:"type:uuid;not null"`
	Payload      datatypes.JSON `json:"payload" gorm:"type:jsonb;not null"`
	DispatchedAt *time.Time     `json:"dispatched_at,omitempty" gorm:"index"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
}

func (oe *OutboxEvent) BeforeCreate(tx *gorm.DB) error {
	if oe.ID == uuid.Nil {
		oe.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (OutboxEvent) TableName() string {
	return "outbox_events"
}

// Outbox event types
const (
	EventOrderPlaced         = "order.placed"
	EventOrderStatusChanged  = "order.status_changed"
	EventOrderRefunded       = "order.refunded"
	EventWalletAdjusted      = "wallet.adjusted"
	EventNotificationCreated = "notification.created"
	EventTicketReplied       = "ticket.replied"
)

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

// BroadcastNotificationRequest targets one customer or, when UserID is
// empty, every active customer.
type BroadcastNotificationRequest struct {
	UserID *string `json:"user_id,omitempty"`
	Type   string  `json:"type" binding:"required,oneof=order wallet ticket promotion system"`
	Title  string  `json:"title" binding:"required,min=1,max=200"`
	Body   string  `json:"body" binding:"required,min=1"`
}
