package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TicketStatusOpen     = "open"
	TicketStatusPending  = "pending"
	TicketStatusResolved = "resolved"
	TicketStatusClosed   = "closed"
)

// ticketTransitions lists the allowed next states per ticket status.
var ticketTransitions = map[string][]string{
	TicketStatusOpen:     {TicketStatusPending, TicketStatusResolved, TicketStatusClosed},
	TicketStatusPending:  {TicketStatusResolved, TicketStatusClosed},
	TicketStatusResolved: {TicketStatusClosed, TicketStatusPending},
	TicketStatusClosed:   {},
}

// CanTransitionTicket reports whether a ticket may move between statuses.
func CanTransitionTicket(from, to string) bool {
	for _, allowed := range ticketTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// SupportTicket is a customer support thread.
type SupportTicket struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	TicketNumber string     `json:"ticket_number" gorm:"type:varchar(30);uniqueIndex;not null"`
	UserID       uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	Subject      string     `json:"subject" gorm:"not null"`
	Category     string     `json:"category" gorm:"type:varchar(30);not null;check:category IN ('order', 'payment', 'product', 'account', 'other')"`
	Status       string     `json:"status" gorm:"type:varchar(20);not null;default:'open';index"`
	OrderID      *uuid.UUID `json:"order_id,omitempty" gorm:"type:uuid"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`

	Replies []TicketReply `json:"replies,omitempty" gorm:"foreignKey:TicketID"`
}

func (st *SupportTicket) BeforeCreate(tx *gorm.DB) error {
	if st.ID == uuid.Nil {
		st.ID = uuid.Must(uuid.NewV7())
	}
	if st.Status == "" {
		st.Status = TicketStatusOpen
	}
	return nil
}

func (SupportTicket) TableName() string {
	return "support_tickets"
}

// TicketReply is one message in a ticket thread, from the customer or an
// admin.
type TicketReply struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	TicketID   uuid.UUID  `json:"ticket_id" gorm:"type:uuid;not null;index"`
	AuthorType string     `json:"author_type" gorm:"type:varchar(10);not null;check:author_type IN ('customer', 'admin')"`
	AuthorID   uuid.UUID  `json:"author_id" gorm:"type:uuid;not null"`
	AuthorName string     `json:"author_name" gorm:"not null"`
	Body       string     `json:"body" gorm:"type:text;not null"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

func (tr *TicketReply) BeforeCreate(tx *gorm.DB) error {
	if tr.ID == uuid.Nil {
		tr.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (TicketReply) TableName() string {
	return "ticket_replies"
}

// ═══════════════════════════════════════════════════════════
// Request/Response Models
// ═══════════════════════════════════════════════════════════

type CreateTicketRequest struct {
	Subject  string  `json:"subject" binding:"required,min=3,max=200"`
	Category string  `json:"category" binding:"required,oneof=order payment product account other"`
	Body     string  `json:"body" binding:"required,min=10"`
	OrderID  *string `json:"order_id,omitempty"`
}

type TicketReplyRequest struct {
	Body string `json:"body" binding:"required,min=1"`
}

type UpdateTicketStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open pending resolved closed"`
}

// CMSTicketListRow joins in the customer identity for the admin list view.
type CMSTicketListRow struct {
	ID            uuid.UUID `json:"id"`
	TicketNumber  string    `json:"ticket_number"`
	Subject       string    `json:"subject"`
	Category      string    `json:"category"`
	Status        string    `json:"status"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	ReplyCount    int       `json:"reply_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
