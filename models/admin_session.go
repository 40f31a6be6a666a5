package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminSession represents an active admin session. The JWT is only accepted
// while its session row is active and unexpired.
type AdminSession struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AdminID        uuid.UUID `json:"admin_id" gorm:"type:uuid;not null;index"`
	TokenHash      string    `json:"-" gorm:"not null;uniqueIndex"` // SHA256 of the JWT
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	LastActivityAt time.Time `json:"last_activity_at" gorm:"index"`
	ExpiresAt      time.Time `json:"expires_at" gorm:"index"`
	IsActive       bool      `json:"is_active" gorm:"default:true;index"`
}

func (as *AdminSession) BeforeCreate(tx *gorm.DB) error {
	if as.ID == uuid.Nil {
		as.ID = uuid.Must(uuid.NewV7())
	}
	if as.ExpiresAt.IsZero() {
		as.ExpiresAt = time.Now().Add(24 * time.Hour)
	}
	if as.LastActivityAt.IsZero() {
		as.LastActivityAt = time.Now()
	}
	return nil
}

func (AdminSession) TableName() string {
	return "admin_sessions"
}

// IsExpired checks if session has expired
func (as *AdminSession) IsExpired() bool {
	return time.Now().After(as.ExpiresAt)
}

type AdminSessionResponse struct {
	ID             uuid.UUID `json:"id"`
	AdminID        uuid.UUID `json:"admin_id"`
	IPAddress      string    `json:"ip_address"`
	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	ExpiresAt      time.Time `json:"expires_at"`
	IsActive       bool      `json:"is_active"`
}

func (as *AdminSession) ToResponse() AdminSessionResponse {
	return AdminSessionResponse{
		ID:             as.ID,
		AdminID:        as.AdminID,
		IPAddress:      as.IPAddress,
		CreatedAt:      as.CreatedAt,
		LastActivityAt: as.LastActivityAt,
		ExpiresAt:      as.ExpiresAt,
		IsActive:       as.IsActive,
	}
}
