package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a storefront customer. Accounts come from Google sign-in only.
type User struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Email         string     `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name          string     `json:"name" gorm:"type:varchar(255);not null"`
	GoogleID      string     `json:"google_id" gorm:"column:google_id;type:varchar(255);uniqueIndex;not null"`
	Provider      string     `json:"provider" gorm:"type:varchar(50);default:'google'"`
	Phone         *string    `json:"phone,omitempty" gorm:"type:varchar(50)"`
	Status        string     `json:"status" gorm:"type:varchar(50);default:'active';index"` // active, blocked
	EmailVerified bool       `json:"email_verified" gorm:"column:email_verified;default:true"`
	Avatar        *string    `json:"avatar,omitempty" gorm:"type:text"`
	BlockedReason *string    `json:"blocked_reason,omitempty" gorm:"type:text"`
	LastSeenAt    *time.Time `json:"last_seen_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	Addresses      []Address           `json:"addresses,omitempty" gorm:"foreignKey:UserID"`
	PaymentMethods []UserPaymentMethod `json:"payment_methods,omitempty" gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// UserResponse is the public-facing user data
type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Phone         *string   `json:"phone"`
	Provider      string    `json:"provider"`
	EmailVerified bool      `json:"email_verified"`
	Avatar        *string   `json:"avatar,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Phone:         u.Phone,
		Provider:      u.Provider,
		EmailVerified: u.EmailVerified,
		Avatar:        u.Avatar,
		CreatedAt:     u.CreatedAt,
	}
}

// GoogleUserInfo represents data from Google OAuth
type GoogleUserInfo struct {
	Sub           string `json:"sub"` // Google user ID
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}

// AuthResponse is returned after successful authentication
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// UpdateUserRequest for profile updates
type UpdateUserRequest struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Avatar *string `json:"avatar"`
}
