package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supplier is a vendor that stocks products for the store.
type Supplier struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CompanyName  string    `json:"company_name" gorm:"not null;index"`
	ContactName  string    `json:"contact_name" gorm:"not null"`
	Email        string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone        *string   `json:"phone,omitempty" gorm:"type:varchar(50)"`
	Country      *string   `json:"country,omitempty" gorm:"type:varchar(80)"`
	LeadTimeDays int       `json:"lead_time_days" gorm:"default:7"`
	Status       string    `json:"status" gorm:"type:varchar(20);default:'active';check:status IN ('active', 'inactive');index"`
	Notes        *string   `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	if s.Status == "" {
		s.Status = "active"
	}
	return nil
}

func (Supplier) TableName() string {
	return "suppliers"
}

type SupplierRequest struct {
	CompanyName  string  `json:"company_name" binding:"required" example:"Andes Coffee Co"`
	ContactName  string  `json:"contact_name" binding:"required" example:"Lucia Fernandez"`
	Email        string  `json:"email" binding:"required,email"`
	Phone        *string `json:"phone,omitempty"`
	Country      *string `json:"country,omitempty"`
	LeadTimeDays int     `json:"lead_time_days" binding:"omitempty,min=0"`
	Notes        *string `json:"notes,omitempty"`
}

type UpdateSupplierRequest struct {
	CompanyName  *string `json:"company_name"`
	ContactName  *string `json:"contact_name"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone"`
	Country      *string `json:"country"`
	LeadTimeDays *int    `json:"lead_time_days" binding:"omitempty,min=0"`
	Status       *string `json:"status" binding:"omitempty,oneof=active inactive"`
	Notes        *string `json:"notes"`
}

// SupplierListRow adds the supplied-products count to the list view.
type SupplierListRow struct {
	Supplier
	ProductCount int `json:"product_count"`
}
