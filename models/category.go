package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a catalog category (one level of nesting)
type Category struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description" gorm:"not null"`
	Status      string     `json:"status" gorm:"type:varchar(20);default:'Inactive';check:status IN ('Active', 'Inactive')"`
	ParentID    *uuid.UUID `json:"parent_id" gorm:"type:uuid;index"`
	ParentName  *string    `json:"parent_name" gorm:"type:text"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	Parent   *Category   `json:"parent,omitempty" gorm:"foreignKey:ParentID;references:ID"`
	Children []*Category `json:"children,omitempty" gorm:"foreignKey:ParentID"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// AfterUpdate hook - keep children's denormalized parent_name in sync
func (c *Category) AfterUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("Name") {
		return tx.Model(&Category{}).
			Where("parent_id = ?", c.ID).
			Update("parent_name", c.Name).Error
	}
	return nil
}

func (Category) TableName() string {
	return "categories"
}

// CategoryWithProducts extends Category with a product count
type CategoryWithProducts struct {
	ID          uuid.UUID              `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Status      string                 `json:"status"`
	ParentID    *uuid.UUID             `json:"parent_id"`
	ParentName  *string                `json:"parent_name"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	Products    int                    `json:"products"`
	Children    []CategoryWithProducts `json:"children,omitempty"`
}

// CategoryRequest is used when creating a category or subcategory
type CategoryRequest struct {
	Name        string     `json:"name" binding:"required" example:"Coffee"`
	Description string     `json:"description" binding:"required" example:"Beans, ground and instant"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
}

type UpdateCategoryRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
}

type UpdateCategoryStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Active Inactive" example:"Active"`
}
