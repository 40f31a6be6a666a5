package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

type MediaURL struct {
	URL   string `json:"url" binding:"required"`
	Order *int   `json:"order,omitempty"`
}

type ProductMedia struct {
	Primary MediaURL   `json:"primary" binding:"required"`
	Other   []MediaURL `json:"other,omitempty"`
}

type ProductVariant struct {
	Type    string   `json:"type" binding:"required" example:"Size"`
	Options []string `json:"options" binding:"required" example:"['250g', '500g', '1kg']"`
}

// PackEntry is one stock line: units are held as whole packs, each pack
// holding PackSize sellable units. Loose tracks units left over from a
// pack opened during checkout.
type PackEntry struct {
	Combo       []string `json:"combo" binding:"required" example:"['500g', 'Ground']"`
	VariantName string   `json:"variant_name" binding:"required" example:"500g-Ground"`
	Packs       int      `json:"packs" binding:"required,min=0" example:"12"`
	PackSize    int      `json:"pack_size" binding:"required,min=1" example:"6"`
	Loose       int      `json:"loose,omitempty"`
}

// Units returns the sellable unit count for this entry.
func (p PackEntry) Units() int {
	if p.Packs < 0 || p.PackSize < 1 {
		return 0
	}
	return p.Packs*p.PackSize + p.Loose
}

type Attribute struct {
	Label   string `json:"label" binding:"required" example:"Origin"`
	Content string `json:"content" binding:"required" example:"Colombia"`
}

type SEO struct {
	Title       string `json:"seo_title" binding:"required" example:"Single Origin Coffee"`
	Description string `json:"seo_description" binding:"required" example:"Freshly roasted single origin beans."`
}

// Custom slice types so the JSONB Scan/Value methods can hang off them
type (
	AttributeList []Attribute
	TagList       []string
	VariantList   []ProductVariant
	PackList      []PackEntry
)

// AvailableUnits sums sellable units across all pack entries.
func (pl PackList) AvailableUnits() int {
	total := 0
	for _, entry := range pl {
		total += entry.Units()
	}
	return total
}

// UnitsFor returns the sellable units for a single variant name.
func (pl PackList) UnitsFor(variantName string) int {
	for _, entry := range pl {
		if entry.VariantName == variantName {
			return entry.Units()
		}
	}
	return 0
}

var ErrInsufficientStock = errors.New("insufficient stock")

// Consume removes units from a variant's stock line, opening whole packs
// as needed. An empty variant name targets the first entry.
func (pl PackList) Consume(variantName string, units int) error {
	return pl.adjust(variantName, -units)
}

// Restore returns units to a variant's stock line (order cancellation).
func (pl PackList) Restore(variantName string, units int) error {
	return pl.adjust(variantName, units)
}

func (pl PackList) adjust(variantName string, delta int) error {
	for i := range pl {
		if variantName != "" && pl[i].VariantName != variantName {
			continue
		}
		remaining := pl[i].Units() + delta
		if remaining < 0 {
			return ErrInsufficientStock
		}
		if pl[i].PackSize < 1 {
			return ErrInsufficientStock
		}
		pl[i].Packs = remaining / pl[i].PackSize
		pl[i].Loose = remaining % pl[i].PackSize
		return nil
	}
	return ErrInsufficientStock
}

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID              uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	Name            string        `json:"name" gorm:"not null;index"`
	SKU             string        `json:"sku" gorm:"type:varchar(64);uniqueIndex;not null"`
	Description     string        `json:"description" gorm:"not null"`
	Attributes      AttributeList `json:"attributes" gorm:"type:jsonb;not null;default:'[]'"`
	Price           float64       `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	SubCategoryID   uuid.UUID     `json:"sub_category_id" gorm:"type:uuid;not null;index:idx_products_subcategory"`
	SubCategoryName *string       `json:"sub_category_name,omitempty" gorm:"-"` // Computed field
	SubCategory     *Category     `json:"sub_category,omitempty" gorm:"foreignKey:SubCategoryID;references:ID"`
	SupplierID      *uuid.UUID    `json:"supplier_id,omitempty" gorm:"type:uuid;index"`
	Status          string        `json:"status" gorm:"not null;check:status IN ('Active', 'Draft');index"`
	Tags            TagList       `json:"tags" gorm:"type:jsonb;not null;default:'[]';index:,type:gin"`
	Media           ProductMedia  `json:"media" gorm:"type:jsonb;not null;default:'{}'"`
	Variants        VariantList   `json:"variants" gorm:"type:jsonb;not null;default:'[]'"`
	Inventory       PackList      `json:"inventory" gorm:"type:jsonb;not null;default:'[]'"`
	SEO             SEO           `json:"seo" gorm:"type:jsonb;not null;default:'{}'"`
	Views           int           `json:"views" gorm:"default:0;index:idx_products_views,sort:desc"`
	CreatedAt       time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// AfterFind hook - populate SubCategoryName from relationship
func (p *Product) AfterFind(tx *gorm.DB) error {
	if p.SubCategory != nil {
		p.SubCategoryName = &p.SubCategory.Name
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Name          string           `json:"name" binding:"required" example:"House Blend Coffee"`
	SKU           string           `json:"sku" binding:"required" example:"NM-COF-001"`
	Description   string           `json:"description" binding:"required" example:"Medium roast house blend"`
	Attributes    []Attribute      `json:"attributes" binding:"required,dive"`
	Price         float64          `json:"price" binding:"required,min=0" example:"18.50"`
	SubCategoryID uuid.UUID        `json:"sub_category_id" binding:"required"`
	SupplierID    *uuid.UUID       `json:"supplier_id,omitempty"`
	Status        string           `json:"status" binding:"required,oneof=Active Draft" example:"Draft"`
	Tags          []string         `json:"tags" binding:"required" example:"['coffee', 'organic']"`
	Media         ProductMedia     `json:"media" binding:"required"`
	Variants      []ProductVariant `json:"variants" binding:"required,dive"`
	Inventory     []PackEntry      `json:"inventory" binding:"required,dive"`
	SEO           SEO              `json:"seo" binding:"required"`
}

type UpdateProductRequest struct {
	Name          *string           `json:"name"`
	SKU           *string           `json:"sku"`
	Description   *string           `json:"description"`
	Attributes    *[]Attribute      `json:"attributes"`
	Price         *float64          `json:"price" binding:"omitempty,min=0"`
	SubCategoryID *uuid.UUID        `json:"sub_category_id"`
	SupplierID    *uuid.UUID        `json:"supplier_id"`
	Status        *string           `json:"status" binding:"omitempty,oneof=Active Draft"`
	Tags          *[]string         `json:"tags"`
	Media         *ProductMedia     `json:"media"`
	Variants      *[]ProductVariant `json:"variants"`
	Inventory     *[]PackEntry      `json:"inventory"`
	SEO           *SEO              `json:"seo"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type ProductBase struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	SKU             string      `json:"sku"`
	Description     string      `json:"description"`
	Attributes      []Attribute `json:"attributes"`
	Price           float64     `json:"price"`
	SubCategoryID   uuid.UUID   `json:"sub_category_id"`
	SubCategoryName *string     `json:"sub_category_name,omitempty"`
	SubCategoryPath *string     `json:"sub_category_path,omitempty"`
	SupplierID      *uuid.UUID  `json:"supplier_id,omitempty"`
	Status          string      `json:"status"`
	Tags            []string    `json:"tags"`
	AvailableUnits  int         `json:"available_units"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type ProductResponse struct {
	BasicInfo ProductBase      `json:"basic_info"`
	SEO       SEO              `json:"seo"`
	Media     ProductMedia     `json:"media"`
	Variants  []ProductVariant `json:"variants"`
	Inventory []PackEntry      `json:"inventory"`
}

type ProductStatsResponse struct {
	TotalProducts      int     `json:"total_products"`
	ActiveProducts     int     `json:"active_products"`
	DraftProducts      int     `json:"draft_products"`
	PercentageActive   float64 `json:"percentage_active"`
	AveragePrice       float64 `json:"average_price"`
	TotalUnits         int     `json:"total_units"`
	LowStockProducts   int     `json:"low_stock_products"`
	PercentageLowStock float64 `json:"percentage_low_stock"`
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom slice types)
// ═══════════════════════════════════════════════════════════

func (a *AttributeList) Scan(value interface{}) error {
	if value == nil {
		*a = make(AttributeList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan AttributeList")
	}
	return json.Unmarshal(bytes, a)
}

func (a AttributeList) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal([]Attribute{})
	}
	return json.Marshal(a)
}

func (t *TagList) Scan(value interface{}) error {
	if value == nil {
		*t = make(TagList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan TagList")
	}
	return json.Unmarshal(bytes, t)
}

func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(t)
}

func (v *VariantList) Scan(value interface{}) error {
	if value == nil {
		*v = make(VariantList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan VariantList")
	}
	return json.Unmarshal(bytes, v)
}

func (v VariantList) Value() (driver.Value, error) {
	if v == nil {
		return json.Marshal([]ProductVariant{})
	}
	return json.Marshal(v)
}

func (pl *PackList) Scan(value interface{}) error {
	if value == nil {
		*pl = make(PackList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan PackList")
	}
	return json.Unmarshal(bytes, pl)
}

func (pl PackList) Value() (driver.Value, error) {
	if pl == nil {
		return json.Marshal([]PackEntry{})
	}
	return json.Marshal(pl)
}

func (m *ProductMedia) Scan(value interface{}) error {
	if value == nil {
		*m = ProductMedia{Other: make([]MediaURL, 0)}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ProductMedia")
	}
	return json.Unmarshal(bytes, m)
}

func (m ProductMedia) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (s *SEO) Scan(value interface{}) error {
	if value == nil {
		*s = SEO{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan SEO")
	}
	return json.Unmarshal(bytes, s)
}

func (s SEO) Value() (driver.Value, error) {
	return json.Marshal(s)
}
