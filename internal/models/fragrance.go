package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gender partitions the catalog the way the shop displays it
type Gender string

const (
	GenderMen    Gender = "MEN"
	GenderWomen  Gender = "WOMEN"
	GenderUnisex Gender = "UNISEX"
)

// Valid reports whether g is one of the known catalog partitions
func (g Gender) Valid() bool {
	switch g {
	case GenderMen, GenderWomen, GenderUnisex:
		return true
	}
	return false
}

// LowStockThreshold is the fixed stock count below which a fragrance is
// flagged for restocking attention. Presentation hint only, never enforced.
const LowStockThreshold = 5

// Fragrance represents a sellable catalog item.
// Quantity is only mutated through the sale transaction or an explicit
// quantity update and must never go negative.
type Fragrance struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex:idx_fragrances_name"`
	Description string    `json:"description" gorm:"type:text"`
	Gender      Gender    `json:"gender" gorm:"type:varchar(10);not null;index:idx_fragrances_gender"`
	Category    string    `json:"category" gorm:"type:varchar(100)"`
	UnitCost    float64   `json:"unitCost" gorm:"not null;default:0"`
	SalePrice   float64   `json:"salePrice" gorm:"not null;default:0"`
	InspiredBy  string    `json:"inspiredBy" gorm:"type:varchar(255)"`
	Quantity    int       `json:"quantity" gorm:"not null;default:0"`
	ImagePath   string    `json:"imagePath" gorm:"type:varchar(512)"` // opaque file reference, never read by the core
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (f *Fragrance) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// CatalogItem is a fragrance decorated with the derived per-row display
// values. Nothing here is stored.
type CatalogItem struct {
	Fragrance
	TotalCost   float64 `json:"totalCost"`   // unit_cost * quantity
	RetailValue float64 `json:"retailValue"` // sale_price * quantity
	LowStock    bool    `json:"lowStock"`
}

// CreateFragranceRequest represents request to create a fragrance
type CreateFragranceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Gender      Gender  `json:"gender" binding:"required,oneof=MEN WOMEN UNISEX"`
	Category    string  `json:"category"`
	UnitCost    float64 `json:"unitCost" binding:"gte=0"`
	SalePrice   float64 `json:"salePrice" binding:"gte=0"`
	InspiredBy  string  `json:"inspiredBy"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	ImagePath   string  `json:"imagePath"`
}

// UpdateFragranceRequest is a full replace of the mutable fields
type UpdateFragranceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Gender      Gender  `json:"gender" binding:"required,oneof=MEN WOMEN UNISEX"`
	Category    string  `json:"category"`
	UnitCost    float64 `json:"unitCost" binding:"gte=0"`
	SalePrice   float64 `json:"salePrice" binding:"gte=0"`
	InspiredBy  string  `json:"inspiredBy"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	ImagePath   string  `json:"imagePath"`
}

// UpdateQuantityRequest sets an absolute stock count
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
