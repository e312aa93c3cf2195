package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supply represents a stock-keeping record for packaging and materials
// (bottles, boxes, labels). Same quantity-tracked lifecycle as Fragrance,
// no sale linkage.
type Supply struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex:idx_supplies_name"`
	Price        float64   `json:"price" gorm:"not null;default:0"`
	PurchaseLink string    `json:"purchaseLink" gorm:"type:varchar(512)"`
	Quantity     int       `json:"quantity" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (s *Supply) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// CreateSupplyRequest represents request to create a supply
type CreateSupplyRequest struct {
	Name         string  `json:"name" binding:"required"`
	Price        float64 `json:"price" binding:"gte=0"`
	PurchaseLink string  `json:"purchaseLink"`
	Quantity     int     `json:"quantity" binding:"gte=0"`
}

// UpdateSupplyRequest is a full replace of the mutable fields
type UpdateSupplyRequest struct {
	Name         string  `json:"name" binding:"required"`
	Price        float64 `json:"price" binding:"gte=0"`
	PurchaseLink string  `json:"purchaseLink"`
	Quantity     int     `json:"quantity" binding:"gte=0"`
}
