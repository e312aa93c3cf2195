package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Oil represents a raw-material fragrance oil. Same contract as Supply
// plus the bottle size in milliliters.
type Oil struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex:idx_oils_name"`
	Size         float64   `json:"size" gorm:"not null;default:0"`
	Price        float64   `json:"price" gorm:"not null;default:0"`
	PurchaseLink string    `json:"purchaseLink" gorm:"type:varchar(512)"`
	Quantity     int       `json:"quantity" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (o *Oil) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// CreateOilRequest represents request to create an oil
type CreateOilRequest struct {
	Name         string  `json:"name" binding:"required"`
	Size         float64 `json:"size" binding:"gte=0"`
	Price        float64 `json:"price" binding:"gte=0"`
	PurchaseLink string  `json:"purchaseLink"`
	Quantity     int     `json:"quantity" binding:"gte=0"`
}

// UpdateOilRequest is a full replace of the mutable fields
type UpdateOilRequest struct {
	Name         string  `json:"name" binding:"required"`
	Size         float64 `json:"size" binding:"gte=0"`
	Price        float64 `json:"price" binding:"gte=0"`
	PurchaseLink string  `json:"purchaseLink"`
	Quantity     int     `json:"quantity" binding:"gte=0"`
}
