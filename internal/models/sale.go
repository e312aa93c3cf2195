package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale is an immutable ledger row for one stock-depleting transaction.
// UnitCost and SalePrice are snapshotted from the fragrance at sale time
// so later catalog edits never rewrite history. There is no update or
// delete operation on sales.
type Sale struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FragranceID uuid.UUID `json:"fragranceId" gorm:"type:uuid;not null;index:idx_sales_fragrance"`
	CustomerID  uuid.UUID `json:"customerId" gorm:"type:uuid;not null;index:idx_sales_customer"`
	QtySold     int       `json:"qtySold" gorm:"not null"`
	UnitCost    float64   `json:"unitCost" gorm:"not null"`
	SalePrice   float64   `json:"salePrice" gorm:"not null"`
	Revenue     float64   `json:"revenue" gorm:"not null"`
	Profit      float64   `json:"profit" gorm:"not null"`
	SoldAt      time.Time `json:"soldAt" gorm:"not null;index:idx_sales_sold_at"`

	// RESTRICT, not CASCADE: the ledger is history, deleting a fragrance
	// or customer with recorded sales is refused at the repository layer.
	Fragrance *Fragrance `json:"-" gorm:"foreignKey:FragranceID;constraint:OnDelete:RESTRICT"`
	Customer  *Customer  `json:"-" gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
}

func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// SaleRecord is a ledger row joined with the fragrance and customer names
// for display.
type SaleRecord struct {
	ID            uuid.UUID `json:"id"`
	FragranceID   uuid.UUID `json:"fragranceId"`
	CustomerID    uuid.UUID `json:"customerId"`
	FragranceName string    `json:"fragranceName"`
	CustomerName  string    `json:"customerName"`
	QtySold       int       `json:"qtySold"`
	UnitCost      float64   `json:"unitCost"`
	SalePrice     float64   `json:"salePrice"`
	Revenue       float64   `json:"revenue"`
	Profit        float64   `json:"profit"`
	SoldAt        time.Time `json:"soldAt"`
}

// SalesSummary aggregates the whole ledger
type SalesSummary struct {
	TotalSales int64   `json:"totalSales"`
	UnitsSold  int64   `json:"unitsSold"`
	Revenue    float64 `json:"revenue"`
	Profit     float64 `json:"profit"`
}

// RecordSaleRequest represents request to record a sale
type RecordSaleRequest struct {
	FragranceID uuid.UUID `json:"fragranceId" binding:"required"`
	CustomerID  uuid.UUID `json:"customerId" binding:"required"`
	Quantity    int       `json:"quantity" binding:"required,gt=0"`
}
