package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"fragrance-tracker/internal/models"
)

type SaleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

// Create appends the ledger row and decrements the fragrance stock as one
// atomic unit. The decrement is guarded on current stock, so a fragrance
// that was deleted or drained between validation and commit rolls the
// ledger row back; the ledger never holds a sale whose decrement did not
// apply.
func (r *SaleRepository) Create(sale *models.Sale) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return storageErr("create sale", err)
		}

		result := tx.Model(&models.Fragrance{}).
			Where("id = ? AND quantity >= ?", sale.FragranceID, sale.QtySold).
			Updates(map[string]interface{}{
				"quantity":   gorm.Expr("quantity - ?", sale.QtySold),
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return storageErr("decrement stock", result.Error)
		}

		if result.RowsAffected == 0 {
			// Guarded update did not apply: distinguish a vanished
			// fragrance from drained stock before rolling back
			var fragrance models.Fragrance
			if err := tx.First(&fragrance, "id = ?", sale.FragranceID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return models.ErrFragranceNotFound
				}
				return storageErr("reload fragrance", err)
			}
			return &models.InsufficientStockError{
				Available: fragrance.Quantity,
				Requested: sale.QtySold,
			}
		}

		return nil
	})
}

// List returns the full ledger joined with fragrance and customer names,
// most recent sale first.
func (r *SaleRepository) List() ([]models.SaleRecord, error) {
	var records []models.SaleRecord
	err := r.db.Model(&models.Sale{}).
		Select("sales.id, sales.fragrance_id, sales.customer_id, fragrances.name AS fragrance_name, customers.name AS customer_name, sales.qty_sold, sales.unit_cost, sales.sale_price, sales.revenue, sales.profit, sales.sold_at").
		Joins("JOIN fragrances ON fragrances.id = sales.fragrance_id").
		Joins("JOIN customers ON customers.id = sales.customer_id").
		Order("sales.sold_at DESC").
		Scan(&records).Error
	if err != nil {
		return nil, storageErr("list sales", err)
	}
	return records, nil
}

// Summary aggregates revenue, profit and units over the whole ledger
func (r *SaleRepository) Summary() (*models.SalesSummary, error) {
	var summary models.SalesSummary
	err := r.db.Model(&models.Sale{}).
		Select("COUNT(*) AS total_sales, COALESCE(SUM(qty_sold), 0) AS units_sold, COALESCE(SUM(revenue), 0) AS revenue, COALESCE(SUM(profit), 0) AS profit").
		Scan(&summary).Error
	if err != nil {
		return nil, storageErr("summarize sales", err)
	}
	return &summary, nil
}
