package services

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"fragrance-tracker/internal/models"
	"fragrance-tracker/internal/repository"
)

// SaleService is the transaction engine. A sale validates the requested
// quantity against current stock, snapshots the fragrance's cost and price,
// appends a ledger row and decrements stock - the last two as one atomic
// unit inside the repository. No stock is ever restored automatically;
// there is no cancel or refund operation.
type SaleService struct {
	sales      *repository.SaleRepository
	fragrances *repository.FragranceRepository
	customers  *repository.CustomerRepository
	logger     *logrus.Logger
}

func NewSaleService(sales *repository.SaleRepository, fragrances *repository.FragranceRepository, customers *repository.CustomerRepository, logger *logrus.Logger) *SaleService {
	return &SaleService{
		sales:      sales,
		fragrances: fragrances,
		customers:  customers,
		logger:     logger,
	}
}

// RecordSale executes one sale against the store
func (s *SaleService) RecordSale(req models.RecordSaleRequest) (*models.Sale, error) {
	if req.Quantity <= 0 {
		return nil, models.ErrInvalidQuantity
	}

	fragrance, err := s.fragrances.GetByID(req.FragranceID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrFragranceNotFound
		}
		return nil, err
	}

	customer, err := s.customers.GetByID(req.CustomerID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrCustomerNotFound
		}
		return nil, err
	}

	if req.Quantity > fragrance.Quantity {
		return nil, &models.InsufficientStockError{
			Available: fragrance.Quantity,
			Requested: req.Quantity,
		}
	}

	qty := float64(req.Quantity)
	sale := &models.Sale{
		FragranceID: fragrance.ID,
		CustomerID:  customer.ID,
		QtySold:     req.Quantity,
		UnitCost:    fragrance.UnitCost,
		SalePrice:   fragrance.SalePrice,
		Revenue:     fragrance.SalePrice * qty,
		Profit:      (fragrance.SalePrice - fragrance.UnitCost) * qty,
		SoldAt:      time.Now(),
	}

	if err := s.sales.Create(sale); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"sale_id":   sale.ID,
		"fragrance": fragrance.Name,
		"customer":  customer.Name,
		"qty":       sale.QtySold,
		"revenue":   sale.Revenue,
		"profit":    sale.Profit,
	}).Info("Sale recorded")

	return sale, nil
}

// ListSales returns the ledger joined with names, most recent first
func (s *SaleService) ListSales() ([]models.SaleRecord, error) {
	return s.sales.List()
}

// Summary aggregates the whole ledger
func (s *SaleService) Summary() (*models.SalesSummary, error) {
	return s.sales.Summary()
}
