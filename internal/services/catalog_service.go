package services

import (
	"fragrance-tracker/internal/models"
	"fragrance-tracker/internal/repository"
)

// CatalogService answers the read-side catalog queries: gender-partitioned
// listings, free-text search over name and inspired-by, and the derived
// per-row display values the UI shows next to each fragrance.
type CatalogService struct {
	fragrances *repository.FragranceRepository
}

func NewCatalogService(fragrances *repository.FragranceRepository) *CatalogService {
	return &CatalogService{fragrances: fragrances}
}

// ListByGender returns one gender partition, alphabetical by name
func (s *CatalogService) ListByGender(gender models.Gender) ([]models.CatalogItem, error) {
	fragrances, err := s.fragrances.List(&gender)
	if err != nil {
		return nil, err
	}
	return decorate(fragrances), nil
}

// Search matches a case-insensitive substring against name or inspired-by.
// An empty query returns the unfiltered list; a nil gender searches across
// all partitions.
func (s *CatalogService) Search(query string, gender *models.Gender) ([]models.CatalogItem, error) {
	fragrances, err := s.fragrances.Search(query, gender)
	if err != nil {
		return nil, err
	}
	return decorate(fragrances), nil
}

// LowStock returns catalog rows currently under the restock threshold
func (s *CatalogService) LowStock() ([]models.CatalogItem, error) {
	fragrances, err := s.fragrances.List(nil)
	if err != nil {
		return nil, err
	}

	items := make([]models.CatalogItem, 0)
	for _, f := range fragrances {
		if f.Quantity < models.LowStockThreshold {
			items = append(items, decorateOne(f))
		}
	}
	return items, nil
}

func decorate(fragrances []models.Fragrance) []models.CatalogItem {
	items := make([]models.CatalogItem, 0, len(fragrances))
	for _, f := range fragrances {
		items = append(items, decorateOne(f))
	}
	return items
}

func decorateOne(f models.Fragrance) models.CatalogItem {
	qty := float64(f.Quantity)
	return models.CatalogItem{
		Fragrance:   f,
		TotalCost:   f.UnitCost * qty,
		RetailValue: f.SalePrice * qty,
		LowStock:    f.Quantity < models.LowStockThreshold,
	}
}
