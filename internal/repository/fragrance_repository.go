package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fragrance-tracker/internal/models"
)

type FragranceRepository struct {
	db *gorm.DB
}

func NewFragranceRepository(db *gorm.DB) *FragranceRepository {
	return &FragranceRepository{db: db}
}

// Create inserts a new fragrance. The name must be unique across the
// catalog; violations return ErrDuplicateName.
func (r *FragranceRepository) Create(fragrance *models.Fragrance) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Fragrance{}).
			Where("name = ?", fragrance.Name).
			Count(&count).Error; err != nil {
			return storageErr("check fragrance name", err)
		}
		if count > 0 {
			return models.ErrDuplicateName
		}

		if err := tx.Create(fragrance).Error; err != nil {
			return storageErr("create fragrance", err)
		}
		return nil
	})
}

// GetByID retrieves a fragrance by ID
func (r *FragranceRepository) GetByID(id uuid.UUID) (*models.Fragrance, error) {
	var fragrance models.Fragrance
	if err := r.db.First(&fragrance, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, storageErr("get fragrance", err)
	}
	return &fragrance, nil
}

// GetByName retrieves a fragrance by its unique name. Used by the import
// path for insert-if-absent seeding.
func (r *FragranceRepository) GetByName(name string) (*models.Fragrance, error) {
	var fragrance models.Fragrance
	if err := r.db.First(&fragrance, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, storageErr("get fragrance by name", err)
	}
	return &fragrance, nil
}

// List retrieves fragrances alphabetically by name, optionally restricted
// to one gender partition.
func (r *FragranceRepository) List(gender *models.Gender) ([]models.Fragrance, error) {
	var fragrances []models.Fragrance
	query := r.db.Order("name ASC")
	if gender != nil {
		query = query.Where("gender = ?", *gender)
	}
	if err := query.Find(&fragrances).Error; err != nil {
		return nil, storageErr("list fragrances", err)
	}
	return fragrances, nil
}

// Search retrieves fragrances whose name or inspired-by reference contains
// the query, case-insensitive. An empty query returns the unfiltered list
// for the partition.
func (r *FragranceRepository) Search(query string, gender *models.Gender) ([]models.Fragrance, error) {
	var fragrances []models.Fragrance
	q := r.db.Order("name ASC")
	if gender != nil {
		q = q.Where("gender = ?", *gender)
	}
	if trimmed := strings.TrimSpace(query); trimmed != "" {
		pattern := "%" + strings.ToLower(trimmed) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(inspired_by) LIKE ?", pattern, pattern)
	}
	if err := q.Find(&fragrances).Error; err != nil {
		return nil, storageErr("search fragrances", err)
	}
	return fragrances, nil
}

// Update fully replaces the mutable fields of a fragrance
func (r *FragranceRepository) Update(id uuid.UUID, req models.UpdateFragranceRequest) error {
	if req.Quantity < 0 {
		return models.ErrInvalidQuantity
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Fragrance
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return storageErr("load fragrance", err)
		}

		// Renaming onto another fragrance's name is a duplicate
		var count int64
		if err := tx.Model(&models.Fragrance{}).
			Where("name = ? AND id <> ?", req.Name, id).
			Count(&count).Error; err != nil {
			return storageErr("check fragrance name", err)
		}
		if count > 0 {
			return models.ErrDuplicateName
		}

		updates := map[string]interface{}{
			"name":        req.Name,
			"description": req.Description,
			"gender":      req.Gender,
			"category":    req.Category,
			"unit_cost":   req.UnitCost,
			"sale_price":  req.SalePrice,
			"inspired_by": req.InspiredBy,
			"quantity":    req.Quantity,
			"image_path":  req.ImagePath,
			"updated_at":  time.Now(),
		}
		if err := tx.Model(&models.Fragrance{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return storageErr("update fragrance", err)
		}
		return nil
	})
}

// Delete removes a fragrance. Refused with ErrHasSales while ledger rows
// still reference it; absent ids return ErrNotFound.
func (r *FragranceRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var saleCount int64
		if err := tx.Model(&models.Sale{}).
			Where("fragrance_id = ?", id).
			Count(&saleCount).Error; err != nil {
			return storageErr("check fragrance sales", err)
		}
		if saleCount > 0 {
			return models.ErrHasSales
		}

		result := tx.Delete(&models.Fragrance{}, "id = ?", id)
		if result.Error != nil {
			return storageErr("delete fragrance", result.Error)
		}
		if result.RowsAffected == 0 {
			return models.ErrNotFound
		}
		return nil
	})
}

// UpdateQuantity sets an absolute stock count. Negative values are rejected
// with ErrInvalidQuantity before any write.
func (r *FragranceRepository) UpdateQuantity(id uuid.UUID, quantity int) error {
	if quantity < 0 {
		return models.ErrInvalidQuantity
	}

	result := r.db.Model(&models.Fragrance{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return storageErr("update fragrance quantity", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
