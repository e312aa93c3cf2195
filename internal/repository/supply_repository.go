package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fragrance-tracker/internal/models"
)

type SupplyRepository struct {
	db *gorm.DB
}

func NewSupplyRepository(db *gorm.DB) *SupplyRepository {
	return &SupplyRepository{db: db}
}

// Create inserts a new supply. Names are unique; violations return
// ErrDuplicateName.
func (r *SupplyRepository) Create(supply *models.Supply) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Supply{}).
			Where("name = ?", supply.Name).
			Count(&count).Error; err != nil {
			return storageErr("check supply name", err)
		}
		if count > 0 {
			return models.ErrDuplicateName
		}

		if err := tx.Create(supply).Error; err != nil {
			return storageErr("create supply", err)
		}
		return nil
	})
}

// GetByID retrieves a supply by ID
func (r *SupplyRepository) GetByID(id uuid.UUID) (*models.Supply, error) {
	var supply models.Supply
	if err := r.db.First(&supply, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, storageErr("get supply", err)
	}
	return &supply, nil
}

// GetByName retrieves a supply by its unique name
func (r *SupplyRepository) GetByName(name string) (*models.Supply, error) {
	var supply models.Supply
	if err := r.db.First(&supply, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, storageErr("get supply by name", err)
	}
	return &supply, nil
}

// List retrieves all supplies ordered by name
func (r *SupplyRepository) List() ([]models.Supply, error) {
	var supplies []models.Supply
	if err := r.db.Order("name ASC").Find(&supplies).Error; err != nil {
		return nil, storageErr("list supplies", err)
	}
	return supplies, nil
}

// Update fully replaces the mutable fields of a supply
func (r *SupplyRepository) Update(id uuid.UUID, req models.UpdateSupplyRequest) error {
	if req.Quantity < 0 {
		return models.ErrInvalidQuantity
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Supply
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return storageErr("load supply", err)
		}

		var count int64
		if err := tx.Model(&models.Supply{}).
			Where("name = ? AND id <> ?", req.Name, id).
			Count(&count).Error; err != nil {
			return storageErr("check supply name", err)
		}
		if count > 0 {
			return models.ErrDuplicateName
		}

		updates := map[string]interface{}{
			"name":          req.Name,
			"price":         req.Price,
			"purchase_link": req.PurchaseLink,
			"quantity":      req.Quantity,
			"updated_at":    time.Now(),
		}
		if err := tx.Model(&models.Supply{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return storageErr("update supply", err)
		}
		return nil
	})
}

// Delete removes a supply; absent ids return ErrNotFound
func (r *SupplyRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Supply{}, "id = ?", id)
	if result.Error != nil {
		return storageErr("delete supply", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// UpdateQuantity sets an absolute stock count, rejecting negative values
func (r *SupplyRepository) UpdateQuantity(id uuid.UUID, quantity int) error {
	if quantity < 0 {
		return models.ErrInvalidQuantity
	}

	result := r.db.Model(&models.Supply{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return storageErr("update supply quantity", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
