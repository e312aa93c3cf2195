package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fragrance-tracker/internal/models"
)

type OilRepository struct {
	db *gorm.DB
}

func NewOilRepository(db *gorm.DB) *OilRepository {
	return &OilRepository{db: db}
}

// Create inserts a new oil. Names are unique; violations return
// ErrDuplicateName.
func (r *OilRepository) Create(oil *models.Oil) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Oil{}).
			Where("name = ?", oil.Name).
			Count(&count).Error; err != nil {
			return storageErr("check oil name", err)
		}
		if count > 0 {
			return models.ErrDuplicateName
		}

		if err := tx.Create(oil).Error; err != nil {
			return storageErr("create oil", err)
		}
		return nil
	})
}

// GetByID retrieves an oil by ID
func (r *OilRepository) GetByID(id uuid.UUID) (*models.Oil, error) {
	var oil models.Oil
	if err := r.db.First(&oil, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, storageErr("get oil", err)
	}
	return &oil, nil
}

// GetByName retrieves an oil by its unique name
func (r *OilRepository) GetByName(name string) (*models.Oil, error) {
	var oil models.Oil
	if err := r.db.First(&oil, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, storageErr("get oil by name", err)
	}
	return &oil, nil
}

// List retrieves all oils ordered by name
func (r *OilRepository) List() ([]models.Oil, error) {
	var oils []models.Oil
	if err := r.db.Order("name ASC").Find(&oils).Error; err != nil {
		return nil, storageErr("list oils", err)
	}
	return oils, nil
}

// Update fully replaces the mutable fields of an oil
func (r *OilRepository) Update(id uuid.UUID, req models.UpdateOilRequest) error {
	if req.Quantity < 0 {
		return models.ErrInvalidQuantity
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Oil
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return storageErr("load oil", err)
		}

		var count int64
		if err := tx.Model(&models.Oil{}).
			Where("name = ? AND id <> ?", req.Name, id).
			Count(&count).Error; err != nil {
			return storageErr("check oil name", err)
		}
		if count > 0 {
			return models.ErrDuplicateName
		}

		updates := map[string]interface{}{
			"name":          req.Name,
			"size":          req.Size,
			"price":         req.Price,
			"purchase_link": req.PurchaseLink,
			"quantity":      req.Quantity,
			"updated_at":    time.Now(),
		}
		if err := tx.Model(&models.Oil{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return storageErr("update oil", err)
		}
		return nil
	})
}

// Delete removes an oil; absent ids return ErrNotFound
func (r *OilRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Oil{}, "id = ?", id)
	if result.Error != nil {
		return storageErr("delete oil", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// UpdateQuantity sets an absolute stock count, rejecting negative values
func (r *OilRepository) UpdateQuantity(id uuid.UUID, quantity int) error {
	if quantity < 0 {
		return models.ErrInvalidQuantity
	}

	result := r.db.Model(&models.Oil{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return storageErr("update oil quantity", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
