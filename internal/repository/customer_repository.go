package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fragrance-tracker/internal/models"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create inserts a new customer. Customer names are not unique.
func (r *CustomerRepository) Create(customer *models.Customer) error {
	if err := r.db.Create(customer).Error; err != nil {
		return storageErr("create customer", err)
	}
	return nil
}

// GetByID retrieves a customer by ID
func (r *CustomerRepository) GetByID(id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, storageErr("get customer", err)
	}
	return &customer, nil
}

// List retrieves all customers ordered by name
func (r *CustomerRepository) List() ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.Order("name ASC").Find(&customers).Error; err != nil {
		return nil, storageErr("list customers", err)
	}
	return customers, nil
}

// Update fully replaces the mutable fields of a customer
func (r *CustomerRepository) Update(id uuid.UUID, req models.UpdateCustomerRequest) error {
	result := r.db.Model(&models.Customer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":       req.Name,
			"email":      req.Email,
			"phone":      req.Phone,
			"city":       req.City,
			"reference":  req.Reference,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return storageErr("update customer", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes a customer. Refused with ErrHasSales while ledger rows
// still reference them; absent ids return ErrNotFound.
func (r *CustomerRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var saleCount int64
		if err := tx.Model(&models.Sale{}).
			Where("customer_id = ?", id).
			Count(&saleCount).Error; err != nil {
			return storageErr("check customer sales", err)
		}
		if saleCount > 0 {
			return models.ErrHasSales
		}

		result := tx.Delete(&models.Customer{}, "id = ?", id)
		if result.Error != nil {
			return storageErr("delete customer", result.Error)
		}
		if result.RowsAffected == 0 {
			return models.ErrNotFound
		}
		return nil
	})
}
