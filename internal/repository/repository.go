package repository

import (
	"fragrance-tracker/internal/models"
)

// The repository layer is the only code path permitted to mutate the store.
// Repositories translate gorm-level failures into the typed domain errors
// in internal/models; anything unexpected is wrapped as a StorageError.

func storageErr(op string, err error) error {
	return &models.StorageError{Op: op, Err: err}
}
