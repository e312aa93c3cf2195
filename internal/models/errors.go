package models

import (
	"errors"
	"fmt"
)

// Domain errors surfaced to the presentation layer. None of these partially
// mutate the store; every one is recoverable by retrying with different
// input.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateName     = errors.New("name already exists")
	ErrInvalidQuantity   = errors.New("quantity must not be negative")
	ErrFragranceNotFound = errors.New("fragrance not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrHasSales          = errors.New("record is referenced by recorded sales")
)

// InsufficientStockError rejects a sale that requests more than is on hand.
// Available carries the stock at the time of the rejected sale.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: available %d, requested %d", e.Available, e.Requested)
}

// StorageError wraps failures from the storage engine itself (connection
// loss, constraint violations the repository did not anticipate). No retry
// is attempted; the caller owns user-visible messaging.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
