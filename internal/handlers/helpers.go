package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fragrance-tracker/internal/models"
)

func stringPtr(s string) *string {
	return &s
}

// respondError maps the typed domain errors onto the response envelope.
// Anything unrecognized is treated as a storage failure.
func respondError(c *gin.Context, err error) {
	var insufficient *models.InsufficientStockError

	switch {
	case errors.As(err, &insufficient):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "INSUFFICIENT_STOCK",
				Message: insufficient.Error(),
				Details: gin.H{"available": insufficient.Available, "requested": insufficient.Requested},
			},
		})
	case errors.Is(err, models.ErrDuplicateName):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Error:   models.Error{Code: "DUPLICATE_NAME", Message: err.Error()},
		})
	case errors.Is(err, models.ErrHasSales):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Error:   models.Error{Code: "HAS_SALES", Message: err.Error()},
		})
	case errors.Is(err, models.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   models.Error{Code: "INVALID_QUANTITY", Message: err.Error()},
		})
	case errors.Is(err, models.ErrFragranceNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Error:   models.Error{Code: "FRAGRANCE_NOT_FOUND", Message: err.Error()},
		})
	case errors.Is(err, models.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Error:   models.Error{Code: "CUSTOMER_NOT_FOUND", Message: err.Error()},
		})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Error:   models.Error{Code: "NOT_FOUND", Message: err.Error()},
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error:   models.Error{Code: "STORAGE_ERROR", Message: "Storage operation failed"},
		})
	}
}

func respondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Error:   models.Error{Code: "VALIDATION_ERROR", Message: err.Error()},
	})
}

func respondInvalidID(c *gin.Context, what string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Error:   models.Error{Code: "INVALID_ID", Message: "Invalid " + what + " ID"},
	})
}
