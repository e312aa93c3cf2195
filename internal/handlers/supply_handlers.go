package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fragrance-tracker/internal/models"
	"fragrance-tracker/internal/repository"
)

type SupplyHandler struct {
	repo *repository.SupplyRepository
}

func NewSupplyHandler(repo *repository.SupplyRepository) *SupplyHandler {
	return &SupplyHandler{repo: repo}
}

// CreateSupply creates a new supply
// POST /api/v1/supplies
func (h *SupplyHandler) CreateSupply(c *gin.Context) {
	var req models.CreateSupplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	supply := &models.Supply{
		Name:         req.Name,
		Price:        req.Price,
		PurchaseLink: req.PurchaseLink,
		Quantity:     req.Quantity,
	}

	if err := h.repo.Create(supply); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse{
		Success: true,
		Data:    supply,
		Message: stringPtr("Supply created successfully"),
	})
}

// ListSupplies retrieves all supplies ordered by name
// GET /api/v1/supplies
func (h *SupplyHandler) ListSupplies(c *gin.Context) {
	supplies, err := h.repo.List()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    supplies,
	})
}

// GetSupply retrieves a supply by ID
// GET /api/v1/supplies/:id
func (h *SupplyHandler) GetSupply(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "supply")
		return
	}

	supply, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    supply,
	})
}

// UpdateSupply fully replaces the mutable fields of a supply
// PUT /api/v1/supplies/:id
func (h *SupplyHandler) UpdateSupply(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "supply")
		return
	}

	var req models.UpdateSupplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.repo.Update(id, req); err != nil {
		respondError(c, err)
		return
	}

	supply, _ := h.repo.GetByID(id)

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    supply,
		Message: stringPtr("Supply updated successfully"),
	})
}

// DeleteSupply removes a supply
// DELETE /api/v1/supplies/:id
func (h *SupplyHandler) DeleteSupply(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "supply")
		return
	}

	if err := h.repo.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: stringPtr("Supply deleted successfully"),
	})
}

// UpdateSupplyQuantity sets an absolute stock count
// PATCH /api/v1/supplies/:id/quantity
func (h *SupplyHandler) UpdateSupplyQuantity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "supply")
		return
	}

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.repo.UpdateQuantity(id, *req.Quantity); err != nil {
		respondError(c, err)
		return
	}

	supply, _ := h.repo.GetByID(id)

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    supply,
		Message: stringPtr("Quantity updated successfully"),
	})
}
