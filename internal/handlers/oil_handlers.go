package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fragrance-tracker/internal/models"
	"fragrance-tracker/internal/repository"
)

type OilHandler struct {
	repo *repository.OilRepository
}

func NewOilHandler(repo *repository.OilRepository) *OilHandler {
	return &OilHandler{repo: repo}
}

// CreateOil creates a new oil
// POST /api/v1/oils
func (h *OilHandler) CreateOil(c *gin.Context) {
	var req models.CreateOilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	oil := &models.Oil{
		Name:         req.Name,
		Size:         req.Size,
		Price:        req.Price,
		PurchaseLink: req.PurchaseLink,
		Quantity:     req.Quantity,
	}

	if err := h.repo.Create(oil); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse{
		Success: true,
		Data:    oil,
		Message: stringPtr("Oil created successfully"),
	})
}

// ListOils retrieves all oils ordered by name
// GET /api/v1/oils
func (h *OilHandler) ListOils(c *gin.Context) {
	oils, err := h.repo.List()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    oils,
	})
}

// GetOil retrieves an oil by ID
// GET /api/v1/oils/:id
func (h *OilHandler) GetOil(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "oil")
		return
	}

	oil, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    oil,
	})
}

// UpdateOil fully replaces the mutable fields of an oil
// PUT /api/v1/oils/:id
func (h *OilHandler) UpdateOil(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "oil")
		return
	}

	var req models.UpdateOilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.repo.Update(id, req); err != nil {
		respondError(c, err)
		return
	}

	oil, _ := h.repo.GetByID(id)

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    oil,
		Message: stringPtr("Oil updated successfully"),
	})
}

// DeleteOil removes an oil
// DELETE /api/v1/oils/:id
func (h *OilHandler) DeleteOil(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "oil")
		return
	}

	if err := h.repo.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: stringPtr("Oil deleted successfully"),
	})
}

// UpdateOilQuantity sets an absolute stock count
// PATCH /api/v1/oils/:id/quantity
func (h *OilHandler) UpdateOilQuantity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "oil")
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

	oil, _ := h.repo.GetByID(id)

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    oil,
		Message: stringPtr("Quantity updated successfully"),
	})
}
