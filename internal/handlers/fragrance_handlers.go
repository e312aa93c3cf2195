package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fragrance-tracker/internal/models"
	"fragrance-tracker/internal/repository"
	"fragrance-tracker/internal/services"
)

type FragranceHandler struct {
	repo    *repository.FragranceRepository
	catalog *services.CatalogService
}

func NewFragranceHandler(repo *repository.FragranceRepository, catalog *services.CatalogService) *FragranceHandler {
	return &FragranceHandler{
		repo:    repo,
		catalog: catalog,
	}
}

// CreateFragrance creates a new fragrance
// POST /api/v1/fragrances
func (h *FragranceHandler) CreateFragrance(c *gin.Context) {
	var req models.CreateFragranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	fragrance := &models.Fragrance{
		Name:        req.Name,
		Description: req.Description,
		Gender:      req.Gender,
		Category:    req.Category,
		UnitCost:    req.UnitCost,
		SalePrice:   req.SalePrice,
		InspiredBy:  req.InspiredBy,
		Quantity:    req.Quantity,
		ImagePath:   req.ImagePath,
	}

	if err := h.repo.Create(fragrance); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse{
		Success: true,
		Data:    fragrance,
		Message: stringPtr("Fragrance created successfully"),
	})
}

// ListFragrances returns decorated catalog rows, optionally filtered by
// gender partition and a free-text query over name and inspired-by
// GET /api/v1/fragrances?gender=MEN&q=creed
func (h *FragranceHandler) ListFragrances(c *gin.Context) {
	var gender *models.Gender
	if genderStr := c.Query("gender"); genderStr != "" {
		g := models.Gender(genderStr)
		if !g.Valid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Error:   models.Error{Code: "INVALID_GENDER", Message: "Gender must be MEN, WOMEN or UNISEX"},
			})
			return
		}
		gender = &g
	}

	items, err := h.catalog.Search(c.Query("q"), gender)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    items,
	})
}

// GetLowStock returns catalog rows under the restock threshold
// GET /api/v1/fragrances/low-stock
func (h *FragranceHandler) GetLowStock(c *gin.Context) {
	items, err := h.catalog.LowStock()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    items,
	})
}

// GetFragrance retrieves a fragrance by ID
// GET /api/v1/fragrances/:id
func (h *FragranceHandler) GetFragrance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "fragrance")
		return
	}

	fragrance, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    fragrance,
	})
}

// UpdateFragrance fully replaces the mutable fields of a fragrance
// PUT /api/v1/fragrances/:id
func (h *FragranceHandler) UpdateFragrance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "fragrance")
		return
	}

	var req models.UpdateFragranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.repo.Update(id, req); err != nil {
		respondError(c, err)
		return
	}

	fragrance, _ := h.repo.GetByID(id)

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    fragrance,
		Message: stringPtr("Fragrance updated successfully"),
	})
}

// DeleteFragrance removes a fragrance without recorded sales
// DELETE /api/v1/fragrances/:id
func (h *FragranceHandler) DeleteFragrance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "fragrance")
		return
	}

	if err := h.repo.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: stringPtr("Fragrance deleted successfully"),
	})
}

// UpdateFragranceQuantity sets an absolute stock count
// PATCH /api/v1/fragrances/:id/quantity
func (h *FragranceHandler) UpdateFragranceQuantity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "fragrance")
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

	fragrance, _ := h.repo.GetByID(id)

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    fragrance,
		Message: stringPtr("Quantity updated successfully"),
	})
}
