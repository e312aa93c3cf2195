package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fragrance-tracker/internal/models"
	"fragrance-tracker/internal/services"
)

type SaleHandler struct {
	sales *services.SaleService
}

func NewSaleHandler(sales *services.SaleService) *SaleHandler {
	return &SaleHandler{sales: sales}
}

// RecordSale executes one sale: validates stock, snapshots pricing, writes
// the ledger row and decrements the fragrance quantity atomically
// POST /api/v1/sales
func (h *SaleHandler) RecordSale(c *gin.Context) {
	var req models.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	sale, err := h.sales.RecordSale(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse{
		Success: true,
		Data:    sale,
		Message: stringPtr("Sale recorded successfully"),
	})
}

// ListSales returns the ledger joined with fragrance and customer names,
// most recent first
// GET /api/v1/sales
func (h *SaleHandler) ListSales(c *gin.Context) {
	records, err := h.sales.ListSales()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    records,
	})
}

// GetSalesSummary aggregates revenue, profit and units over the ledger
// GET /api/v1/sales/summary
func (h *SaleHandler) GetSalesSummary(c *gin.Context) {
	summary, err := h.sales.Summary()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    summary,
	})
}
