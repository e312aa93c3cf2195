package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fragrance-tracker/internal/models"
)

func seedSaleFixtures(t *testing.T) (*SaleRepository, *FragranceRepository, *models.Fragrance, *models.Customer) {
	t.Helper()
	db := setupTestDB(t)

	fragranceRepo := NewFragranceRepository(db)
	fragrance := testFragrance("LJ Apex", models.GenderMen, 10)
	require.NoError(t, fragranceRepo.Create(fragrance))

	customer := &models.Customer{Name: "Amina"}
	require.NoError(t, NewCustomerRepository(db).Create(customer))

	return NewSaleRepository(db), fragranceRepo, fragrance, customer
}

func TestSaleCreateDecrementsStock(t *testing.T) {
	saleRepo, fragranceRepo, fragrance, customer := seedSaleFixtures(t)

	sale := &models.Sale{
		FragranceID: fragrance.ID,
		CustomerID:  customer.ID,
		QtySold:     3,
		UnitCost:    5.0,
		SalePrice:   25.0,
		Revenue:     75.0,
		Profit:      60.0,
		SoldAt:      time.Now(),
	}
	require.NoError(t, saleRepo.Create(sale))

	got, err := fragranceRepo.GetByID(fragrance.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Quantity)
}

func TestSaleCreateInsufficientStockRollsBack(t *testing.T) {
	saleRepo, fragranceRepo, fragrance, customer := seedSaleFixtures(t)

	sale := &models.Sale{
		FragranceID: fragrance.ID,
		CustomerID:  customer.ID,
		QtySold:     11,
		UnitCost:    5.0,
		SalePrice:   25.0,
		Revenue:     275.0,
		Profit:      220.0,
		SoldAt:      time.Now(),
	}
	err := saleRepo.Create(sale)

	var insufficientErr *models.InsufficientStockError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, 10, insufficientErr.Available)
	assert.Equal(t, 11, insufficientErr.Requested)

	// Ledger row rolled back, stock untouched
	records, err := saleRepo.List()
	require.NoError(t, err)
	assert.Empty(t, records)

	got, _ := fragranceRepo.GetByID(fragrance.ID)
	assert.Equal(t, 10, got.Quantity)
}

func TestSaleListJoinsNamesNewestFirst(t *testing.T) {
	saleRepo, _, fragrance, customer := seedSaleFixtures(t)

	older := &models.Sale{
		FragranceID: fragrance.ID,
		CustomerID:  customer.ID,
		QtySold:     1,
		UnitCost:    5.0,
		SalePrice:   25.0,
		Revenue:     25.0,
		Profit:      20.0,
		SoldAt:      time.Now().Add(-time.Hour),
	}
	require.NoError(t, saleRepo.Create(older))

	newer := &models.Sale{
		FragranceID: fragrance.ID,
		CustomerID:  customer.ID,
		QtySold:     2,
		UnitCost:    5.0,
		SalePrice:   25.0,
		Revenue:     50.0,
		Profit:      40.0,
		SoldAt:      time.Now(),
	}
	require.NoError(t, saleRepo.Create(newer))

	records, err := saleRepo.List()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, newer.ID, records[0].ID)
	assert.Equal(t, older.ID, records[1].ID)
	assert.Equal(t, "LJ Apex", records[0].FragranceName)
	assert.Equal(t, "Amina", records[0].CustomerName)
	assert.Equal(t, 50.0, records[0].Revenue)
}

func TestSaleSummary(t *testing.T) {
	saleRepo, _, fragrance, customer := seedSaleFixtures(t)

	// Empty ledger sums to zero
	summary, err := saleRepo.Summary()
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.TotalSales)
	assert.Equal(t, 0.0, summary.Revenue)

	for _, qty := range []int{3, 2} {
		sale := &models.Sale{
			FragranceID: fragrance.ID,
			CustomerID:  customer.ID,
			QtySold:     qty,
			UnitCost:    5.0,
			SalePrice:   25.0,
			Revenue:     25.0 * float64(qty),
			Profit:      20.0 * float64(qty),
			SoldAt:      time.Now(),
		}
		require.NoError(t, saleRepo.Create(sale))
	}

	summary, err = saleRepo.Summary()
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.TotalSales)
	assert.Equal(t, int64(5), summary.UnitsSold)
	assert.Equal(t, 125.0, summary.Revenue)
	assert.Equal(t, 100.0, summary.Profit)
}
