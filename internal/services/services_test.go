package services

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fragrance-tracker/internal/models"
	"fragrance-tracker/internal/repository"
)

type testEnv struct {
	fragrances *repository.FragranceRepository
	customers  *repository.CustomerRepository
	sales      *repository.SaleRepository
	catalog    *CatalogService
	saleSvc    *SaleService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Fragrance{},
		&models.Customer{},
		&models.Sale{},
	))

	log := logrus.New()
	log.SetOutput(io.Discard)

	fragrances := repository.NewFragranceRepository(db)
	customers := repository.NewCustomerRepository(db)
	sales := repository.NewSaleRepository(db)

	return &testEnv{
		fragrances: fragrances,
		customers:  customers,
		sales:      sales,
		catalog:    NewCatalogService(fragrances),
		saleSvc:    NewSaleService(sales, fragrances, customers, log),
	}
}

func (e *testEnv) seedFragrance(t *testing.T, name string, gender models.Gender, unitCost, salePrice float64, quantity int) *models.Fragrance {
	t.Helper()
	f := &models.Fragrance{
		Name:      name,
		Gender:    gender,
		UnitCost:  unitCost,
		SalePrice: salePrice,
		Quantity:  quantity,
	}
	require.NoError(t, e.fragrances.Create(f))
	return f
}

func (e *testEnv) seedCustomer(t *testing.T, name string) *models.Customer {
	t.Helper()
	c := &models.Customer{Name: name}
	require.NoError(t, e.customers.Create(c))
	return c
}
