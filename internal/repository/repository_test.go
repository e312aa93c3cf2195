package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fragrance-tracker/internal/models"
)

// setupTestDB opens a throwaway sqlite file under t.TempDir with the full
// schema migrated. A file, not :memory:, because gorm's connection pool
// would otherwise hand each connection its own empty database.
func setupTestDB(t *testing.T) *gorm.DB {
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
		&models.Supply{},
		&models.Oil{},
	))

	return db
}

func testFragrance(name string, gender models.Gender, quantity int) *models.Fragrance {
	return &models.Fragrance{
		Name:      name,
		Gender:    gender,
		UnitCost:  5.0,
		SalePrice: 25.0,
		Quantity:  quantity,
	}
}
