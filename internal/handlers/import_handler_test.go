package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fragrance-tracker/internal/models"
	"fragrance-tracker/internal/repository"
)

func setupImportRouter(t *testing.T) (*gin.Engine, *repository.FragranceRepository, *repository.SupplyRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	fragrances := repository.NewFragranceRepository(db)
	supplies := repository.NewSupplyRepository(db)
	oils := repository.NewOilRepository(db)
	handler := NewImportHandler(fragrances, supplies, oils)

	router := gin.New()
	router.POST("/fragrances/import", handler.ImportFragrances)
	router.POST("/supplies/import", handler.ImportSupplies)
	router.GET("/fragrances/import/template", handler.GetFragranceImportTemplate)

	return router, fragrances, supplies
}

func buildXLSX(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, value))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func uploadFile(t *testing.T, router *gin.Engine, path, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestImportFragrancesFromXLSX(t *testing.T) {
	router, fragrances, _ := setupImportRouter(t)

	buf := buildXLSX(t, [][]string{
		{"name", "gender", "unitcost", "saleprice", "quantity", "inspiredby"},
		{"LJ Apex", "MEN", "5.00", "25.00", "10", "Creed Aventus"},
		{"LJ Velvet Bloom", "women", "6.50", "28.00", "8", ""},
	})

	w := uploadFile(t, router, "/fragrances/import", "catalog.xlsx", buf.Bytes())
	require.Equal(t, http.StatusOK, w.Code)

	var result ImportResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 0, result.SkippedCount)
	assert.Len(t, result.CreatedIDs, 2)

	got, err := fragrances.GetByName("LJ Apex")
	require.NoError(t, err)
	assert.Equal(t, models.GenderMen, got.Gender)
	assert.Equal(t, 25.0, got.SalePrice)
	assert.Equal(t, 10, got.Quantity)

	// Lowercase gender in the file is normalized
	bloom, err := fragrances.GetByName("LJ Velvet Bloom")
	require.NoError(t, err)
	assert.Equal(t, models.GenderWomen, bloom.Gender)
}

func TestImportFragrancesIsIdempotent(t *testing.T) {
	router, _, _ := setupImportRouter(t)

	buf := buildXLSX(t, [][]string{
		{"name", "gender", "unitcost", "saleprice", "quantity"},
		{"LJ Apex", "MEN", "5.00", "25.00", "10"},
	})
	content := buf.Bytes()

	w := uploadFile(t, router, "/fragrances/import", "catalog.xlsx", content)
	require.Equal(t, http.StatusOK, w.Code)

	// Replaying the same file skips existing names instead of duplicating
	w = uploadFile(t, router, "/fragrances/import", "catalog.xlsx", content)
	require.Equal(t, http.StatusOK, w.Code)

	var result ImportResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, 1, result.SkippedCount)
}

func TestImportFragrancesReportsBadRows(t *testing.T) {
	router, fragrances, _ := setupImportRouter(t)

	buf := buildXLSX(t, [][]string{
		{"name", "gender", "unitcost", "saleprice", "quantity"},
		{"", "MEN", "5.00", "25.00", "10"},
		{"LJ Cedar", "OTHER", "5.00", "25.00", "10"},
		{"LJ Apex", "MEN", "not-a-number", "25.00", "10"},
		{"LJ Bloom", "WOMEN", "6.50", "28.00", "-3"},
		{"LJ Valid", "UNISEX", "4.00", "20.00", "6"},
	})

	w := uploadFile(t, router, "/fragrances/import", "catalog.xlsx", buf.Bytes())
	require.Equal(t, http.StatusOK, w.Code)

	var result ImportResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Equal(t, 5, result.TotalRows)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 4, result.FailedCount)
	require.Len(t, result.Errors, 4)
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Equal(t, "name", result.Errors[0].Column)
	assert.Equal(t, "gender", result.Errors[1].Column)

	// The one good row still landed
	_, err := fragrances.GetByName("LJ Valid")
	assert.NoError(t, err)
}

func TestImportSuppliesFromCSV(t *testing.T) {
	router, _, supplies := setupImportRouter(t)

	csvContent := "name,price,quantity,purchaselink\n" +
		"50ml Atomizer Bottle,1.20,200,https://example.com/bottles\n" +
		"Gift Box,0.80,50,\n"

	w := uploadFile(t, router, "/supplies/import", "supplies.csv", []byte(csvContent))
	require.Equal(t, http.StatusOK, w.Code)

	var result ImportResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.SuccessCount)

	got, err := supplies.GetByName("50ml Atomizer Bottle")
	require.NoError(t, err)
	assert.Equal(t, 1.20, got.Price)
	assert.Equal(t, 200, got.Quantity)
}

func TestImportRejectsUnsupportedFile(t *testing.T) {
	router, _, _ := setupImportRouter(t)

	w := uploadFile(t, router, "/fragrances/import", "catalog.txt", []byte("not a table"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PARSE_ERROR", resp.Error.Code)
}

func TestImportTemplateFormats(t *testing.T) {
	router, _, _ := setupImportRouter(t)

	// JSON template
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fragrances/import/template", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success  bool           `json:"success"`
		Template ImportTemplate `json:"template"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "fragrances", body.Template.Entity)
	assert.NotEmpty(t, body.Template.Columns)

	// CSV template is a downloadable attachment
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fragrances/import/template?format=csv", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "name,gender")

	// XLSX template round-trips through excelize
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fragrances/import/template?format=xlsx", nil))
	require.Equal(t, http.StatusOK, w.Code)

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Fragrances")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, "name *", rows[0][0])
}
