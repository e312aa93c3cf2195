package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"fragrance-tracker/internal/models"
	"fragrance-tracker/internal/repository"
)

// ImportTemplateColumn defines a column in the import template
type ImportTemplateColumn struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Type        string `json:"type"`
	Example     string `json:"example"`
}

// ImportTemplate defines the structure of an import template
type ImportTemplate struct {
	Entity     string                 `json:"entity"`
	Version    string                 `json:"version"`
	Columns    []ImportTemplateColumn `json:"columns"`
	SampleData []map[string]string    `json:"sampleData,omitempty"`
}

// ImportRowError represents an error for a specific row
type ImportRowError struct {
	Row     int    `json:"row"`
	Column  string `json:"column,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ImportResult represents the result of an import operation.
// Rows whose name already exists are counted as skipped, never rewritten,
// so replaying the same file is a no-op for existing names.
type ImportResult struct {
	Success      bool             `json:"success"`
	TotalRows    int              `json:"totalRows"`
	SuccessCount int              `json:"successCount"`
	FailedCount  int              `json:"failedCount"`
	SkippedCount int              `json:"skippedCount"`
	Errors       []ImportRowError `json:"errors,omitempty"`
	CreatedIDs   []string         `json:"createdIds,omitempty"`
}

type ImportHandler struct {
	fragrances *repository.FragranceRepository
	supplies   *repository.SupplyRepository
	oils       *repository.OilRepository
}

func NewImportHandler(fragrances *repository.FragranceRepository, supplies *repository.SupplyRepository, oils *repository.OilRepository) *ImportHandler {
	return &ImportHandler{
		fragrances: fragrances,
		supplies:   supplies,
		oils:       oils,
	}
}

// FragranceImportTemplate returns the template for fragrances
func FragranceImportTemplate() ImportTemplate {
	return ImportTemplate{
		Entity:  "fragrances",
		Version: "1.0",
		Columns: []ImportTemplateColumn{
			{Name: "name", Description: "Unique fragrance name", Required: true, Type: "string", Example: "LJ Apex"},
			{Name: "gender", Description: "Catalog partition (MEN, WOMEN, UNISEX)", Required: true, Type: "string", Example: "MEN"},
			{Name: "unitcost", Description: "Cost per unit", Required: true, Type: "number", Example: "5.00"},
			{Name: "saleprice", Description: "Retail price per unit", Required: true, Type: "number", Example: "25.00"},
			{Name: "quantity", Description: "Initial stock count", Required: true, Type: "number", Example: "10"},
			{Name: "description", Description: "Free-text description", Required: false, Type: "string", Example: "Woody, smoky opening"},
			{Name: "category", Description: "Category or barcode", Required: false, Type: "string", Example: "EDP-50"},
			{Name: "inspiredby", Description: "Inspired-by reference", Required: false, Type: "string", Example: "Creed Aventus"},
			{Name: "imagepath", Description: "Path to product image", Required: false, Type: "string", Example: "images/apex.png"},
		},
		SampleData: []map[string]string{
			{
				"name":        "LJ Apex",
				"gender":      "MEN",
				"unitcost":    "5.00",
				"saleprice":   "25.00",
				"quantity":    "10",
				"description": "Woody, smoky opening",
				"category":    "EDP-50",
				"inspiredby":  "Creed Aventus",
				"imagepath":   "images/apex.png",
			},
			{
				"name":        "LJ Velvet Bloom",
				"gender":      "WOMEN",
				"unitcost":    "6.50",
				"saleprice":   "28.00",
				"quantity":    "8",
				"description": "Floral with vanilla base",
				"category":    "EDP-50",
				"inspiredby":  "Lancome La Vie Est Belle",
				"imagepath":   "",
			},
		},
	}
}

// SupplyImportTemplate returns the template for supplies
func SupplyImportTemplate() ImportTemplate {
	return ImportTemplate{
		Entity:  "supplies",
		Version: "1.0",
		Columns: []ImportTemplateColumn{
			{Name: "name", Description: "Unique supply name", Required: true, Type: "string", Example: "50ml Atomizer Bottle"},
			{Name: "price", Description: "Purchase price", Required: true, Type: "number", Example: "1.20"},
			{Name: "quantity", Description: "Stock count", Required: true, Type: "number", Example: "200"},
			{Name: "purchaselink", Description: "Where to reorder", Required: false, Type: "string", Example: "https://example.com/bottles"},
		},
		SampleData: []map[string]string{
			{
				"name":         "50ml Atomizer Bottle",
				"price":        "1.20",
				"quantity":     "200",
				"purchaselink": "https://example.com/bottles",
			},
		},
	}
}

// OilImportTemplate returns the template for oils
func OilImportTemplate() ImportTemplate {
	return ImportTemplate{
		Entity:  "oils",
		Version: "1.0",
		Columns: []ImportTemplateColumn{
			{Name: "name", Description: "Unique oil name", Required: true, Type: "string", Example: "Aventus Type Oil"},
			{Name: "size", Description: "Bottle size in ml", Required: true, Type: "number", Example: "30"},
			{Name: "price", Description: "Purchase price", Required: true, Type: "number", Example: "18.50"},
			{Name: "quantity", Description: "Stock count", Required: true, Type: "number", Example: "5"},
			{Name: "purchaselink", Description: "Where to reorder", Required: false, Type: "string", Example: "https://example.com/oils"},
		},
		SampleData: []map[string]string{
			{
				"name":         "Aventus Type Oil",
				"size":         "30",
				"price":        "18.50",
				"quantity":     "5",
				"purchaselink": "https://example.com/oils",
			},
		},
	}
}

// GetFragranceImportTemplate returns the fragrance import template
// GET /api/v1/fragrances/import/template?format=json|csv|xlsx
func (h *ImportHandler) GetFragranceImportTemplate(c *gin.Context) {
	h.serveTemplate(c, FragranceImportTemplate(), "Fragrances")
}

// GetSupplyImportTemplate returns the supply import template
// GET /api/v1/supplies/import/template?format=json|csv|xlsx
func (h *ImportHandler) GetSupplyImportTemplate(c *gin.Context) {
	h.serveTemplate(c, SupplyImportTemplate(), "Supplies")
}

// GetOilImportTemplate returns the oil import template
// GET /api/v1/oils/import/template?format=json|csv|xlsx
func (h *ImportHandler) GetOilImportTemplate(c *gin.Context) {
	h.serveTemplate(c, OilImportTemplate(), "Oils")
}

func (h *ImportHandler) serveTemplate(c *gin.Context, template ImportTemplate, sheetName string) {
	switch c.DefaultQuery("format", "json") {
	case "csv":
		h.generateCSVTemplate(c, template)
	case "xlsx":
		h.generateXLSXTemplate(c, template, sheetName)
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "template": template})
	}
}

func (h *ImportHandler) generateCSVTemplate(c *gin.Context, template ImportTemplate) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_import_template.csv", template.Entity))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	headers := make([]string, len(template.Columns))
	for i, col := range template.Columns {
		headers[i] = col.Name
	}
	writer.Write(headers)

	for _, sample := range template.SampleData {
		row := make([]string, len(template.Columns))
		for i, col := range template.Columns {
			row[i] = sample[col.Name]
		}
		writer.Write(row)
	}
}

func (h *ImportHandler) generateXLSXTemplate(c *gin.Context, template ImportTemplate, sheetName string) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})

	requiredStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"C65911"}, Pattern: 1},
	})

	for i, col := range template.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		headerText := col.Name
		if col.Required {
			headerText = col.Name + " *"
		}
		f.SetCellValue(sheetName, cell, headerText)

		if col.Required {
			f.SetCellStyle(sheetName, cell, cell, requiredStyle)
		} else {
			f.SetCellStyle(sheetName, cell, cell, headerStyle)
		}

		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 18)
	}

	for rowIdx, sample := range template.SampleData {
		for colIdx, col := range template.Columns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, sample[col.Name])
		}
	}

	sheetIdx, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIdx)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_import_template.xlsx", template.Entity))

	f.Write(c.Writer)
}

// ImportFragrances imports fragrances from a CSV or Excel file
// POST /api/v1/fragrances/import
func (h *ImportHandler) ImportFragrances(c *gin.Context) {
	rows, validateOnly, ok := h.readUpload(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.processFragranceRows(rows, validateOnly))
}

// ImportSupplies imports supplies from a CSV or Excel file
// POST /api/v1/supplies/import
func (h *ImportHandler) ImportSupplies(c *gin.Context) {
	rows, validateOnly, ok := h.readUpload(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.processSupplyRows(rows, validateOnly))
}

// ImportOils imports oils from a CSV or Excel file
// POST /api/v1/oils/import
func (h *ImportHandler) ImportOils(c *gin.Context) {
	rows, validateOnly, ok := h.readUpload(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.processOilRows(rows, validateOnly))
}

func (h *ImportHandler) readUpload(c *gin.Context) ([]map[string]string, bool, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   models.Error{Code: "FILE_REQUIRED", Message: "Please upload a CSV or Excel file"},
		})
		return nil, false, false
	}
	defer file.Close()

	validateOnly := c.DefaultPostForm("validateOnly", "false") == "true"

	rows, parseErr := h.parseFile(file, header.Filename)
	if parseErr != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   models.Error{Code: "PARSE_ERROR", Message: parseErr.Error()},
		})
		return nil, false, false
	}

	if len(rows) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   models.Error{Code: "EMPTY_FILE", Message: "The file contains no data rows"},
		})
		return nil, false, false
	}

	return rows, validateOnly, true
}

func (h *ImportHandler) processFragranceRows(rows []map[string]string, validateOnly bool) *ImportResult {
	result := &ImportResult{TotalRows: len(rows)}

	for _, row := range rows {
		rowNum, _ := strconv.Atoi(row["_row"])

		name := row["name"]
		if name == "" {
			result.addError(rowNum, "name", "REQUIRED", "Name is required")
			continue
		}

		gender := models.Gender(strings.ToUpper(row["gender"]))
		if !gender.Valid() {
			result.addError(rowNum, "gender", "INVALID_VALUE", "Gender must be MEN, WOMEN or UNISEX")
			continue
		}

		unitCost, err := parseNonNegativeFloat(row["unitcost"])
		if err != nil {
			result.addError(rowNum, "unitcost", "INVALID_VALUE", "Unit cost must be a non-negative number")
			continue
		}

		salePrice, err := parseNonNegativeFloat(row["saleprice"])
		if err != nil {
			result.addError(rowNum, "saleprice", "INVALID_VALUE", "Sale price must be a non-negative number")
			continue
		}

		quantity, err := parseNonNegativeInt(row["quantity"])
		if err != nil {
			result.addError(rowNum, "quantity", "INVALID_VALUE", "Quantity must be a non-negative integer")
			continue
		}

		if _, err := h.fragrances.GetByName(name); err == nil {
			result.SkippedCount++
			continue
		} else if !isNotFound(err) {
			result.addError(rowNum, "", "DB_ERROR", err.Error())
			continue
		}

		if validateOnly {
			result.SuccessCount++
			continue
		}

		fragrance := &models.Fragrance{
			Name:        name,
			Description: row["description"],
			Gender:      gender,
			Category:    row["category"],
			UnitCost:    unitCost,
			SalePrice:   salePrice,
			InspiredBy:  row["inspiredby"],
			Quantity:    quantity,
			ImagePath:   row["imagepath"],
		}
		if err := h.fragrances.Create(fragrance); err != nil {
			result.addError(rowNum, "", "CREATE_FAILED", err.Error())
			continue
		}

		result.SuccessCount++
		result.CreatedIDs = append(result.CreatedIDs, fragrance.ID.String())
	}

	result.finish()
	return result
}

func (h *ImportHandler) processSupplyRows(rows []map[string]string, validateOnly bool) *ImportResult {
	result := &ImportResult{TotalRows: len(rows)}

	for _, row := range rows {
		rowNum, _ := strconv.Atoi(row["_row"])

		name := row["name"]
		if name == "" {
			result.addError(rowNum, "name", "REQUIRED", "Name is required")
			continue
		}

		price, err := parseNonNegativeFloat(row["price"])
		if err != nil {
			result.addError(rowNum, "price", "INVALID_VALUE", "Price must be a non-negative number")
			continue
		}

		quantity, err := parseNonNegativeInt(row["quantity"])
		if err != nil {
			result.addError(rowNum, "quantity", "INVALID_VALUE", "Quantity must be a non-negative integer")
			continue
		}

		if _, err := h.supplies.GetByName(name); err == nil {
			result.SkippedCount++
			continue
		} else if !isNotFound(err) {
			result.addError(rowNum, "", "DB_ERROR", err.Error())
			continue
		}

		if validateOnly {
			result.SuccessCount++
			continue
		}

		supply := &models.Supply{
			Name:         name,
			Price:        price,
			PurchaseLink: row["purchaselink"],
			Quantity:     quantity,
		}
		if err := h.supplies.Create(supply); err != nil {
			result.addError(rowNum, "", "CREATE_FAILED", err.Error())
			continue
		}

		result.SuccessCount++
		result.CreatedIDs = append(result.CreatedIDs, supply.ID.String())
	}

	result.finish()
	return result
}

func (h *ImportHandler) processOilRows(rows []map[string]string, validateOnly bool) *ImportResult {
	result := &ImportResult{TotalRows: len(rows)}

	for _, row := range rows {
		rowNum, _ := strconv.Atoi(row["_row"])

		name := row["name"]
		if name == "" {
			result.addError(rowNum, "name", "REQUIRED", "Name is required")
			continue
		}

		size, err := parseNonNegativeFloat(row["size"])
		if err != nil {
			result.addError(rowNum, "size", "INVALID_VALUE", "Size must be a non-negative number")
			continue
		}

		price, err := parseNonNegativeFloat(row["price"])
		if err != nil {
			result.addError(rowNum, "price", "INVALID_VALUE", "Price must be a non-negative number")
			continue
		}

		quantity, err := parseNonNegativeInt(row["quantity"])
		if err != nil {
			result.addError(rowNum, "quantity", "INVALID_VALUE", "Quantity must be a non-negative integer")
			continue
		}

		if _, err := h.oils.GetByName(name); err == nil {
			result.SkippedCount++
			continue
		} else if !isNotFound(err) {
			result.addError(rowNum, "", "DB_ERROR", err.Error())
			continue
		}

		if validateOnly {
			result.SuccessCount++
			continue
		}

		oil := &models.Oil{
			Name:         name,
			Size:         size,
			Price:        price,
			PurchaseLink: row["purchaselink"],
			Quantity:     quantity,
		}
		if err := h.oils.Create(oil); err != nil {
			result.addError(rowNum, "", "CREATE_FAILED", err.Error())
			continue
		}

		result.SuccessCount++
		result.CreatedIDs = append(result.CreatedIDs, oil.ID.String())
	}

	result.finish()
	return result
}

func (r *ImportResult) addError(row int, column, code, message string) {
	r.Errors = append(r.Errors, ImportRowError{Row: row, Column: column, Code: code, Message: message})
}

func (r *ImportResult) finish() {
	r.FailedCount = len(r.Errors)
	r.Success = r.FailedCount == 0
}

func isNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}

func parseNonNegativeFloat(value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, fmt.Errorf("negative value")
	}
	return f, nil
}

func parseNonNegativeInt(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value")
	}
	return n, nil
}

func (h *ImportHandler) parseFile(file io.Reader, filename string) ([]map[string]string, error) {
	if strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return h.parseCSV(file)
	} else if strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		return h.parseXLSX(file)
	}
	return nil, fmt.Errorf("only CSV and XLSX files are supported")
}

func (h *ImportHandler) parseCSV(file io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("file must have a header row and at least one data row")
	}

	headers := records[0]
	for i := range headers {
		headers[i] = normalizeHeader(headers[i])
	}

	var rows []map[string]string
	for rowIdx, record := range records[1:] {
		row := make(map[string]string)
		for i, value := range record {
			if i < len(headers) {
				row[headers[i]] = strings.TrimSpace(value)
			}
		}
		row["_row"] = strconv.Itoa(rowIdx + 2)
		rows = append(rows, row)
	}

	return rows, nil
}

func (h *ImportHandler) parseXLSX(file io.Reader) ([]map[string]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in Excel file")
	}

	excelRows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	if len(excelRows) < 2 {
		return nil, fmt.Errorf("file must have a header row and at least one data row")
	}

	headers := excelRows[0]
	for i := range headers {
		headers[i] = normalizeHeader(headers[i])
	}

	var rows []map[string]string
	for rowIdx, excelRow := range excelRows[1:] {
		row := make(map[string]string)
		for i, value := range excelRow {
			if i < len(headers) {
				row[headers[i]] = strings.TrimSpace(value)
			}
		}
		row["_row"] = strconv.Itoa(rowIdx + 2)
		rows = append(rows, row)
	}

	return rows, nil
}

// normalizeHeader lowercases a column header and strips the required marker
// that template downloads append
func normalizeHeader(header string) string {
	header = strings.TrimSpace(strings.ToLower(header))
	return strings.TrimSpace(strings.TrimSuffix(header, "*"))
}
