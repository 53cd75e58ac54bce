package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"smart-assets-api/pkg/models"

	"github.com/xuri/excelize/v2"
)

// ErrMissingColumns is returned when the sheet lacks one of the required columns.
var ErrMissingColumns = errors.New("required columns missing")

const (
	googleSheetsPrefix = "https://docs.google.com/spreadsheets/"
	defaultSheetName   = "Assets"
	maxDownloadBytes   = 64 << 20
)

// Column names of the asset sheet.
const (
	ColTagNumber               = "Tag number"
	ColDescription             = "Asset Description"
	ColCity                    = "City"
	ColCustodian               = "Custodian"
	ColCost                    = "Cost"
	ColNetBookValue            = "Net Book Value"
	ColRemainingLife           = "Remaining useful life"
	ColManufacturer            = "Manufacturer"
	ColDepreciationAmount      = "Depreciation amount"
	ColAccumulatedDepreciation = "Accumulated Depreciation"
)

// RequiredColumns must all be present in the header row.
var RequiredColumns = []string{ColTagNumber, ColDescription, ColCity, ColCustodian, ColCost, ColNetBookValue, ColRemainingLife}

var optionalColumns = []string{ColManufacturer, ColDepreciationAmount, ColAccumulatedDepreciation}

// AssetLoader reads asset sheets from local files or Google Sheets.
type AssetLoader struct {
	client      *http.Client
	sheetName   string
	maxDownload int64
}

// NewAssetLoader creates a loader reading sheetName (falls back to the first sheet).
func NewAssetLoader(sheetName string, timeout time.Duration) *AssetLoader {
	if sheetName == "" {
		sheetName = defaultSheetName
	}
	return &AssetLoader{
		client:      &http.Client{Timeout: timeout},
		sheetName:   sheetName,
		maxDownload: maxDownloadBytes,
	}
}

// Load reads source, a local .xlsx/.csv path or a Google Sheets URL.
// On any failure it returns an empty store together with the error.
func (l *AssetLoader) Load(ctx context.Context, source string) (*AssetStore, error) {
	rows, err := l.readSource(ctx, source)
	if err != nil {
		log.Printf("⚠️ [asset loader] failed to read %s: %v", source, err)
		return EmptyAssetStore(), err
	}
	store, err := ParseAssetRows(rows)
	if err != nil {
		log.Printf("⚠️ [asset loader] failed to parse %s: %v", source, err)
		return EmptyAssetStore(), err
	}
	log.Printf("✅ [asset loader] loaded %d assets from %s", store.Len(), source)
	return store, nil
}

// LoadReader parses an uploaded workbook; fileName decides between CSV and xlsx.
func (l *AssetLoader) LoadReader(r io.Reader, fileName string) (*AssetStore, error) {
	var rows [][]string
	var err error
	if strings.HasSuffix(strings.ToLower(fileName), ".csv") {
		rows, err = readCSVRows(r)
	} else {
		rows, err = l.readWorkbook(r)
	}
	if err != nil {
		log.Printf("⚠️ [asset loader] failed to read upload %s: %v", fileName, err)
		return EmptyAssetStore(), err
	}
	store, err := ParseAssetRows(rows)
	if err != nil {
		log.Printf("⚠️ [asset loader] failed to parse upload %s: %v", fileName, err)
		return EmptyAssetStore(), err
	}
	log.Printf("✅ [asset loader] loaded %d assets from upload %s", store.Len(), fileName)
	return store, nil
}

func (l *AssetLoader) readSource(ctx context.Context, source string) ([][]string, error) {
	if strings.HasPrefix(source, googleSheetsPrefix) {
		exportURL, err := GoogleSheetExportURL(source)
		if err != nil {
			return nil, err
		}
		return l.fetchWorkbook(ctx, exportURL)
	}

	if _, err := os.Stat(source); err != nil {
		return nil, fmt.Errorf("asset file not found: %w", err)
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset file: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(source), ".csv") {
		return readCSVRows(f)
	}
	return l.readWorkbook(f)
}

// GoogleSheetExportURL converts a Google Sheets document URL into its xlsx export URL.
func GoogleSheetExportURL(sheetURL string) (string, error) {
	_, rest, ok := strings.Cut(sheetURL, "/d/")
	if !ok {
		return "", fmt.Errorf("not a Google Sheets document URL: %s", sheetURL)
	}
	id, _, _ := strings.Cut(rest, "/")
	id, _, _ = strings.Cut(id, "?")
	if id == "" {
		return "", fmt.Errorf("missing sheet id in URL: %s", sheetURL)
	}
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=xlsx", id), nil
}

func (l *AssetLoader) fetchWorkbook(ctx context.Context, url string) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build sheet request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet download returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, l.maxDownload+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet body: %w", err)
	}
	if int64(len(body)) > l.maxDownload {
		return nil, fmt.Errorf("sheet download exceeds %d bytes", l.maxDownload)
	}
	return l.readWorkbook(bytes.NewReader(body))
}

func (l *AssetLoader) readWorkbook(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	sheet, found := sheets[0], false
	for _, name := range sheets {
		if strings.EqualFold(strings.TrimSpace(name), l.sheetName) {
			sheet, found = name, true
			break
		}
	}
	if !found {
		log.Printf("⚠️ [asset loader] sheet %q not found, reading %q", l.sheetName, sheet)
	}

	// raw values so number formats like #,##0.00 do not leak into the cells
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of sheet %s: %w", sheet, err)
	}
	return rows, nil
}

func readCSVRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return rows, nil
}

// ParseAssetRows converts a header row plus data rows into a normalized store.
// Header names are trimmed, fully empty rows are dropped and unparsable numbers become 0.
func ParseAssetRows(rows [][]string) (*AssetStore, error) {
	if len(rows) == 0 {
		return nil, errors.New("sheet is empty")
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	idx := make(map[string]int)
	var missing []string
	for _, col := range RequiredColumns {
		if idx[col] = findIndex(header, col); idx[col] == -1 {
			missing = append(missing, col)
		}
	}
	for _, col := range optionalColumns {
		idx[col] = findIndex(header, col)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s (header: %v)", ErrMissingColumns, strings.Join(missing, ", "), header)
	}

	records := make([]models.AssetRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		records = append(records, models.AssetRecord{
			TagID:                   cell(row, idx[ColTagNumber]),
			Description:             cell(row, idx[ColDescription]),
			City:                    cell(row, idx[ColCity]),
			Custodian:               cell(row, idx[ColCustodian]),
			Cost:                    parseNumber(cell(row, idx[ColCost])),
			NetBookValue:            parseNumber(cell(row, idx[ColNetBookValue])),
			RemainingUsefulLife:     parseNumber(cell(row, idx[ColRemainingLife])),
			Manufacturer:            cell(row, idx[ColManufacturer]),
			DepreciationAmount:      parseNumber(cell(row, idx[ColDepreciationAmount])),
			AccumulatedDepreciation: parseNumber(cell(row, idx[ColAccumulatedDepreciation])),
		})
	}
	return NewAssetStore(records), nil
}

// findIndex returns the position of the first header equal (case-insensitively) to a candidate.
func findIndex(header []string, candidates ...string) int {
	for _, candidate := range candidates {
		for i, item := range header {
			if strings.EqualFold(item, candidate) {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseNumber(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return finiteOrZero(v)
}
