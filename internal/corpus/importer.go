package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/verte-zerg/jyutquiz/internal/model"
)

// DefaultImportCategory receives rows without a category column.
const DefaultImportCategory = "imported"

// ImportConfig describes a spreadsheet or CSV vocabulary source. Columns are
// chinese, jyutping, english, icon, category.
type ImportConfig struct {
	FilePath  string
	SheetName string
	// StartRow is the 1-based first data row.
	StartRow int
}

// DefaultImportConfig returns a config that skips one header row.
func DefaultImportConfig(path string) ImportConfig {
	return ImportConfig{FilePath: path, SheetName: "Sheet1", StartRow: 2}
}

// ImportResult reports what an import produced.
type ImportResult struct {
	Categories     []Category
	TotalProcessed int
	Created        int
	Skipped        int
	Errors         []string
}

// Import reads vocabulary rows from an .xlsx or .csv file.
func Import(cfg ImportConfig) (*ImportResult, error) {
	var (
		rows [][]string
		err  error
	)
	if strings.EqualFold(filepath.Ext(cfg.FilePath), ".csv") {
		rows, err = readCSV(cfg.FilePath)
	} else {
		rows, err = readSheet(cfg.FilePath, cfg.SheetName)
	}
	if err != nil {
		return nil, err
	}
	return importRows(rows, cfg.StartRow), nil
}

func readSheet(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close for read-only spreadsheet.
			_ = cerr
		}
	}()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}
	if !containsString(sheets, sheet) {
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only csv.
			_ = cerr
		}
	}()
	return parseCSV(file)
}

func parseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func importRows(rows [][]string, startRow int) *ImportResult {
	if startRow < 1 {
		startRow = 1
	}
	result := &ImportResult{Errors: make([]string, 0)}
	index := map[string]int{}
	seen := map[string]struct{}{}
	for i, row := range rows {
		rowNum := i + 1
		if rowNum < startRow {
			continue
		}
		result.TotalProcessed++
		item, err := parseRow(row)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		key := item.Category + "\x00" + item.Chinese
		if _, dup := seen[key]; dup {
			result.Skipped++
			continue
		}
		seen[key] = struct{}{}
		idx, ok := index[item.Category]
		if !ok {
			idx = len(result.Categories)
			index[item.Category] = idx
			result.Categories = append(result.Categories, Category{Key: item.Category, Name: item.Category})
		}
		result.Categories[idx].Items = append(result.Categories[idx].Items, item)
		result.Created++
	}
	return result
}

func parseRow(row []string) (model.VocabularyItem, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	item := model.VocabularyItem{
		Chinese:  cell(0),
		Jyutping: strings.ToLower(cell(1)),
		English:  cell(2),
		Icon:     cell(3),
		Category: cell(4),
	}
	if item.Chinese == "" {
		return item, fmt.Errorf("chinese cannot be empty")
	}
	if item.Jyutping == "" {
		return item, fmt.Errorf("jyutping cannot be empty")
	}
	if item.Category == "" {
		item.Category = DefaultImportCategory
	}
	return item, nil
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
