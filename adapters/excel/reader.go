package excel

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"cognia/domain/table"
)

// Tokens treated as the missing marker on ingestion
var missingTokens = map[string]bool{
	"": true, "na": true, "n/a": true, "null": true, "nan": true,
}

// Reader loads an Excel workbook sheet into the engine's table
// representation.
type Reader struct {
	// Sheet overrides the sheet name; empty means the workbook's first
	// sheet.
	Sheet string
}

// NewReader creates an Excel table reader
func NewReader() *Reader {
	return &Reader{}
}

// Read loads .xlsx content into a Table. The first row is the header.
func (r *Reader) Read(src io.Reader) (*table.Table, error) {
	start := time.Now()
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel workbook: %w", err)
	}
	defer f.Close()

	sheet := r.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q must have a header row and at least one data row", sheet)
	}

	t, err := buildTable(rows[0], rows[1:])
	if err != nil {
		return nil, err
	}
	log.Printf("[ExcelReader] loaded %d columns, %d rows from %q in %.2fms",
		t.ColumnCount(), t.RowCount(), sheet, float64(time.Since(start).Nanoseconds())/1e6)
	return t, nil
}

// ReadFile loads an .xlsx file into a Table
func (r *Reader) ReadFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()
	return r.Read(f)
}

func buildTable(header []string, data [][]string) (*table.Table, error) {
	cells := make([][]table.Value, len(header))
	for i := range cells {
		cells[i] = make([]table.Value, len(data))
	}

	for rowIdx, record := range data {
		for colIdx := range header {
			if colIdx >= len(record) {
				// excelize drops trailing empty cells.
				cells[colIdx][rowIdx] = table.Missing
				continue
			}
			cells[colIdx][rowIdx] = parseCell(record[colIdx])
		}
	}

	columns := make([]table.Column, len(header))
	for i, name := range header {
		columns[i] = table.NewColumn(strings.TrimSpace(name), cells[i])
	}
	return table.New(columns)
}

func parseCell(raw string) table.Value {
	if missingTokens[strings.ToLower(strings.TrimSpace(raw))] {
		return table.Missing
	}
	return raw
}
