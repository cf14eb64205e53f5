package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"cognia/domain/table"
)

// Tokens treated as the missing marker on ingestion
var missingTokens = map[string]bool{
	"": true, "na": true, "n/a": true, "null": true, "nan": true,
}

// Reader loads CSV data into the engine's table representation. Cells stay
// raw strings; semantic typing belongs to the analysis engine.
type Reader struct {
	// Comma overrides the field delimiter; zero means ','.
	Comma rune
}

// NewReader creates a CSV table reader
func NewReader() *Reader {
	return &Reader{}
}

// Read parses CSV content with a header row into a Table
func (r *Reader) Read(src io.Reader) (*table.Table, error) {
	cr := csv.NewReader(src)
	if r.Comma != 0 {
		cr.Comma = r.Comma
	}
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV input has no header row")
	}

	header := records[0]
	rows := records[1:]
	cells := make([][]table.Value, len(header))
	for i := range cells {
		cells[i] = make([]table.Value, len(rows))
	}

	for rowIdx, record := range rows {
		for colIdx := range header {
			if colIdx >= len(record) {
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

	t, err := table.New(columns)
	if err != nil {
		return nil, err
	}
	log.Printf("[CSVReader] loaded %d columns, %d rows", t.ColumnCount(), t.RowCount())
	return t, nil
}

// ReadFile loads a CSV file into a Table
func (r *Reader) ReadFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()
	return r.Read(f)
}

func parseCell(raw string) table.Value {
	if missingTokens[strings.ToLower(strings.TrimSpace(raw))] {
		return table.Missing
	}
	return raw
}
