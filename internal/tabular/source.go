package tabular

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/xuri/excelize/v2"

	"fjacquet/statement-analyzer/internal/parsererror"
)

// Table is an ordered sequence of row objects plus the source's column
// names in their original order.
type Table struct {
	Columns []string
	Rows    []map[string]string
}

// ReadCSV parses delimited text with a header row. Headers are arbitrary;
// the column names are reported back verbatim (trimmed) and role
// inference happens later.
func ReadCSV(data []byte, delimiter rune) (*Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &parsererror.MalformedSourceError{Format: "CSV", Err: err}
	}
	if len(records) == 0 {
		return nil, parsererror.ErrNoDataFound
	}

	return buildTable(records), nil
}

// ReadWorkbook parses a spreadsheet workbook: first sheet only, first row
// as header.
func ReadWorkbook(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &parsererror.MalformedSourceError{Format: "XLSX", Err: err}
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, parsererror.ErrNoDataFound
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, &parsererror.MalformedSourceError{Format: "XLSX", Err: err}
	}
	if len(rows) == 0 {
		return nil, parsererror.ErrNoDataFound
	}

	return buildTable(rows), nil
}

func buildTable(records [][]string) *Table {
	header := make([]string, len(records[0]))
	for i, col := range records[0] {
		header[i] = strings.TrimSpace(col)
	}

	table := &Table{Columns: header}
	for _, record := range records[1:] {
		if isEmptyRecord(record) {
			continue
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			} else {
				// Spreadsheet readers drop trailing empty cells.
				row[col] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func isEmptyRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
