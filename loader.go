package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const csvSeparator = ','

// LoadData reads a tabular file into a raw table, dispatching on the file
// extension. CSV is decoded as Latin-1 so legacy exports with non-UTF8 bytes
// load without error; .xlsx/.xls go through excelize. Any other extension is
// an UnsupportedFormatError.
func LoadData(path string) (Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".xlsx", ".xls":
		return loadExcel(path)
	default:
		return Table{}, &UnsupportedFormatError{Path: path}
	}
}

func loadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = csvSeparator
	r.LazyQuotes = true
	r.FieldsPerRecord = -1 // allow ragged rows, width is enforced below

	headers, err := r.Read()
	if err == io.EOF {
		return Table{}, nil
	}
	if err != nil {
		return Table{}, fmt.Errorf("read csv header: %w", err)
	}

	table := Table{Columns: append([]string(nil), headers...)}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("read csv record: %w", err)
		}
		table.Rows = append(table.Rows, recordToRow(headers, record))
	}
	return table, nil
}

func loadExcel(path string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, fmt.Errorf("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return Table{}, nil
	}

	table := Table{Columns: append([]string(nil), rows[0]...)}
	for _, record := range rows[1:] {
		table.Rows = append(table.Rows, recordToRow(rows[0], record))
	}
	return table, nil
}

// recordToRow pads or truncates a record to the header width so every row has
// a stable column set. Empty cells become nil (missing), everything else stays
// a string until the cleaner coerces it.
func recordToRow(headers, record []string) Row {
	row := make(Row, len(headers))
	for i, name := range headers {
		if i >= len(record) || record[i] == "" {
			row[name] = nil
			continue
		}
		row[name] = record[i]
	}
	return row
}
