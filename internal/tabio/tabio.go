// Package tabio reads raw tabular files into in-memory tables. It is host
// plumbing: the engine core only ever sees the in-memory table.
package tabio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/fweigt/tslabel/schema"
)

// ReadTable reads a CSV file into a raw table. The first line is the header.
// Rows may be ragged; validation decides what to do with them.
func ReadTable(path string) (*schema.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open dataset %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return ParseTable(file)
}

// ParseTable parses CSV content from a reader into a raw table.
func ParseTable(r io.Reader) (*schema.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Ragged rows are dropped later, not fatal here
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("dataset is empty: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read header row: %w", err)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read data row: %w", err)
		}
		rows = append(rows, row)
	}

	return &schema.Table{Columns: header, Rows: rows}, nil
}
