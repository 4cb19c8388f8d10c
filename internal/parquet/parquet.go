// Package parquet provides data structures and functions for exporting
// labeled datasets to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fweigt/tslabel/schema"
	"github.com/parquet-go/parquet-go"
)

// LabeledRecord is the Parquet representation of one exported row. The label
// column is optional so absent labels stay an explicit null, and source
// columns beyond the canonical pair are carried as a JSON extras column.
type LabeledRecord struct {
	// RowIndex is the stable record identifier: the original row position
	RowIndex int64 `parquet:"row_index,snappy"`

	// Timestamp is the parsed instant (stored with nanosecond precision)
	Timestamp time.Time `parquet:"timestamp,snappy"`

	// Value is the parsed numeric measurement
	Value float64 `parquet:"value,snappy"`

	// Label is the assigned label, null while unlabeled
	Label *string `parquet:"label,optional,snappy"`

	// Extras holds JSON-encoded cells of non-canonical source columns (nullable)
	Extras *string `parquet:"extras,optional,snappy"`
}

// ConvertDataset maps an exported dataset to Parquet records. tsColumn and
// valueColumn name the canonical columns; everything else lands in Extras.
func ConvertDataset(ds *schema.Dataset, tsColumn, valueColumn string) []LabeledRecord {
	// The label column is always last; the originals precede it.
	original := ds.Columns[:len(ds.Columns)-1]

	records := make([]LabeledRecord, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		rec := LabeledRecord{
			RowIndex:  int64(row.Index),
			Timestamp: row.Timestamp,
			Value:     row.Value,
		}
		if row.Label != nil {
			label := string(*row.Label)
			rec.Label = &label
		}

		extras := make(map[string]string)
		for i, col := range original {
			if col == tsColumn || col == valueColumn || i >= len(row.Cells) {
				continue
			}
			extras[col] = row.Cells[i]
		}
		if len(extras) > 0 {
			if encoded, err := json.Marshal(extras); err == nil {
				s := string(encoded)
				rec.Extras = &s
			}
		}

		records = append(records, rec)
	}
	return records
}

// WriteLabeledRecordsParquet writes the records to a Parquet file at the
// given path. The schema is inferred from the LabeledRecord struct tags.
func WriteLabeledRecordsParquet(records []LabeledRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[LabeledRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(records); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
