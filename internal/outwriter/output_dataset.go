package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fweigt/tslabel/internal/contract"
	"github.com/fweigt/tslabel/internal/parquet"
	"github.com/fweigt/tslabel/schema"
	"github.com/olekukonko/tablewriter"
)

// PrintDatasetResults outputs the labeled dataset, dispatching based on the
// output format configured.
func PrintDatasetResults(dataset *schema.Dataset, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, DatasetToMaps(dataset))
		}, "Wrote JSON labeled dataset")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVDataset(w, dataset)
		}, "Wrote CSV labeled dataset")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return errors.New("--output-file is required for parquet output")
		}
		records := parquet.ConvertDataset(dataset, cfg.TimestampColumn, cfg.ValueColumn)
		if err := parquet.WriteLabeledRecordsParquet(records, cfg.OutputFile); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote parquet labeled dataset to %s\n", cfg.OutputFile)
		return nil
	default:
		return printDatasetTable(dataset, cfg)
	}
}

// DatasetToMaps converts dataset rows into column-keyed maps so JSON output
// carries every original column, with null marking absent labels. Shared with
// the MCP export tool so both JSON shapes stay identical.
func DatasetToMaps(dataset *schema.Dataset) []map[string]any {
	original := dataset.Columns[:len(dataset.Columns)-1]
	labelColumn := dataset.Columns[len(dataset.Columns)-1]

	out := make([]map[string]any, 0, len(dataset.Rows))
	for _, row := range dataset.Rows {
		m := make(map[string]any, len(dataset.Columns))
		for i, col := range original {
			if i < len(row.Cells) {
				m[col] = row.Cells[i]
			}
		}
		if row.Label != nil {
			m[labelColumn] = string(*row.Label)
		} else {
			m[labelColumn] = nil
		}
		out = append(out, m)
	}
	return out
}

// writeCSVDataset writes every original column plus the label column. CSV has
// no null, so an absent label becomes an empty field; validated label values
// are never empty, so the marker stays unambiguous.
func writeCSVDataset(w io.Writer, dataset *schema.Dataset) error {
	return writeCSVWithHeader(w, dataset.Columns, func(cw *csv.Writer) error {
		width := len(dataset.Columns) - 1
		for _, row := range dataset.Rows {
			rec := make([]string, width+1)
			// Ragged-long rows must never spill into the label slot.
			copy(rec, row.Cells[:min(len(row.Cells), width)])
			if row.Label != nil {
				rec[width] = string(*row.Label)
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// printDatasetTable renders the full labeled dataset as a table.
func printDatasetTable(dataset *schema.Dataset, cfg *contract.Config) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header(dataset.Columns)

	labelCell := contract.GetPlainLabel
	if cfg.UseColors {
		labelCell = contract.GetColorLabel
	}

	// Fixed overhead covers borders and the label column.
	maxCell := getMaxCellWidth(cfg, 20) / max(len(dataset.Columns)-1, 1)
	if maxCell < 10 {
		maxCell = 10
	}

	var data [][]string
	for _, row := range dataset.Rows {
		cells := make([]string, 0, len(dataset.Columns))
		for i := range dataset.Columns[:len(dataset.Columns)-1] {
			cell := ""
			if i < len(row.Cells) {
				cell = truncateCell(row.Cells[i], maxCell)
			}
			cells = append(cells, cell)
		}
		cells = append(cells, labelCell(row.Label))
		data = append(data, cells)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Exported %d labeled rows.\n", len(dataset.Rows))
	return nil
}
