package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fweigt/tslabel/internal/contract"
	"github.com/fweigt/tslabel/schema"
)

// PrintValidationSummary outputs the validation summary, dispatching based on
// the configured output format. Parquet has no sensible summary shape, so it
// falls back to the human-readable text form.
func PrintValidationSummary(summary *schema.ValidationSummary, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summary)
		}, "Wrote JSON validation summary")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVValidationSummary(w, summary)
		}, "Wrote CSV validation summary")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTextValidationSummary(w, summary)
		}, "Wrote validation summary")
	}
}

// writeTextValidationSummary prints the human-readable summary lines.
func writeTextValidationSummary(w io.Writer, summary *schema.ValidationSummary) error {
	if _, err := fmt.Fprintf(w, "✅ Dataset is labelable: %d of %d rows kept", summary.KeptRows, summary.TotalRows); err != nil {
		return err
	}
	if summary.DroppedRows > 0 {
		if _, err := fmt.Fprintf(w, " (%d dropped)", summary.DroppedRows); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n📅 Range: %s → %s\n📋 Columns: %s\n",
		summary.MinTime.Format(time.RFC3339),
		summary.MaxTime.Format(time.RFC3339),
		strings.Join(summary.Columns, ", "))
	return err
}

// writeCSVValidationSummary writes the summary as a single CSV record.
func writeCSVValidationSummary(w io.Writer, summary *schema.ValidationSummary) error {
	header := []string{"total_rows", "kept_rows", "dropped_rows", "min_time", "max_time"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		return cw.Write([]string{
			strconv.Itoa(summary.TotalRows),
			strconv.Itoa(summary.KeptRows),
			strconv.Itoa(summary.DroppedRows),
			summary.MinTime.Format(time.RFC3339),
			summary.MaxTime.Format(time.RFC3339),
		})
	})
}
