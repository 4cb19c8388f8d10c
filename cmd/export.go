package cmd

import (
	"github.com/fweigt/tslabel/core"
	"github.com/fweigt/tslabel/internal/contract"
	"github.com/fweigt/tslabel/internal/sessiondb"
	"github.com/spf13/cobra"
)

// exportCmd writes the labeled dataset.
var exportCmd = &cobra.Command{
	Use:   "export [csv-path]",
	Short: "Export the labeled dataset with all original columns.",
	Long: `Assemble the labeled dataset: every valid record with all of its
original columns plus a label column, in timestamp order.

Records that were never labeled keep an explicit null label:
- JSON output renders them as null
- CSV output leaves the label field empty
- Parquet output uses an optional column

Examples:
  # Print the labeled dataset as a table
  tslabel export readings.csv

  # Write the dataset to CSV
  tslabel export readings.csv --output csv --output-file labeled.csv

  # Write a Parquet file for analytics pipelines
  tslabel export readings.csv --output parquet --output-file labeled.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(cfg, sessiondb.GetStore()); err != nil {
			contract.LogFatal("Cannot export dataset", err)
		}
	},
}
