package cmd

import (
	"github.com/fweigt/tslabel/core"
	"github.com/fweigt/tslabel/internal/contract"
	"github.com/spf13/cobra"
)

// validateCmd checks a raw dataset and reports what is labelable.
var validateCmd = &cobra.Command{
	Use:   "validate [csv-path]",
	Short: "Validate a raw dataset and summarize the usable time series.",
	Long: `Parse a raw CSV dataset into a time series, dropping rows whose
timestamp or value cannot be parsed.

Reports:
- Total, kept and dropped row counts
- The time span covered by the kept records
- The dataset's column names

Validation fails outright when:
- The timestamp or value column is missing from the header
- No timestamp in the dataset can be parsed
- No usable records remain after dropping bad rows

Examples:
  # Validate with the default column names (timestamp, value)
  tslabel validate readings.csv

  # Validate a dataset with custom column names
  tslabel validate readings.csv --timestamp-column ts --value-column temp

  # Emit the summary as JSON for scripting
  tslabel validate readings.csv --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteValidate(cfg); err != nil {
			contract.LogFatal("Cannot validate dataset", err)
		}
	},
}
