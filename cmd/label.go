package cmd

import (
	"github.com/fweigt/tslabel/core"
	"github.com/fweigt/tslabel/internal/contract"
	"github.com/fweigt/tslabel/internal/sessiondb"
	"github.com/spf13/cobra"
)

// labelCmd assigns a label to a time-range selection.
var labelCmd = &cobra.Command{
	Use:   "label [csv-path]",
	Short: "Assign a label to every record inside a time range.",
	Long: `Assign a label to every record whose timestamp falls inside the
inclusive [--from, --to] range, and persist the assignments under the
session key.

Labeling rules:
- The label must belong to the configured label set
- Relabeling a record overwrites its previous label (last write wins)
- An empty selection is a no-op and leaves the session untouched
- On any error no assignment is applied or persisted

Examples:
  # Mark a two-hour incident as Error
  tslabel label readings.csv --from 2024-01-15T08:00:00Z --to 2024-01-15T10:00:00Z --label Error

  # Label under a named session with a custom label set
  tslabel label readings.csv --labels ok,degraded,down \
    --from 2024-01-15T08:00 --to 2024-01-15T09:00 --label degraded --session triage`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteLabel(cfg, sessiondb.GetStore()); err != nil {
			contract.LogFatal("Cannot label selection", err)
		}
	},
}
