package cmd

import (
	"github.com/fweigt/tslabel/core"
	"github.com/fweigt/tslabel/internal/contract"
	"github.com/fweigt/tslabel/internal/sessiondb"
	"github.com/spf13/cobra"
)

// viewCmd shows the records inside the visible window.
var viewCmd = &cobra.Command{
	Use:   "view [csv-path]",
	Short: "Show the records inside the current time window.",
	Long: `Display the slice of the time series that falls inside the visible
window, together with any labels stored for the session.

The window starts at the earliest record and spans the configured duration
(2h by default). A candidate start passed via --start is clamped so the
window never leaves the series span; when the series is shorter than the
window, the whole series is shown.

Examples:
  # Show the initial window
  tslabel view readings.csv

  # Jump the window to a specific start
  tslabel view readings.csv --start 2024-01-15T08:00:00Z

  # Use a half-hour window and a named session
  tslabel view readings.csv --window 30m --session night-shift`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteView(cfg, sessiondb.GetStore()); err != nil {
			contract.LogFatal("Cannot view window", err)
		}
	},
}
