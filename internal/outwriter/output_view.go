package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/fweigt/tslabel/internal/contract"
	"github.com/fweigt/tslabel/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintViewResults outputs the windowed view, dispatching based on the output
// format configured. Parquet is an export format; views fall back to text.
func PrintViewResults(view *schema.View, cfg *contract.Config) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, view)
		}, "Wrote JSON view")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVView(w, view, fmtFloat)
		}, "Wrote CSV view")
	default:
		return printViewTable(view, cfg, fmtFloat)
	}
}

// printViewTable renders the window header plus a four-column record table.
func printViewTable(view *schema.View, cfg *contract.Config, fmtFloat func(float64) string) error {
	fmt.Printf("🪟 Window: %s → %s (%d records)\n",
		view.Window.Start.Format(time.RFC3339),
		view.Window.End.Format(time.RFC3339),
		len(view.Records))

	if len(view.Records) == 0 {
		fmt.Println("No records fall inside the current window.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Row", "Timestamp", "Value", "Label"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	labelCell := contract.GetPlainLabel
	if cfg.UseColors {
		labelCell = contract.GetColorLabel
	}

	var data [][]string
	for _, r := range view.Records {
		data = append(data, []string{
			strconv.Itoa(r.Index),
			r.Timestamp.Format(time.RFC3339),
			fmtFloat(r.Value),
			labelCell(r.Label),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCSVView writes the view records in CSV format. The window bounds ride
// along as columns so a view file is self-describing.
func writeCSVView(w io.Writer, view *schema.View, fmtFloat func(float64) string) error {
	header := []string{"row", "timestamp", "value", "label", "window_start", "window_end"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		start := view.Window.Start.Format(time.RFC3339)
		end := view.Window.End.Format(time.RFC3339)
		for _, r := range view.Records {
			label := ""
			if r.Label != nil {
				label = string(*r.Label)
			}
			rec := []string{
				strconv.Itoa(r.Index),
				r.Timestamp.Format(time.RFC3339),
				fmtFloat(r.Value),
				label,
				start,
				end,
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
