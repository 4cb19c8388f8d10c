// Package core holds the windowed labeling engine: dataset validation, window
// tracking, range resolution, label application and the orchestration between
// them. Everything here is synchronous and free of I/O; hosts hand in-memory
// tables in and take in-memory data back.
package core

import (
	"sort"
	"strconv"
	"strings"

	"github.com/fweigt/tslabel/schema"
)

// Validate turns a raw table into a labelable series or reports why it cannot.
// Rows whose timestamp or value fails to parse are dropped and counted, never
// coerced to placeholder values. The returned series is sorted by timestamp
// ascending, stable on ties by original row position. The input table is not
// modified.
func Validate(table *schema.Table, tsColumn, valueColumn string) (*schema.Series, int, error) {
	tsIdx := table.ColumnIndex(tsColumn)
	if tsIdx < 0 {
		return nil, 0, schema.NewMissingColumnError(tsColumn)
	}
	valIdx := table.ColumnIndex(valueColumn)
	if valIdx < 0 {
		return nil, 0, schema.NewMissingColumnError(valueColumn)
	}

	records := make([]schema.Record, 0, len(table.Rows))
	dropped := 0
	tsFailures := 0
	for i, row := range table.Rows {
		if tsIdx >= len(row) || valIdx >= len(row) {
			// Ragged row missing one of the required cells.
			dropped++
			continue
		}

		ts, err := schema.ParseTimestamp(row[tsIdx])
		if err != nil {
			dropped++
			tsFailures++
			continue
		}

		val, err := strconv.ParseFloat(strings.TrimSpace(row[valIdx]), 64)
		if err != nil {
			dropped++
			continue
		}

		records = append(records, schema.Record{
			Index:     i,
			Timestamp: ts,
			Value:     val,
			Raw:       row,
		})
	}

	if len(records) == 0 {
		if len(table.Rows) > 0 && tsFailures == len(table.Rows) {
			return nil, dropped, schema.NewUnparseableTimestampsError()
		}
		return nil, dropped, schema.NewEmptyDatasetError()
	}

	// Stable keeps original row order for equal timestamps.
	sort.SliceStable(records, func(a, b int) bool {
		return records[a].Timestamp.Before(records[b].Timestamp)
	})

	columns := make([]string, len(table.Columns))
	copy(columns, table.Columns)

	return &schema.Series{Columns: columns, Records: records}, dropped, nil
}
