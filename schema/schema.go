// Package schema has configs, models and shared helpers for all parts of tslabel.
package schema

import "time"

// Table is a raw tabular input as handed over by the host layer, before any
// validation. Cells are untyped strings exactly as they appeared in the source.
type Table struct {
	Columns []string   // Column names in original order
	Rows    [][]string // One slice of cells per row, aligned with Columns
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Record is one row of a validated series. Records are identified by their
// original row position, since timestamps need not be unique.
type Record struct {
	Index     int         `json:"index"`     // Original zero-based row position in the uploaded table
	Timestamp time.Time   `json:"timestamp"` // Parsed instant, always valid after validation
	Value     float64     `json:"value"`     // Parsed numeric measurement
	Label     *LabelValue `json:"label"`     // Assigned label, nil while unlabeled
	Raw       []string    `json:"-"`         // Original cells, preserved for export
}

// Series is an ordered sequence of validated records, sorted by timestamp
// ascending with ties broken by original row position. Only the Label field
// of its records mutates after construction.
type Series struct {
	Columns []string // Original column names
	Records []Record
}

// MinTime returns the earliest timestamp in the series.
func (s *Series) MinTime() time.Time {
	if len(s.Records) == 0 {
		return time.Time{}
	}
	return s.Records[0].Timestamp
}

// MaxTime returns the latest timestamp in the series.
func (s *Series) MaxTime() time.Time {
	if len(s.Records) == 0 {
		return time.Time{}
	}
	return s.Records[len(s.Records)-1].Timestamp
}

// Window is the currently visible time interval of the series. It is held
// half-open [Start, End) for advancement math; the view presented to consumers
// is inclusive on both ends.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// View is the windowed slice of a series that a host renders.
type View struct {
	Window  Window   `json:"window"`
	Records []Record `json:"records"`
}

// DatasetRow is one exported row: the original cells plus the current label.
// Timestamp and Value carry the parsed forms for typed export targets.
type DatasetRow struct {
	Index     int         // Original row position
	Timestamp time.Time   // Parsed instant
	Value     float64     // Parsed measurement
	Cells     []string    // Original cells in column order
	Label     *LabelValue // nil is the explicit absent-label marker
}

// Dataset is the tabular export of a labeled series: every original column
// plus the label column. Row order matches the validated series.
type Dataset struct {
	Columns []string // Original columns followed by the label column name
	Rows    []DatasetRow
}

// ValidationSummary reports the outcome of dataset validation. Dropped rows
// are a data-quality signal alongside a successful result, not an error.
type ValidationSummary struct {
	TotalRows   int       `json:"total_rows"`
	KeptRows    int       `json:"kept_rows"`
	DroppedRows int       `json:"dropped_rows"`
	MinTime     time.Time `json:"min_time"`
	MaxTime     time.Time `json:"max_time"`
	Columns     []string  `json:"columns"`
}
