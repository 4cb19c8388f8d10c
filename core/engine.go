package core

import (
	"errors"
	"time"

	"github.com/fweigt/tslabel/schema"
)

// ErrNotLoaded is returned when a mutating operation runs before Load.
var ErrNotLoaded = errors.New("no dataset loaded")

// Engine orchestrates validation, window tracking, range resolution and label
// application for one editing session. Hosts construct one Engine per session
// key and pass it explicitly; there is no shared global state. All operations
// run to completion before the next is accepted, and every error leaves the
// engine's state unchanged.
type Engine struct {
	tsColumn    string
	valueColumn string
	windowDur   time.Duration
	labels      *LabelStore

	series  *schema.Series
	cursor  *WindowCursor
	dropped int
}

// EngineOptions configures a labeling engine. Zero fields fall back to the
// schema defaults.
type EngineOptions struct {
	TimestampColumn string
	ValueColumn     string
	WindowDuration  time.Duration
	Labels          []schema.LabelValue
}

// NewEngine creates an engine with no dataset loaded.
func NewEngine(opts EngineOptions) *Engine {
	if opts.TimestampColumn == "" {
		opts.TimestampColumn = schema.DefaultTimestampColumn
	}
	if opts.ValueColumn == "" {
		opts.ValueColumn = schema.DefaultValueColumn
	}
	if opts.WindowDuration <= 0 {
		opts.WindowDuration = schema.DefaultWindowDuration
	}
	if len(opts.Labels) == 0 {
		opts.Labels = schema.DefaultLabelSet()
	}
	return &Engine{
		tsColumn:    opts.TimestampColumn,
		valueColumn: opts.ValueColumn,
		windowDur:   opts.WindowDuration,
		labels:      NewLabelStore(opts.Labels),
	}
}

// Load validates the raw table and positions the initial window at the start
// of the series. On validation failure the engine keeps whatever dataset it
// had before.
func (e *Engine) Load(table *schema.Table) (*schema.Series, error) {
	series, dropped, err := Validate(table, e.tsColumn, e.valueColumn)
	if err != nil {
		return nil, err
	}
	e.series = series
	e.dropped = dropped
	e.cursor = NewWindowCursor(series, e.windowDur)
	return series, nil
}

// Loaded reports whether a dataset has been loaded.
func (e *Engine) Loaded() bool {
	return e.series != nil
}

// Series returns the loaded series, or nil before Load.
func (e *Engine) Series() *schema.Series {
	return e.series
}

// Dropped returns how many rows validation removed from the loaded dataset.
func (e *Engine) Dropped() int {
	return e.dropped
}

// Labels returns the configured label set in order.
func (e *Engine) Labels() []schema.LabelValue {
	return e.labels.Labels()
}

// CurrentView returns the window and the records it covers. The view is
// inclusive on both ends, matching what a user visually selects, even though
// the window advances with half-open math.
func (e *Engine) CurrentView() schema.View {
	if !e.Loaded() {
		return schema.View{}
	}
	w := e.cursor.Current()
	return schema.View{
		Window:  w,
		Records: recordsInRange(e.series, w.Start, w.End),
	}
}

// Advance moves the window to the candidate start, clamped to the series
// bounds, and returns the resulting window.
func (e *Engine) Advance(newStart time.Time) schema.Window {
	if !e.Loaded() {
		return schema.Window{}
	}
	return e.cursor.Advance(newStart)
}

// LabelSelection resolves the inclusive range and applies the label to every
// record it covers, returning the updated series. An empty selection is a
// valid no-op. An unrecognized label returns UnknownLabel with the series
// byte-for-byte unchanged.
func (e *Engine) LabelSelection(lo, hi time.Time, label schema.LabelValue) (*schema.Series, error) {
	if !e.Loaded() {
		return nil, ErrNotLoaded
	}
	ids := ResolveRange(e.series, lo, hi)
	if err := e.labels.Apply(e.series, ids, label); err != nil {
		return nil, err
	}
	return e.series, nil
}

// ApplyAssignments replays persisted label decisions onto the loaded series.
// Assignments whose label is no longer in the configured set are skipped and
// reported back to the caller.
func (e *Engine) ApplyAssignments(assignments []schema.LabelAssignment) []schema.LabelAssignment {
	if !e.Loaded() {
		return assignments
	}
	var skipped []schema.LabelAssignment
	for _, a := range assignments {
		if err := e.labels.Apply(e.series, []int{a.RowIndex}, a.Label); err != nil {
			skipped = append(skipped, a)
		}
	}
	return skipped
}

// Export returns the labeled dataset: every original column plus the label
// column, with nil marking absent labels.
func (e *Engine) Export() schema.Dataset {
	if !e.Loaded() {
		return schema.Dataset{}
	}
	return e.labels.Export(e.series)
}
