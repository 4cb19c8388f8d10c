package core

import (
	"github.com/fweigt/tslabel/schema"
)

// LabelStore applies labels to resolved record sets and assembles the labeled
// export. The allowed set is fixed at construction; it is configuration, not
// hardcoded policy.
type LabelStore struct {
	allowed map[schema.LabelValue]struct{}
	order   []schema.LabelValue
}

// NewLabelStore creates a store accepting exactly the given label values.
func NewLabelStore(labels []schema.LabelValue) *LabelStore {
	allowed := make(map[schema.LabelValue]struct{}, len(labels))
	order := make([]schema.LabelValue, 0, len(labels))
	for _, l := range labels {
		if _, ok := allowed[l]; ok {
			continue
		}
		allowed[l] = struct{}{}
		order = append(order, l)
	}
	return &LabelStore{allowed: allowed, order: order}
}

// Labels returns the allowed label values in configuration order.
func (ls *LabelStore) Labels() []schema.LabelValue {
	out := make([]schema.LabelValue, len(ls.order))
	copy(out, ls.order)
	return out
}

// Apply assigns the label to every identified record. Applying the same label
// twice leaves the series unchanged; applying a different one overwrites
// (last write wins). An empty identifier set is a no-op. An unrecognized
// label value returns UnknownLabel and leaves the series untouched.
func (ls *LabelStore) Apply(series *schema.Series, ids []int, label schema.LabelValue) error {
	if _, ok := ls.allowed[label]; !ok {
		return schema.NewUnknownLabelError(label)
	}
	if len(ids) == 0 {
		return nil
	}

	want := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	for i := range series.Records {
		if _, ok := want[series.Records[i].Index]; ok {
			v := label
			series.Records[i].Label = &v
		}
	}
	return nil
}

// Export returns every original column plus the label column. An absent label
// stays an explicit nil marker, never an empty string standing in for
// "deliberately empty". Rows are neither reordered, dropped nor added.
func (ls *LabelStore) Export(series *schema.Series) schema.Dataset {
	columns := make([]string, 0, len(series.Columns)+1)
	columns = append(columns, series.Columns...)
	columns = append(columns, schema.LabelColumn)

	rows := make([]schema.DatasetRow, 0, len(series.Records))
	for _, r := range series.Records {
		rows = append(rows, schema.DatasetRow{
			Index:     r.Index,
			Timestamp: r.Timestamp,
			Value:     r.Value,
			Cells:     r.Raw,
			Label:     r.Label,
		})
	}
	return schema.Dataset{Columns: columns, Rows: rows}
}
