package core

import (
	"testing"

	"github.com/fweigt/tslabel/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelStoreLabelsOrderAndDedupe(t *testing.T) {
	store := NewLabelStore([]schema.LabelValue{"ok", "degraded", "ok", "down"})
	assert.Equal(t, []schema.LabelValue{"ok", "degraded", "down"}, store.Labels())
}

func TestLabelStoreApplyUnknownLabel(t *testing.T) {
	series := hourlySeries(t, "2024-01-15T00:00:00Z", 3)
	store := NewLabelStore(schema.DefaultLabelSet())

	err := store.Apply(series, []int{0, 1}, "Bogus")

	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, schema.UnknownLabel, verr.Kind)
	assert.Equal(t, schema.LabelValue("Bogus"), verr.Label)

	// Nothing may change on a rejected label.
	for _, r := range series.Records {
		assert.Nil(t, r.Label)
	}
}

func TestLabelStoreApplyEmptySelection(t *testing.T) {
	series := hourlySeries(t, "2024-01-15T00:00:00Z", 3)
	store := NewLabelStore(schema.DefaultLabelSet())

	require.NoError(t, store.Apply(series, nil, schema.NormalLabel))
	for _, r := range series.Records {
		assert.Nil(t, r.Label)
	}
}

func TestLabelStoreApplyIdempotent(t *testing.T) {
	series := hourlySeries(t, "2024-01-15T00:00:00Z", 3)
	store := NewLabelStore(schema.DefaultLabelSet())

	require.NoError(t, store.Apply(series, []int{1}, schema.WarningLabel))
	require.NoError(t, store.Apply(series, []int{1}, schema.WarningLabel))

	require.NotNil(t, series.Records[1].Label)
	assert.Equal(t, schema.WarningLabel, *series.Records[1].Label)
	assert.Nil(t, series.Records[0].Label)
	assert.Nil(t, series.Records[2].Label)
}

func TestLabelStoreApplyLastWriteWins(t *testing.T) {
	series := hourlySeries(t, "2024-01-15T00:00:00Z", 3)
	store := NewLabelStore(schema.DefaultLabelSet())

	require.NoError(t, store.Apply(series, []int{0, 1, 2}, schema.NormalLabel))
	require.NoError(t, store.Apply(series, []int{1}, schema.ErrorLabel))

	assert.Equal(t, schema.NormalLabel, *series.Records[0].Label)
	assert.Equal(t, schema.ErrorLabel, *series.Records[1].Label)
	assert.Equal(t, schema.NormalLabel, *series.Records[2].Label)
}

func TestLabelStoreExport(t *testing.T) {
	table := &schema.Table{
		Columns: []string{"timestamp", "value", "sensor"},
		Rows: [][]string{
			{"2024-01-15T08:00:00Z", "1.0", "a"},
			{"2024-01-15T09:00:00Z", "2.0", "b"},
		},
	}
	series, _, err := Validate(table, "timestamp", "value")
	require.NoError(t, err)

	store := NewLabelStore(schema.DefaultLabelSet())
	require.NoError(t, store.Apply(series, []int{1}, schema.ErrorLabel))

	ds := store.Export(series)
	assert.Equal(t, []string{"timestamp", "value", "sensor", "label"}, ds.Columns)
	require.Len(t, ds.Rows, 2)

	assert.Nil(t, ds.Rows[0].Label)
	require.NotNil(t, ds.Rows[1].Label)
	assert.Equal(t, schema.ErrorLabel, *ds.Rows[1].Label)

	// Original cells survive untouched.
	assert.Equal(t, []string{"2024-01-15T08:00:00Z", "1.0", "a"}, ds.Rows[0].Cells)
	assert.Equal(t, []string{"2024-01-15T09:00:00Z", "2.0", "b"}, ds.Rows[1].Cells)
}
