package core

import (
	"testing"
	"time"

	"github.com/fweigt/tslabel/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineDefaults(t *testing.T) {
	engine := NewEngine(EngineOptions{})
	assert.False(t, engine.Loaded())
	assert.Equal(t, schema.DefaultLabelSet(), engine.Labels())
}

func TestEngineBeforeLoad(t *testing.T) {
	engine := NewEngine(EngineOptions{})

	assert.Equal(t, schema.View{}, engine.CurrentView())
	assert.Equal(t, schema.Window{}, engine.Advance(mustTime(t, "2024-01-15T08:00:00Z")))
	assert.Equal(t, schema.Dataset{}, engine.Export())

	_, err := engine.LabelSelection(
		mustTime(t, "2024-01-15T08:00:00Z"),
		mustTime(t, "2024-01-15T09:00:00Z"),
		schema.NormalLabel,
	)
	require.ErrorIs(t, err, ErrNotLoaded)

	assignments := []schema.LabelAssignment{{RowIndex: 0, Label: schema.NormalLabel}}
	assert.Equal(t, assignments, engine.ApplyAssignments(assignments))
}

func TestEngineLoadAndValidationSummary(t *testing.T) {
	table := &schema.Table{
		Columns: []string{"timestamp", "value"},
		Rows: [][]string{
			{"2024-01-15T08:00:00Z", "1.0"},
			{"broken", "2.0"},
			{"2024-01-15T09:00:00Z", "oops"},
			{"2024-01-15T10:00:00Z", "3.0"},
			{"2024-01-15T11:00:00Z", "4.0"},
		},
	}
	engine := NewEngine(EngineOptions{})

	series, err := engine.Load(table)
	require.NoError(t, err)
	assert.True(t, engine.Loaded())
	assert.Equal(t, 2, engine.Dropped())
	assert.Len(t, series.Records, 3)
}

func TestEngineLoadFailureKeepsPreviousDataset(t *testing.T) {
	engine := NewEngine(EngineOptions{})
	good := &schema.Table{
		Columns: []string{"timestamp", "value"},
		Rows:    [][]string{{"2024-01-15T08:00:00Z", "1.0"}},
	}
	_, err := engine.Load(good)
	require.NoError(t, err)

	bad := &schema.Table{Columns: []string{"wrong", "value"}}
	_, err = engine.Load(bad)
	require.Error(t, err)

	// The previously loaded series must survive a failed reload.
	assert.True(t, engine.Loaded())
	assert.Len(t, engine.Series().Records, 1)
}

func TestEngineCurrentViewInclusiveEnd(t *testing.T) {
	table := &schema.Table{
		Columns: []string{"timestamp", "value"},
		Rows: [][]string{
			{"2024-01-15T08:00:00Z", "1"},
			{"2024-01-15T09:00:00Z", "2"},
			{"2024-01-15T10:00:00Z", "3"}, // sits exactly on the window end
			{"2024-01-15T11:00:00Z", "4"},
		},
	}
	engine := NewEngine(EngineOptions{WindowDuration: 2 * time.Hour})
	_, err := engine.Load(table)
	require.NoError(t, err)

	view := engine.CurrentView()
	require.Len(t, view.Records, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{view.Records[0].Index, view.Records[1].Index, view.Records[2].Index})
}

func TestEngineDefaultWindowSkipsLateRecords(t *testing.T) {
	table := &schema.Table{
		Columns: []string{"timestamp", "value"},
		Rows: [][]string{
			{"2024-01-15T09:00:00Z", "1.0"},
			{"2024-01-15T09:30:00Z", "2.0"},
			{"2024-01-15T13:00:00Z", "3.0"},
		},
	}
	engine := NewEngine(EngineOptions{}) // 2h default window
	_, err := engine.Load(table)
	require.NoError(t, err)

	view := engine.CurrentView()
	require.Len(t, view.Records, 2)
	assert.Equal(t, 1.0, view.Records[0].Value)
	assert.Equal(t, 2.0, view.Records[1].Value)
}

func TestEngineAdvanceMovesView(t *testing.T) {
	table := &schema.Table{
		Columns: []string{"timestamp", "value"},
		Rows: [][]string{
			{"2024-01-15T08:00:00Z", "1"},
			{"2024-01-15T09:00:00Z", "2"},
			{"2024-01-15T10:00:00Z", "3"},
			{"2024-01-15T11:00:00Z", "4"},
			{"2024-01-15T12:00:00Z", "5"},
		},
	}
	engine := NewEngine(EngineOptions{WindowDuration: 2 * time.Hour})
	_, err := engine.Load(table)
	require.NoError(t, err)

	w := engine.Advance(mustTime(t, "2024-01-15T10:00:00Z"))
	assert.Equal(t, mustTime(t, "2024-01-15T10:00:00Z"), w.Start)

	view := engine.CurrentView()
	require.Len(t, view.Records, 3)
	assert.Equal(t, 2, view.Records[0].Index)
	assert.Equal(t, 4, view.Records[2].Index)
}

func TestEngineLabelSelection(t *testing.T) {
	table := &schema.Table{
		Columns: []string{"timestamp", "value"},
		Rows: [][]string{
			{"2024-01-15T08:00:00Z", "1"},
			{"2024-01-15T09:00:00Z", "2"},
			{"2024-01-15T10:00:00Z", "3"},
		},
	}
	engine := NewEngine(EngineOptions{})
	_, err := engine.Load(table)
	require.NoError(t, err)

	series, err := engine.LabelSelection(
		mustTime(t, "2024-01-15T08:00:00Z"),
		mustTime(t, "2024-01-15T09:00:00Z"),
		schema.WarningLabel,
	)
	require.NoError(t, err)

	require.NotNil(t, series.Records[0].Label)
	require.NotNil(t, series.Records[1].Label)
	assert.Nil(t, series.Records[2].Label)
}

func TestEngineLabelSelectionUnknownLabel(t *testing.T) {
	table := &schema.Table{
		Columns: []string{"timestamp", "value"},
		Rows:    [][]string{{"2024-01-15T08:00:00Z", "1"}},
	}
	engine := NewEngine(EngineOptions{Labels: []schema.LabelValue{"ok", "down"}})
	_, err := engine.Load(table)
	require.NoError(t, err)

	_, err = engine.LabelSelection(engine.Series().MinTime(), engine.Series().MaxTime(), "Normal")

	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, schema.UnknownLabel, verr.Kind)
	assert.Nil(t, engine.Series().Records[0].Label)
}

func TestEngineApplyAssignments(t *testing.T) {
	table := &schema.Table{
		Columns: []string{"timestamp", "value"},
		Rows: [][]string{
			{"2024-01-15T08:00:00Z", "1"},
			{"2024-01-15T09:00:00Z", "2"},
		},
	}
	engine := NewEngine(EngineOptions{})
	_, err := engine.Load(table)
	require.NoError(t, err)

	skipped := engine.ApplyAssignments([]schema.LabelAssignment{
		{RowIndex: 0, Label: schema.NormalLabel},
		{RowIndex: 1, Label: "Retired"}, // no longer in the configured set
	})

	require.Len(t, skipped, 1)
	assert.Equal(t, schema.LabelValue("Retired"), skipped[0].Label)
	require.NotNil(t, engine.Series().Records[0].Label)
	assert.Nil(t, engine.Series().Records[1].Label)
}

func TestEngineExportNullLabels(t *testing.T) {
	table := &schema.Table{
		Columns: []string{"timestamp", "value", "site"},
		Rows: [][]string{
			{"2024-01-15T08:00:00Z", "1", "north"},
			{"2024-01-15T09:00:00Z", "2", "south"},
		},
	}
	engine := NewEngine(EngineOptions{})
	_, err := engine.Load(table)
	require.NoError(t, err)

	_, err = engine.LabelSelection(
		mustTime(t, "2024-01-15T09:00:00Z"),
		mustTime(t, "2024-01-15T09:00:00Z"),
		schema.ErrorLabel,
	)
	require.NoError(t, err)

	ds := engine.Export()
	assert.Equal(t, []string{"timestamp", "value", "site", "label"}, ds.Columns)
	assert.Nil(t, ds.Rows[0].Label)
	require.NotNil(t, ds.Rows[1].Label)
	assert.Equal(t, schema.ErrorLabel, *ds.Rows[1].Label)
}
