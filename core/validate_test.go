package core

import (
	"testing"
	"time"

	"github.com/fweigt/tslabel/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustTime parses an RFC3339 instant for test fixtures.
func mustTime(t *testing.T, raw string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, raw)
	require.NoError(t, err)
	return parsed
}

func TestValidateMissingTimestampColumn(t *testing.T) {
	table := &schema.Table{
		Columns: []string{"time", "value"},
		Rows:    [][]string{{"2024-01-15T08:00:00Z", "1.0"}},
	}

	_, _, err := Validate(table, "timestamp", "value")

	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, schema.MissingColumn, verr.Kind)
	assert.Equal(t, "timestamp", verr.Column)
}

func TestValidateMissingValueColumn(t *testing.T) {
	table := &schema.Table{
		Columns: []string{"timestamp", "reading"},
		Rows:    [][]string{{"2024-01-15T08:00:00Z", "1.0"}},
	}

	_, _, err := Validate(table, "timestamp", "value")

	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, schema.MissingColumn, verr.Kind)
	assert.Equal(t, "value", verr.Column)
}

func TestValidateAllTimestampsUnparseable(t *testing.T) {
	table := &schema.Table{
		Columns: []string{"timestamp", "value"},
		Rows: [][]string{
			{"yesterday", "1.0"},
			{"not-a-time", "2.0"},
			{"", "3.0"},
		},
	}

	_, dropped, err := Validate(table, "timestamp", "value")

	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, schema.UnparseableTimestamps, verr.Kind)
	assert.Equal(t, 3, dropped)
}

func TestValidateDropsBadRowsAndCounts(t *testing.T) {
	table := &schema.Table{
		Columns: []string{"timestamp", "value", "note"},
		Rows: [][]string{
			{"2024-01-15T08:00:00Z", "1.5", "ok"},
			{"garbage", "2.0", "bad timestamp"},
			{"2024-01-15T09:00:00Z", "n/a", "bad value"},
			{"2024-01-15T10:00:00Z", "3.25", "ok"},
			{"2024-01-15T11:00:00Z"}, // ragged, value cell missing
		},
	}

	series, dropped, err := Validate(table, "timestamp", "value")
	require.NoError(t, err)

	assert.Equal(t, 3, dropped)
	require.Len(t, series.Records, 2)
	assert.Equal(t, 0, series.Records[0].Index)
	assert.Equal(t, 3, series.Records[1].Index)
	assert.Equal(t, 1.5, series.Records[0].Value)
	assert.Equal(t, 3.25, series.Records[1].Value)
	assert.Equal(t, []string{"timestamp", "value", "note"}, series.Columns)
}

func TestValidateSortsByTimestampStable(t *testing.T) {
	table := &schema.Table{
		Columns: []string{"timestamp", "value"},
		Rows: [][]string{
			{"2024-01-15T10:00:00Z", "3"},
			{"2024-01-15T08:00:00Z", "1"},
			{"2024-01-15T08:00:00Z", "2"}, // same instant; original order must hold
		},
	}

	series, dropped, err := Validate(table, "timestamp", "value")
	require.NoError(t, err)
	require.Equal(t, 0, dropped)

	indices := []int{series.Records[0].Index, series.Records[1].Index, series.Records[2].Index}
	assert.Equal(t, []int{1, 2, 0}, indices)
	assert.Equal(t, mustTime(t, "2024-01-15T08:00:00Z"), series.MinTime())
	assert.Equal(t, mustTime(t, "2024-01-15T10:00:00Z"), series.MaxTime())
}

func TestValidateEmptyDataset(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
	}{
		{name: "no rows", rows: nil},
		{
			name: "values all unparseable",
			rows: [][]string{
				{"2024-01-15T08:00:00Z", "x"},
				{"2024-01-15T09:00:00Z", ""},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &schema.Table{Columns: []string{"timestamp", "value"}, Rows: tt.rows}

			_, _, err := Validate(table, "timestamp", "value")

			var verr *schema.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, schema.EmptyDataset, verr.Kind)
		})
	}
}

func TestValidateDoesNotModifyInput(t *testing.T) {
	rows := [][]string{
		{"2024-01-15T09:00:00Z", "2"},
		{"2024-01-15T08:00:00Z", "1"},
	}
	table := &schema.Table{Columns: []string{"timestamp", "value"}, Rows: rows}

	_, _, err := Validate(table, "timestamp", "value")
	require.NoError(t, err)

	assert.Equal(t, "2024-01-15T09:00:00Z", table.Rows[0][0])
	assert.Equal(t, "2024-01-15T08:00:00Z", table.Rows[1][0])
}
