package tabio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTable(t *testing.T) {
	table, err := ParseTable(strings.NewReader("timestamp,value,note\n2024-01-15T08:00:00Z,1.0,ok\n2024-01-15T09:00:00Z,2.0,meh\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"timestamp", "value", "note"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"2024-01-15T08:00:00Z", "1.0", "ok"}, table.Rows[0])
}

func TestParseTableRaggedRowsSurvive(t *testing.T) {
	table, err := ParseTable(strings.NewReader("timestamp,value\n2024-01-15T08:00:00Z,1.0\n2024-01-15T09:00:00Z\n"))
	require.NoError(t, err)

	require.Len(t, table.Rows, 2)
	assert.Len(t, table.Rows[0], 2)
	assert.Len(t, table.Rows[1], 1) // validation decides what to do with it
}

func TestParseTableEmptyInput(t *testing.T) {
	_, err := ParseTable(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}

func TestParseTableHeaderOnly(t *testing.T) {
	table, err := ParseTable(strings.NewReader("timestamp,value\n"))
	require.NoError(t, err)
	assert.Empty(t, table.Rows)
}

func TestReadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readings.csv")
	require.NoError(t, os.WriteFile(path, []byte("timestamp,value\n2024-01-15,1\n"), 0o644))

	table, err := ReadTable(path)
	require.NoError(t, err)
	assert.Len(t, table.Rows, 1)
}

func TestReadTableMissingFile(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
