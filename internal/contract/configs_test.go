package contract

import (
	"testing"
	"time"

	"github.com/fweigt/tslabel/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	input := &ConfigRawInput{InputFileStr: "readings.csv"}

	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, "readings.csv", cfg.InputFile)
	assert.Equal(t, schema.DefaultTimestampColumn, cfg.TimestampColumn)
	assert.Equal(t, schema.DefaultValueColumn, cfg.ValueColumn)
	assert.Equal(t, schema.DefaultWindowDuration, cfg.WindowDuration)
	assert.Equal(t, schema.DefaultLabelSet(), cfg.Labels)
	assert.Equal(t, DefaultSession, cfg.SessionKey)
	assert.Equal(t, schema.SQLiteBackend, cfg.SessionBackend)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, DefaultPrecision, cfg.Precision)
	assert.True(t, cfg.UseColors)
	assert.True(t, cfg.Start.IsZero())
}

func TestProcessAndValidateWindow(t *testing.T) {
	cfg := &Config{}
	input := &ConfigRawInput{Window: "45m"}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, 45*time.Minute, cfg.WindowDuration)

	for _, bad := range []string{"soon", "-1h", "0s"} {
		t.Run(bad, func(t *testing.T) {
			assert.Error(t, ProcessAndValidate(&Config{}, &ConfigRawInput{Window: bad}))
		})
	}
}

func TestProcessAndValidateInstants(t *testing.T) {
	cfg := &Config{}
	input := &ConfigRawInput{
		Start: "2024-01-15T08:00:00Z",
		From:  "2024-01-15 09:00",
		To:    "2024-01-15",
	}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC), cfg.Start)
	assert.Equal(t, time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC), cfg.RangeLo)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), cfg.RangeHi)

	assert.Error(t, ProcessAndValidate(&Config{}, &ConfigRawInput{From: "whenever"}))
}

func TestProcessAndValidateEnums(t *testing.T) {
	assert.Error(t, ProcessAndValidate(&Config{}, &ConfigRawInput{Output: "xml"}))
	assert.Error(t, ProcessAndValidate(&Config{}, &ConfigRawInput{SessionBackend: "oracle"}))

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, &ConfigRawInput{Output: "JSON", SessionBackend: "None"}))
	assert.Equal(t, schema.JSONOut, cfg.Output)
	assert.Equal(t, schema.NoneBackend, cfg.SessionBackend)
}

func TestProcessAndValidatePrecisionClamped(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, &ConfigRawInput{Precision: 99}))
	assert.Equal(t, MaxPrecision, cfg.Precision)

	require.NoError(t, ProcessAndValidate(cfg, &ConfigRawInput{Precision: -5}))
	assert.Equal(t, DefaultPrecision, cfg.Precision)
}

func TestProcessAndValidateColorFlag(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"yes", true}, {"no", false}, {"1", true}, {"0", false},
		{"true", true}, {"false", false}, {"ON", true}, {"off", false},
		{"", true}, {"maybe", true}, // fallback
	}
	for _, tt := range tests {
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, &ConfigRawInput{Color: tt.raw}))
		assert.Equal(t, tt.want, cfg.UseColors, "color=%q", tt.raw)
	}
}

func TestParseLabelSet(t *testing.T) {
	labels, err := ParseLabelSet("")
	require.NoError(t, err)
	assert.Equal(t, schema.DefaultLabelSet(), labels)

	labels, err = ParseLabelSet("ok, degraded ,down")
	require.NoError(t, err)
	assert.Equal(t, []schema.LabelValue{"ok", "degraded", "down"}, labels)

	_, err = ParseLabelSet(", ,")
	assert.Error(t, err)
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.NoneBackend, ""))

	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@localhost"))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@tcp(localhost:3306)/tslabel"))

	assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost"))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost dbname=tslabel sslmode=disable"))
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{Labels: schema.DefaultLabelSet(), SessionKey: "triage"}
	clone := cfg.Clone()

	clone.Labels[0] = "mutated"
	clone.SessionKey = "other"

	assert.Equal(t, schema.NormalLabel, cfg.Labels[0])
	assert.Equal(t, "triage", cfg.SessionKey)
}

func TestGetPlainLabel(t *testing.T) {
	assert.Equal(t, UnlabeledMarker, GetPlainLabel(nil))

	label := schema.WarningLabel
	assert.Equal(t, "Warning", GetPlainLabel(&label))
}
