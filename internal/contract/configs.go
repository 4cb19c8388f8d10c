package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/fweigt/tslabel/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 1
	MaxPrecision     = 2
	DefaultSession   = "default"
)

// Config holds the runtime configuration for a labeling run.
// This struct remains the "final, validated" config.
type Config struct {
	InputFile       string
	TimestampColumn string
	ValueColumn     string
	WindowDuration  time.Duration
	Labels          []schema.LabelValue

	Start   time.Time // Candidate window start; zero keeps the initial window
	RangeLo time.Time // Selection lower bound for label application
	RangeHi time.Time // Selection upper bound for label application
	Label   schema.LabelValue

	SessionKey       string
	SessionBackend   schema.DatabaseBackend
	SessionDBConnect string // Please use env var as this is plaintext

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool
}

// Clone returns a copy of the config safe for per-request mutation.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Labels = make([]schema.LabelValue, len(c.Labels))
	copy(clone.Labels, c.Labels)
	return &clone
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputFileStr string

	TimestampColumn  string `mapstructure:"timestamp-column"`
	ValueColumn      string `mapstructure:"value-column"`
	Window           string `mapstructure:"window"`
	Labels           string `mapstructure:"labels"`
	Start            string `mapstructure:"start"`
	From             string `mapstructure:"from"`
	To               string `mapstructure:"to"`
	Label            string `mapstructure:"label"`
	Session          string `mapstructure:"session"`
	SessionBackend   string `mapstructure:"session-backend"`
	SessionDBConnect string `mapstructure:"session-db-connect"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Precision        int    `mapstructure:"precision"`
	Width            int    `mapstructure:"width"`
	Color            string `mapstructure:"color"`
}

// ProcessAndValidate turns raw input into the final validated config.
// It parses durations, label sets and instants, and normalizes enumerated
// values, returning the first problem it finds.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.InputFile = input.InputFileStr

	cfg.TimestampColumn = strings.TrimSpace(input.TimestampColumn)
	if cfg.TimestampColumn == "" {
		cfg.TimestampColumn = schema.DefaultTimestampColumn
	}
	cfg.ValueColumn = strings.TrimSpace(input.ValueColumn)
	if cfg.ValueColumn == "" {
		cfg.ValueColumn = schema.DefaultValueColumn
	}

	// Window duration
	cfg.WindowDuration = schema.DefaultWindowDuration
	if input.Window != "" {
		dur, err := time.ParseDuration(input.Window)
		if err != nil {
			return fmt.Errorf("invalid window duration %q: %w", input.Window, err)
		}
		if dur <= 0 {
			return fmt.Errorf("window duration must be positive, got %q", input.Window)
		}
		cfg.WindowDuration = dur
	}

	// Label set
	labels, err := ParseLabelSet(input.Labels)
	if err != nil {
		return err
	}
	cfg.Labels = labels

	// Instants
	if cfg.Start, err = parseOptionalInstant("start", input.Start); err != nil {
		return err
	}
	if cfg.RangeLo, err = parseOptionalInstant("from", input.From); err != nil {
		return err
	}
	if cfg.RangeHi, err = parseOptionalInstant("to", input.To); err != nil {
		return err
	}
	cfg.Label = schema.LabelValue(strings.TrimSpace(input.Label))

	// Session
	cfg.SessionKey = strings.TrimSpace(input.Session)
	if cfg.SessionKey == "" {
		cfg.SessionKey = DefaultSession
	}
	backend := schema.DatabaseBackend(strings.ToLower(strings.TrimSpace(input.SessionBackend)))
	if backend == "" {
		backend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidSessionBackends[backend]; !ok {
		return fmt.Errorf("invalid session backend %q: must be sqlite, mysql, postgresql, or none", input.SessionBackend)
	}
	if err := ValidateDatabaseConnectionString(backend, input.SessionDBConnect); err != nil {
		return err
	}
	cfg.SessionBackend = backend
	cfg.SessionDBConnect = input.SessionDBConnect

	// Output
	output := schema.OutputMode(strings.ToLower(strings.TrimSpace(input.Output)))
	if output == "" {
		output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q: must be text, csv, json, or parquet", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	cfg.Precision = input.Precision
	if cfg.Precision < DefaultPrecision {
		cfg.Precision = DefaultPrecision
	}
	if cfg.Precision > MaxPrecision {
		cfg.Precision = MaxPrecision
	}
	cfg.Width = input.Width
	cfg.UseColors = parseBoolish(input.Color, true)

	return nil
}

// ValidateDatabaseConnectionString checks that the connection string fits the
// chosen backend before any connection is attempted.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("session-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("session-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ParseLabelSet splits a comma-separated label list into the configured set,
// falling back to the default set when empty.
func ParseLabelSet(raw string) ([]schema.LabelValue, error) {
	if strings.TrimSpace(raw) == "" {
		return schema.DefaultLabelSet(), nil
	}
	var labels []schema.LabelValue
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		labels = append(labels, schema.LabelValue(part))
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("label set %q contains no usable values", raw)
	}
	return labels, nil
}

// parseOptionalInstant parses an optional flag value into an instant.
func parseOptionalInstant(name, raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, nil
	}
	t, err := schema.ParseTimestamp(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s value: %w", name, err)
	}
	return t, nil
}

// parseBoolish interprets yes/no style flag values.
func parseBoolish(raw string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return fallback
	}
}
