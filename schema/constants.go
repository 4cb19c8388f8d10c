package schema

import "time"

// Custom string types for type safety.
type (
	// LabelValue represents a categorical label assigned to records.
	LabelValue string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for session storage.
	DatabaseBackend string

	// ErrorKind represents the kind of a recoverable validation error.
	ErrorKind string
)

// Default label values. The active set is a configuration parameter; these
// are only the defaults.
const (
	NormalLabel  LabelValue = "Normal"
	WarningLabel LabelValue = "Warning"
	ErrorLabel   LabelValue = "Error"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All session backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All validation error kinds.
const (
	MissingColumn         ErrorKind = "missing_column"
	UnparseableTimestamps ErrorKind = "unparseable_timestamps"
	UnknownLabel          ErrorKind = "unknown_label"
	EmptyDataset          ErrorKind = "empty_dataset"
)

// Default configuration values.
const (
	DefaultWindowDuration  = 2 * time.Hour
	DefaultTimestampColumn = "timestamp"
	DefaultValueColumn     = "value"
	LabelColumn            = "label"
)

// DefaultLabelSet returns the default enumerated label set.
func DefaultLabelSet() []LabelValue {
	return []LabelValue{NormalLabel, WarningLabel, ErrorLabel}
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidSessionBackends lists all valid session backends.
var ValidSessionBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
