package schema

import "fmt"

// ValidationError is the tagged, recoverable error surfaced by the labeling
// engine. The engine never aborts a session on one of these; internal state is
// left unchanged when one is returned.
type ValidationError struct {
	Kind   ErrorKind
	Column string     // Set for MissingColumn
	Label  LabelValue // Set for UnknownLabel
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	switch e.Kind {
	case MissingColumn:
		return fmt.Sprintf("required column %q is missing", e.Column)
	case UnparseableTimestamps:
		return "no timestamp could be parsed in the timestamp column"
	case UnknownLabel:
		return fmt.Sprintf("label %q is not in the configured label set", e.Label)
	case EmptyDataset:
		return "no labelable rows remain after validation"
	default:
		return fmt.Sprintf("validation error: %s", e.Kind)
	}
}

// NewMissingColumnError reports an absent required column.
func NewMissingColumnError(column string) *ValidationError {
	return &ValidationError{Kind: MissingColumn, Column: column}
}

// NewUnparseableTimestampsError reports that every row failed timestamp parsing.
func NewUnparseableTimestampsError() *ValidationError {
	return &ValidationError{Kind: UnparseableTimestamps}
}

// NewUnknownLabelError reports a label value outside the configured set.
func NewUnknownLabelError(label LabelValue) *ValidationError {
	return &ValidationError{Kind: UnknownLabel, Label: label}
}

// NewEmptyDatasetError reports a table with no valid rows left to label.
func NewEmptyDatasetError() *ValidationError {
	return &ValidationError{Kind: EmptyDataset}
}
