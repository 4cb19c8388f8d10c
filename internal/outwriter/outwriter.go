// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/fweigt/tslabel/internal/contract"
	"github.com/fweigt/tslabel/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the
// orchestration logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteValidation prints a validation summary using the configured output format.
func (ow *OutWriter) WriteValidation(summary *schema.ValidationSummary, cfg *contract.Config) error {
	return PrintValidationSummary(summary, cfg)
}

// WriteView prints the current windowed view using the configured output format.
func (ow *OutWriter) WriteView(view *schema.View, cfg *contract.Config) error {
	return PrintViewResults(view, cfg)
}

// WriteDataset prints the labeled dataset using the configured output format.
func (ow *OutWriter) WriteDataset(dataset *schema.Dataset, cfg *contract.Config) error {
	return PrintDatasetResults(dataset, cfg)
}
