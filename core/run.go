package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/fweigt/tslabel/internal/contract"
	"github.com/fweigt/tslabel/internal/outwriter"
	"github.com/fweigt/tslabel/internal/tabio"
	"github.com/fweigt/tslabel/schema"
)

// newEngine builds an engine from the validated config.
func newEngine(cfg *contract.Config) *Engine {
	return NewEngine(EngineOptions{
		TimestampColumn: cfg.TimestampColumn,
		ValueColumn:     cfg.ValueColumn,
		WindowDuration:  cfg.WindowDuration,
		Labels:          cfg.Labels,
	})
}

// loadEngine reads the configured dataset and loads it into a fresh engine.
func loadEngine(cfg *contract.Config) (*Engine, error) {
	table, err := tabio.ReadTable(cfg.InputFile)
	if err != nil {
		return nil, err
	}
	engine := newEngine(cfg)
	if _, err := engine.Load(table); err != nil {
		return nil, err
	}
	if engine.Dropped() > 0 {
		contract.LogWarn(fmt.Sprintf("%d rows could not be parsed and were dropped", engine.Dropped()), nil)
	}
	return engine, nil
}

// mergeSession replays the session's persisted assignments onto the engine.
func mergeSession(engine *Engine, cfg *contract.Config, store contract.SessionStore) error {
	assignments, err := store.LoadAssignments(cfg.SessionKey)
	if err != nil {
		return fmt.Errorf("cannot load session %q: %w", cfg.SessionKey, err)
	}
	skipped := engine.ApplyAssignments(assignments)
	for _, a := range skipped {
		contract.LogWarn(fmt.Sprintf("stored label %q for row %d is outside the configured label set; skipped", a.Label, a.RowIndex), nil)
	}
	return nil
}

// GetValidationResult validates the configured dataset and summarizes it.
func GetValidationResult(cfg *contract.Config) (*schema.ValidationSummary, error) {
	table, err := tabio.ReadTable(cfg.InputFile)
	if err != nil {
		return nil, err
	}
	series, dropped, err := Validate(table, cfg.TimestampColumn, cfg.ValueColumn)
	if err != nil {
		return nil, err
	}
	return &schema.ValidationSummary{
		TotalRows:   len(table.Rows),
		KeptRows:    len(series.Records),
		DroppedRows: dropped,
		MinTime:     series.MinTime(),
		MaxTime:     series.MaxTime(),
		Columns:     series.Columns,
	}, nil
}

// ExecuteValidate validates the dataset and reports the summary.
func ExecuteValidate(cfg *contract.Config) error {
	summary, err := GetValidationResult(cfg)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteValidation(summary, cfg)
}

// GetViewResult loads the dataset, merges the session and returns the current
// view, advancing the window first when a candidate start is configured.
func GetViewResult(cfg *contract.Config, store contract.SessionStore) (*schema.View, error) {
	engine, err := loadEngine(cfg)
	if err != nil {
		return nil, err
	}
	if err := mergeSession(engine, cfg, store); err != nil {
		return nil, err
	}
	if !cfg.Start.IsZero() {
		engine.Advance(cfg.Start)
	}
	view := engine.CurrentView()
	return &view, nil
}

// ExecuteView renders the current window of the dataset.
func ExecuteView(cfg *contract.Config, store contract.SessionStore) error {
	view, err := GetViewResult(cfg, store)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteView(view, cfg)
}

// GetLabelResult applies the configured label to the configured range and
// persists the assignments, returning how many records were labeled.
func GetLabelResult(cfg *contract.Config, store contract.SessionStore) (int, error) {
	if cfg.RangeLo.IsZero() || cfg.RangeHi.IsZero() {
		return 0, errors.New("--from and --to are required to label a selection")
	}
	if cfg.Label == "" {
		return 0, errors.New("--label is required to label a selection")
	}

	engine, err := loadEngine(cfg)
	if err != nil {
		return 0, err
	}
	if err := mergeSession(engine, cfg, store); err != nil {
		return 0, err
	}

	ids := ResolveRange(engine.Series(), cfg.RangeLo, cfg.RangeHi)
	if _, err := engine.LabelSelection(cfg.RangeLo, cfg.RangeHi, cfg.Label); err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	assignments := make([]schema.LabelAssignment, 0, len(ids))
	for _, id := range ids {
		assignments = append(assignments, schema.LabelAssignment{
			RowIndex:  id,
			Label:     cfg.Label,
			UpdatedAt: now,
		})
	}
	if err := store.SaveAssignments(cfg.SessionKey, assignments); err != nil {
		return 0, fmt.Errorf("cannot persist session %q: %w", cfg.SessionKey, err)
	}
	return len(ids), nil
}

// ExecuteLabel labels a selection and reports the outcome.
func ExecuteLabel(cfg *contract.Config, store contract.SessionStore) error {
	count, err := GetLabelResult(cfg, store)
	if err != nil {
		return err
	}
	if count == 0 {
		fmt.Printf("🏷️  No records fall inside [%s, %s]; nothing labeled.\n",
			cfg.RangeLo.Format(time.RFC3339), cfg.RangeHi.Format(time.RFC3339))
		return nil
	}
	fmt.Printf("🏷️  Assigned label %q to %d records in session %q.\n", cfg.Label, count, cfg.SessionKey)
	return nil
}

// GetExportResult loads the dataset, merges the session and assembles the
// labeled export.
func GetExportResult(cfg *contract.Config, store contract.SessionStore) (*schema.Dataset, error) {
	engine, err := loadEngine(cfg)
	if err != nil {
		return nil, err
	}
	if err := mergeSession(engine, cfg, store); err != nil {
		return nil, err
	}
	dataset := engine.Export()
	return &dataset, nil
}

// ExecuteExport writes the labeled dataset in the configured output format.
func ExecuteExport(cfg *contract.Config, store contract.SessionStore) error {
	dataset, err := GetExportResult(cfg, store)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteDataset(dataset, cfg)
}
