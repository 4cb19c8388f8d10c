package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fweigt/tslabel/core"
	"github.com/fweigt/tslabel/internal/contract"
	"github.com/fweigt/tslabel/internal/outwriter"
	"github.com/fweigt/tslabel/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	store   contract.SessionStore
}

// requestConfig clones the base config and applies the request arguments
// shared by every tool.
func (h *toolHandler) requestConfig(request mcp.CallToolRequest) *contract.Config {
	cfg := h.baseCfg.Clone()
	cfg.InputFile = request.GetString("csv_path", "")
	if c := request.GetString("timestamp_column", ""); c != "" {
		cfg.TimestampColumn = c
	}
	if c := request.GetString("value_column", ""); c != "" {
		cfg.ValueColumn = c
	}
	if s := request.GetString("session", ""); s != "" {
		cfg.SessionKey = s
	}
	return cfg
}

func (h *toolHandler) handleValidateDataset(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)
	if cfg.InputFile == "" {
		return mcp.NewToolResultError("csv_path is required"), nil
	}

	summary, err := core.GetValidationResult(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("validation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(summary, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetWindow(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)
	if cfg.InputFile == "" {
		return mcp.NewToolResultError("csv_path is required"), nil
	}
	if w := request.GetString("window", ""); w != "" {
		dur, err := time.ParseDuration(w)
		if err != nil || dur <= 0 {
			return mcp.NewToolResultError(fmt.Sprintf("invalid window duration %q", w)), nil
		}
		cfg.WindowDuration = dur
	}
	if s := request.GetString("start", ""); s != "" {
		start, err := schema.ParseTimestamp(s)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid start: %v", err)), nil
		}
		cfg.Start = start
	}

	view, err := core.GetViewResult(cfg, h.store)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("view failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(view, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleLabelRange(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)
	if cfg.InputFile == "" {
		return mcp.NewToolResultError("csv_path is required"), nil
	}

	var err error
	if cfg.RangeLo, err = schema.ParseTimestamp(request.GetString("from", "")); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid from: %v", err)), nil
	}
	if cfg.RangeHi, err = schema.ParseTimestamp(request.GetString("to", "")); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid to: %v", err)), nil
	}
	cfg.Label = schema.LabelValue(request.GetString("label", ""))

	count, err := core.GetLabelResult(cfg, h.store)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("labeling failed: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Assigned label %q to %d records in session %q.", cfg.Label, count, cfg.SessionKey)), nil
}

func (h *toolHandler) handleExportDataset(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)
	if cfg.InputFile == "" {
		return mcp.NewToolResultError("csv_path is required"), nil
	}

	dataset, err := core.GetExportResult(cfg, h.store)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("export failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(outwriter.DatasetToMaps(dataset), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
