// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/fweigt/tslabel/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the tslabel MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, store contract.SessionStore) *server.MCPServer {
	s := server.NewMCPServer(
		"Time Series Labeling Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		store:   store,
	}

	// --- 1. Tool: validate_dataset ---
	s.AddTool(mcp.NewTool("validate_dataset",
		mcp.WithDescription("Validate a CSV time-series dataset and summarize how many rows are labelable."),
		mcp.WithString("csv_path", mcp.Description("Path to the CSV dataset."), mcp.Required()),
		mcp.WithString("timestamp_column", mcp.Description("Name of the timestamp column. Defaults to 'timestamp'.")),
		mcp.WithString("value_column", mcp.Description("Name of the value column. Defaults to 'value'.")),
	), h.handleValidateDataset)

	// --- 2. Tool: get_window ---
	s.AddTool(mcp.NewTool("get_window",
		mcp.WithDescription("Return the records inside the current visible time window of a dataset."),
		mcp.WithString("csv_path", mcp.Description("Path to the CSV dataset."), mcp.Required()),
		mcp.WithString("start", mcp.Description("Candidate window start (ISO8601); clamped to the series span.")),
		mcp.WithString("window", mcp.Description("Window duration (e.g. '2h', '30m'). Defaults to 2h.")),
		mcp.WithString("session", mcp.Description("Session key whose labels should be merged in.")),
	), h.handleGetWindow)

	// --- 3. Tool: label_range ---
	s.AddTool(mcp.NewTool("label_range",
		mcp.WithDescription("Assign a label to every record whose timestamp falls inside an inclusive time range."),
		mcp.WithString("csv_path", mcp.Description("Path to the CSV dataset."), mcp.Required()),
		mcp.WithString("from", mcp.Description("Inclusive lower bound of the selection (ISO8601)."), mcp.Required()),
		mcp.WithString("to", mcp.Description("Inclusive upper bound of the selection (ISO8601)."), mcp.Required()),
		mcp.WithString("label", mcp.Description("Label value; must be in the configured label set."), mcp.Required()),
		mcp.WithString("session", mcp.Description("Session key the assignments are persisted under.")),
	), h.handleLabelRange)

	// --- 4. Tool: export_dataset ---
	s.AddTool(mcp.NewTool("export_dataset",
		mcp.WithDescription("Export the labeled dataset: every original column plus the label column."),
		mcp.WithString("csv_path", mcp.Description("Path to the CSV dataset."), mcp.Required()),
		mcp.WithString("session", mcp.Description("Session key whose labels should be merged in.")),
	), h.handleExportDataset)

	return s
}

// StartMCPServer starts the MCP server over stdio and blocks until the
// client hangs up.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, store contract.SessionStore) error {
	s := NewMCPServer(baseCfg, store)
	return server.ServeStdio(s)
}
