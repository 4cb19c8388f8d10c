package cmd

import (
	"context"

	"github.com/fweigt/tslabel/internal/mcp"
	"github.com/fweigt/tslabel/internal/sessiondb"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the tslabel MCP server",
	Long:  `Launch an MCP server that allows AI agents to validate, window, label and export time-series datasets via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Suppress the normal header logs when running in MCP mode
		// to avoid polluting stdio which is used for the protocol.
		return mcpSetup(cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(context.Background(), cfg, sessiondb.GetStore())
	},
}

// mcpSetup loads configuration without requiring a positional dataset path;
// the MCP tools receive the dataset path per request instead.
func mcpSetup(cmd *cobra.Command, _ []string) error {
	return sharedSetup(cmd, nil)
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
