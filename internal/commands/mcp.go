package commands

import (
	"github.com/moasq/choose/internal/dirserver"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:    "mcp",
	Short:  "Run the directory MCP server over stdio",
	Long:   "Starts an MCP server over stdio exposing a read_dir tool. Prompts are not exposed: they need the terminal the transport occupies.",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dirserver.Run(cmd.Context(), Version)
	},
}
