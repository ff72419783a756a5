// Package dirserver exposes directory listing as an MCP tool over stdio.
package dirserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Run starts the directory MCP server over stdio.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string) error {
	return newServer(version).Run(ctx, &mcp.StdioTransport{})
}

func newServer(version string) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "choose",
			Version: version,
		},
		nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "read_dir",
		Description: "List the entries of a directory. Returns each entry's name and kind (file, dir, symlink or other). Entry order is not guaranteed. Fails if the path does not exist or is not a directory.",
	}, handleReadDir)

	return server
}
