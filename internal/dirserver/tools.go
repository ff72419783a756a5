package dirserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/moasq/choose/internal/fsutil"
)

// readDirInput is the input for the read_dir tool.
type readDirInput struct {
	Path string `json:"path" jsonschema:"Directory to list; relative paths resolve against the server working directory"`
}

type entryOutput struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

type readDirOutput struct {
	Entries []entryOutput `json:"entries"`
}

func handleReadDir(ctx context.Context, req *mcp.CallToolRequest, input readDirInput) (*mcp.CallToolResult, readDirOutput, error) {
	if input.Path == "" {
		return nil, readDirOutput{}, fmt.Errorf("path is required")
	}

	out := readDirOutput{Entries: []entryOutput{}}
	for e, err := range fsutil.ReadDir(input.Path) {
		if err != nil {
			return nil, readDirOutput{}, err
		}
		if err := ctx.Err(); err != nil {
			return nil, readDirOutput{}, err
		}
		out.Entries = append(out.Entries, entryOutput{Name: e.Name, Kind: e.Kind()})
	}
	return nil, out, nil
}
