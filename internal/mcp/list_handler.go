package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/bicep-testing/internal/server"
	"github.com/giantswarm/bicep-testing/internal/testspec"
)

func handleListTests(_ context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	testDir := sc.TestDir
	if dir, ok := args["test_dir"].(string); ok && dir != "" {
		testDir = dir
	}

	specs, err := testspec.Discover(testDir)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to discover test specs: %v", err)), nil
	}

	type specInfo struct {
		File        string `json:"file"`
		Path        string `json:"path"`
		Description string `json:"description,omitempty"`
		CaseCount   int    `json:"case_count"`
		Error       string `json:"error,omitempty"`
	}

	infos := make([]specInfo, 0, len(specs))
	for _, sp := range specs {
		info := specInfo{File: sp.Label, Path: sp.Path}

		data, err := os.ReadFile(sp.Path)
		if err != nil {
			info.Error = err.Error()
			infos = append(infos, info)
			continue
		}

		file, err := testspec.Parse(data, sp.Label)
		if err != nil {
			info.Error = err.Error()
			infos = append(infos, info)
			continue
		}

		info.Description = file.Description
		info.CaseCount = len(file.Cases)
		infos = append(infos, info)
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal spec list: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
