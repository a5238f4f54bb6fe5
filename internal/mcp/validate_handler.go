package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/bicep-testing/internal/server"
	"github.com/giantswarm/bicep-testing/internal/testspec"
)

func handleValidateSpec(_ context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read spec file: %v", err)), nil
	}

	label := strings.TrimSuffix(filepath.Base(path), testspec.FileSuffix)
	file, err := testspec.Parse(data, label)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("spec file is invalid: %v", err)), nil
	}

	var caseErrs []string
	for i, c := range file.Cases {
		if c.Err != nil {
			caseErrs = append(caseErrs, fmt.Sprintf("case %d (%s): %v", i+1, c.Name, c.Err))
		}
	}
	if len(caseErrs) > 0 {
		return mcp.NewToolResultError(fmt.Sprintf("spec file has invalid cases:\n%s", strings.Join(caseErrs, "\n"))), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("spec file is valid: %d case(s)", len(file.Cases))), nil
}
