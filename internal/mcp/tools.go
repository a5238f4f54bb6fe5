package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/bicep-testing/internal/server"
)

// RegisterTools registers all MCP tools with the server.
func RegisterTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// list_tests
	listTool := mcp.NewTool("list_tests",
		mcp.WithDescription("List discovered bicep test spec files with descriptions and case counts"),
		mcp.WithString("test_dir",
			mcp.Description("Test directory to search (overrides server default)"),
		),
	)
	s.AddTool(listTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListTests(ctx, request, sc)
	})

	// run_tests
	runTool := mcp.NewTool("run_tests",
		mcp.WithDescription("Run all bicep test spec files under a directory and return the aggregated results"),
		mcp.WithString("test_dir",
			mcp.Description("Test directory to search (overrides server default)"),
		),
		mcp.WithBoolean("parallel",
			mcp.Description("Distribute spec files across a worker pool"),
		),
		mcp.WithNumber("workers",
			mcp.Description("Worker pool size (default: available hardware parallelism)"),
		),
	)
	s.AddTool(runTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleRunTests(ctx, request, sc)
	})

	// validate_spec
	validateTool := mcp.NewTool("validate_spec",
		mcp.WithDescription("Validate a bicep test spec file against the schema without running it"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to the spec file to validate"),
		),
	)
	s.AddTool(validateTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleValidateSpec(ctx, request, sc)
	})

	return nil
}
