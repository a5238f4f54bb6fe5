package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/bicep-testing/internal/runner"
	"github.com/giantswarm/bicep-testing/internal/server"
	"github.com/giantswarm/bicep-testing/internal/testspec"
)

func handleRunTests(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	testDir := sc.TestDir
	if dir, ok := args["test_dir"].(string); ok && dir != "" {
		testDir = dir
	}

	if sc.Evaluator == nil {
		return mcp.NewToolResultError("evaluator is not configured"), nil
	}
	if err := sc.Evaluator.CheckAvailable(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("evaluator unavailable: %v", err)), nil
	}

	specs, err := testspec.Discover(testDir)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to discover test specs: %v", err)), nil
	}
	if len(specs) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("no test spec files found under %s", testDir)), nil
	}

	opts := runner.RunOptions{Workers: sc.Workers}
	if parallel, ok := args["parallel"].(bool); ok {
		opts.Parallel = parallel
	}
	if workers, ok := args["workers"].(float64); ok && workers > 0 {
		opts.Workers = int(workers)
	}

	r := runner.NewRunner(sc.Evaluator, sc.LibraryRoot)
	results := r.Run(ctx, specs, opts)
	sum := runner.Summarize(results)

	slog.Info("test run complete", "total", sum.Total, "passed", sum.Passed, "failed", sum.Failed)

	payload := map[string]interface{}{
		"summary": sum,
		"cases":   results,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
