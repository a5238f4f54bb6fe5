package server

import (
	"github.com/giantswarm/bicep-testing/internal/evaluator"
)

// ServerContext holds shared dependencies for MCP tool handlers.
type ServerContext struct {
	Evaluator   evaluator.Client
	TestDir     string
	LibraryRoot string
	OutputDir   string
	Workers     int
}
