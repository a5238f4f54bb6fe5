package evaluator

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// CLIClient implements Client by piping scripts to the bicep CLI. Each
// Evaluate call spawns one subprocess: the evaluator is stateless per
// invocation, which keeps test cases isolated from each other.
type CLIClient struct {
	command string
	args    []string
	timeout time.Duration
}

// NewCLIClient creates a client for the bicep CLI evaluator.
func NewCLIClient(opts ...Option) *CLIClient {
	cfg := &clientConfig{
		command: "bicep",
		args:    []string{"repl"},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &CLIClient{
		command: cfg.command,
		args:    cfg.args,
		timeout: cfg.timeout,
	}
}

// Evaluate runs one evaluator invocation with script on standard input and
// returns the combined output. Diagnostic text on the non-zero-exit path is
// expected and left for the normalizer to strip.
func (c *CLIClient) Evaluate(ctx context.Context, script string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.command, c.args...)
	cmd.Stdin = strings.NewReader(script)

	out, err := cmd.CombinedOutput()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", fmt.Errorf("evaluator did not complete: %w", ctxErr)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The evaluator exits non-zero when the script produced
			// diagnostics; its output is still the result to compare.
			return string(out), nil
		}
		return "", fmt.Errorf("failed to run evaluator %s: %w", c.command, err)
	}

	return string(out), nil
}

// CheckAvailable verifies the evaluator binary is on PATH (or at the
// configured location).
func (c *CLIClient) CheckAvailable() error {
	if _, err := exec.LookPath(c.command); err != nil {
		return fmt.Errorf("bicep evaluator not found: %w", err)
	}
	return nil
}
