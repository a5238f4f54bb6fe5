package evaluator

import "time"

// clientConfig holds configuration for a CLI evaluator client.
type clientConfig struct {
	command string
	args    []string
	timeout time.Duration
}

// Option is a functional option for configuring a CLI evaluator client.
type Option func(*clientConfig)

// WithCommand sets the evaluator binary and its arguments.
func WithCommand(command string, args ...string) Option {
	return func(c *clientConfig) {
		c.command = command
		c.args = args
	}
}

// WithTimeout sets a per-invocation timeout. Zero means no timeout; a hung
// evaluator then blocks its worker indefinitely.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = d
	}
}
