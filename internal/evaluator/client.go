// Package evaluator adapts the external bicep expression evaluator subprocess.
package evaluator

import "context"

// Client abstracts the expression evaluator. The core depends only on this
// contract, so any conforming evaluator implementation can be plugged in.
type Client interface {
	// Evaluate submits a script on the evaluator's standard input and returns
	// its combined standard output and standard error, raw. Normalization is
	// the caller's responsibility. A non-zero evaluator exit status is not an
	// error; only failing to start or communicate with the subprocess is.
	Evaluate(ctx context.Context, script string) (string, error)

	// CheckAvailable reports whether the evaluator can be invoked at all.
	// Used to fail fast before any test case executes.
	CheckAvailable() error
}
