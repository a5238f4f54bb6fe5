package evaluator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIClientEvaluateEchoesStdin(t *testing.T) {
	// cat stands in for the evaluator: it echoes the script back.
	c := NewCLIClient(WithCommand("cat"))

	out, err := c.Evaluate(context.Background(), "length([1,2,3])")
	require.NoError(t, err)
	assert.Equal(t, "length([1,2,3])", out)
}

func TestCLIClientNonZeroExitIsNotAnError(t *testing.T) {
	// The evaluator exits non-zero when printing diagnostics; the output is
	// still the comparison input.
	c := NewCLIClient(WithCommand("sh", "-c", "cat; echo 'warning: something' 1>&2; exit 1"))

	out, err := c.Evaluate(context.Background(), "'ab'")
	require.NoError(t, err)
	assert.Contains(t, out, "'ab'")
	assert.Contains(t, out, "warning: something")
}

func TestCLIClientMissingBinary(t *testing.T) {
	c := NewCLIClient(WithCommand("definitely-not-a-real-evaluator-binary"))

	_, err := c.Evaluate(context.Background(), "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run evaluator")
}

func TestCLIClientTimeout(t *testing.T) {
	c := NewCLIClient(
		WithCommand("sleep", "10"),
		WithTimeout(50*time.Millisecond),
	)

	start := time.Now()
	_, err := c.Evaluate(context.Background(), "")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Contains(t, err.Error(), "did not complete")
}

func TestCLIClientCheckAvailable(t *testing.T) {
	assert.NoError(t, NewCLIClient(WithCommand("cat")).CheckAvailable())
	assert.Error(t, NewCLIClient(WithCommand("definitely-not-a-real-evaluator-binary")).CheckAvailable())
}

func TestCLIClientDefaults(t *testing.T) {
	c := NewCLIClient()
	assert.Equal(t, "bicep", c.command)
	assert.Equal(t, []string{"repl"}, c.args)
}
