// Package testutil provides shared test helpers.
package testutil

import (
	"context"
	"sync"
)

// MockEvaluator is a configurable mock for evaluator.Client used across test
// packages. It is safe for concurrent use so parallel runner tests can share
// one instance.
type MockEvaluator struct {
	// Responses maps scripts to canned outputs.
	Responses map[string]string

	// DefaultResponse is returned when no matching key is found in Responses.
	DefaultResponse string

	// Err, when set, is returned from every Evaluate call.
	Err error

	mu         sync.Mutex
	calls      int
	lastScript string
}

func (m *MockEvaluator) Evaluate(_ context.Context, script string) (string, error) {
	m.mu.Lock()
	m.calls++
	m.lastScript = script
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	if resp, ok := m.Responses[script]; ok {
		return resp, nil
	}
	return m.DefaultResponse, nil
}

func (m *MockEvaluator) CheckAvailable() error {
	return nil
}

// Calls returns the number of Evaluate invocations.
func (m *MockEvaluator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// LastScript returns the most recent script passed to Evaluate.
func (m *MockEvaluator) LastScript() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastScript
}
