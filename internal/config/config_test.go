package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "./tests", cfg.TestDir)
	assert.Equal(t, ".", cfg.LibraryRoot)
	assert.Equal(t, "bicep", cfg.Evaluator.Command)
	assert.Equal(t, []string{"repl"}, cfg.Evaluator.Args)
	assert.Zero(t, cfg.Evaluator.Timeout)
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	contents := `
test_dir: ./spec
library_root: ./lib
workers: 4
evaluator:
  command: /usr/local/bin/bicep
  args: ["repl", "--no-color"]
  timeout: 30s
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "./spec", cfg.TestDir)
	assert.Equal(t, "./lib", cfg.LibraryRoot)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "/usr/local/bin/bicep", cfg.Evaluator.Command)
	assert.Equal(t, []string{"repl", "--no-color"}, cfg.Evaluator.Args)
	assert.Equal(t, Duration(30*time.Second), cfg.Evaluator.Timeout)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 2\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "./tests", cfg.TestDir)
	assert.Equal(t, "bicep", cfg.Evaluator.Command)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMissingDefaultFileYieldsDefaults(t *testing.T) {
	// Run from a directory without a bicep-testing.yaml.
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("test_dir: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
