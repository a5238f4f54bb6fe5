// Package config loads the optional project configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory when
// no explicit path is given.
const DefaultFileName = "bicep-testing.yaml"

// Config holds project-level defaults. Command-line flags override every
// field.
type Config struct {
	// TestDir is the root directory searched for spec files.
	TestDir string `yaml:"test_dir"`

	// LibraryRoot is the fixed root against which bicepFile references
	// resolve.
	LibraryRoot string `yaml:"library_root"`

	// OutputDir, when set, receives a machine-readable record of each run.
	OutputDir string `yaml:"output_dir"`

	// Workers bounds the parallel worker pool. Zero means hardware
	// parallelism.
	Workers int `yaml:"workers"`

	Evaluator Evaluator `yaml:"evaluator"`
}

// Evaluator configures how the external evaluator is invoked.
type Evaluator struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
	Timeout Duration `yaml:"timeout"`
}

// Duration wraps time.Duration so yaml values like "30s" parse.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}
	*d = Duration(n)
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TestDir:     "./tests",
		LibraryRoot: ".",
		Evaluator: Evaluator{
			Command: "bicep",
			Args:    []string{"repl"},
		},
	}
}

// Load reads the config file at path, or DefaultFileName in the working
// directory when path is empty. A missing default file is not an error and
// yields the built-in configuration; a missing explicit file is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults fills fields an explicit file left empty.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.TestDir == "" {
		cfg.TestDir = def.TestDir
	}
	if cfg.LibraryRoot == "" {
		cfg.LibraryRoot = def.LibraryRoot
	}
	if cfg.Evaluator.Command == "" {
		cfg.Evaluator.Command = def.Evaluator.Command
		if cfg.Evaluator.Args == nil {
			cfg.Evaluator.Args = def.Evaluator.Args
		}
	}
}
