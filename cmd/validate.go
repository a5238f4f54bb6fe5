package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/giantswarm/bicep-testing/internal/testspec"
)

func newValidateCmd() *cobra.Command {
	var testDir string

	cmd := &cobra.Command{
		Use:   "validate [spec files...]",
		Short: "Validate test spec files without running them",
		Long: `Check spec files against the schema and the parser's structural rules
(exactly one assertion per case, a resolvable input form). With no arguments,
validates every spec file under the test directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				specs, err := testspec.Discover(testDir)
				if err != nil {
					return &exitError{code: 2, err: err}
				}
				for _, sp := range specs {
					paths = append(paths, sp.Path)
				}
			}

			if len(paths) == 0 {
				return &exitError{code: 3, err: fmt.Errorf("no test spec files found under %s", testDir)}
			}

			invalid := 0
			for _, path := range paths {
				if err := validateSpecFile(path); err != nil {
					fmt.Printf("INVALID  %s\n         %v\n", path, err)
					invalid++
					continue
				}
				fmt.Printf("OK       %s\n", path)
			}

			if invalid > 0 {
				return &exitError{code: 1, err: fmt.Errorf("%d of %d spec files are invalid", invalid, len(paths))}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&testDir, "test-dir", "./tests", "Directory searched recursively for spec files")

	return cmd
}

func validateSpecFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	label := strings.TrimSuffix(filepath.Base(path), testspec.FileSuffix)
	file, err := testspec.Parse(data, label)
	if err != nil {
		return err
	}

	for i, c := range file.Cases {
		if c.Err != nil {
			return fmt.Errorf("case %d (%s): %w", i+1, c.Name, c.Err)
		}
	}
	return nil
}
