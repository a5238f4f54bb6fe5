package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/giantswarm/bicep-testing/internal/testspec"
)

func newListCmd() *cobra.Command {
	var testDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered test spec files",
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := testspec.Discover(testDir)
			if err != nil {
				return fmt.Errorf("failed to discover test specs: %w", err)
			}

			if len(specs) == 0 {
				fmt.Println("No test spec files found.")
				return nil
			}

			fmt.Printf("Discovered test spec files:\n\n")
			for _, sp := range specs {
				data, err := os.ReadFile(sp.Path)
				if err != nil {
					fmt.Printf("  - %s (error reading: %v)\n", sp.Path, err)
					continue
				}

				file, err := testspec.Parse(data, sp.Label)
				if err != nil {
					fmt.Printf("  - %s (error parsing: %v)\n", sp.Path, err)
					continue
				}

				fmt.Printf("  - %s\n", sp.Path)
				if file.Description != "" {
					fmt.Printf("    Description: %s\n", file.Description)
				}
				fmt.Printf("    Cases: %d\n\n", len(file.Cases))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&testDir, "test-dir", "./tests", "Directory searched recursively for spec files")

	return cmd
}
