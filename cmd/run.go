package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/giantswarm/bicep-testing/internal/config"
	"github.com/giantswarm/bicep-testing/internal/evaluator"
	"github.com/giantswarm/bicep-testing/internal/report"
	"github.com/giantswarm/bicep-testing/internal/runner"
	"github.com/giantswarm/bicep-testing/internal/testspec"
)

func newRunCmd() *cobra.Command {
	var (
		testDir      string
		libraryRoot  string
		evaluatorBin string
		outputDir    string
		parallel     bool
		workers      int
		quiet        bool
		timeout      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run all test spec files under the test directory",
		Long: `Discover .bicep-test.json files, evaluate each case through the bicep CLI,
and print a pass/fail report.

Exit codes: 0 all passed, 1 one or more failed, 2 environment error, 3 no
spec files discovered.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return &exitError{code: 2, err: err}
			}

			// Flags override the config file only when set.
			if cmd.Flags().Changed("test-dir") {
				cfg.TestDir = testDir
			}
			if cmd.Flags().Changed("library-root") {
				cfg.LibraryRoot = libraryRoot
			}
			if cmd.Flags().Changed("evaluator") {
				cfg.Evaluator.Command = evaluatorBin
			}
			if cmd.Flags().Changed("output-dir") {
				cfg.OutputDir = outputDir
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Evaluator.Timeout = config.Duration(timeout)
			}

			client := evaluator.NewCLIClient(
				evaluator.WithCommand(cfg.Evaluator.Command, cfg.Evaluator.Args...),
				evaluator.WithTimeout(time.Duration(cfg.Evaluator.Timeout)),
			)
			if err := client.CheckAvailable(); err != nil {
				return &exitError{code: 2, err: err}
			}

			if _, err := os.Stat(cfg.TestDir); err != nil {
				return &exitError{code: 2, err: fmt.Errorf("test directory not found: %s", cfg.TestDir)}
			}

			specs, err := testspec.Discover(cfg.TestDir)
			if err != nil {
				return &exitError{code: 2, err: err}
			}
			if len(specs) == 0 {
				return &exitError{code: 3, err: fmt.Errorf("no test spec files found under %s", cfg.TestDir)}
			}

			verbose, _ := cmd.Flags().GetBool("verbose")

			r := runner.NewRunner(client, cfg.LibraryRoot)
			if !quiet {
				r.SetProgressFunc(func(file string, idx, total int) {
					fmt.Printf("\r  [%s] case %d/%d...", file, idx, total)
				})
			}

			results := r.Run(ctx, specs, runner.RunOptions{Parallel: parallel, Workers: cfg.Workers})
			sum := runner.Summarize(results)

			if !quiet {
				fmt.Print("\r\033[K")
			}
			if err := report.Write(os.Stdout, results, sum, report.Options{Verbose: verbose, Quiet: quiet}); err != nil {
				return &exitError{code: 2, err: err}
			}

			if cfg.OutputDir != "" {
				resultsFile, err := runner.WriteRunMetadata(cfg.OutputDir, results, sum)
				if err != nil {
					return &exitError{code: 2, err: err}
				}
				slog.Info("run metadata written", "file", resultsFile)
			}

			if !sum.Success() {
				return &exitError{code: 1, err: fmt.Errorf("%d of %d tests failed", sum.Failed, sum.Total)}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&testDir, "test-dir", "./tests", "Directory searched recursively for spec files")
	cmd.Flags().StringVar(&libraryRoot, "library-root", ".", "Root directory for bicepFile references")
	cmd.Flags().StringVar(&evaluatorBin, "evaluator", "bicep", "Evaluator binary to invoke")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for machine-readable run results (optional)")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "Distribute spec files across a worker pool")
	cmd.Flags().IntVar(&workers, "workers", 0, "Worker pool size (default: available hardware parallelism)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the summary line")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Per-case evaluator timeout (e.g. 30s). 0 means no timeout")

	return cmd
}
