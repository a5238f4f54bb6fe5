// Package runner orchestrates test execution across spec files.
package runner

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"sync"

	"github.com/giantswarm/bicep-testing/internal/assertion"
	"github.com/giantswarm/bicep-testing/internal/evaluator"
	"github.com/giantswarm/bicep-testing/internal/normalize"
	"github.com/giantswarm/bicep-testing/internal/testspec"
)

// ProgressFunc is called to report progress during test execution.
type ProgressFunc func(file string, caseIndex, totalCases int)

// RunOptions configures execution behavior.
type RunOptions struct {
	// Parallel distributes whole spec files across a bounded worker pool.
	// Results within a file stay ordered and totals are identical to a
	// sequential run over the same inputs.
	Parallel bool

	// Workers bounds the pool size. Zero or negative means the available
	// hardware parallelism.
	Workers int
}

// Runner executes parsed spec files against an evaluator.
type Runner struct {
	client      evaluator.Client
	libraryRoot string
	progress    ProgressFunc
}

// NewRunner creates a test runner. libraryRoot is the fixed root against
// which bicepFile references resolve.
func NewRunner(client evaluator.Client, libraryRoot string) *Runner {
	return &Runner{
		client:      client,
		libraryRoot: libraryRoot,
	}
}

// SetProgressFunc sets the progress callback.
func (r *Runner) SetProgressFunc(fn ProgressFunc) {
	r.progress = fn
}

// Run executes every case of every spec file and returns one result per case.
// Sequential mode processes files strictly in the given order, which is the
// reference ordering for reporting. Failures never abort the run; each case is
// attempted exactly once.
func (r *Runner) Run(ctx context.Context, specs []testspec.SpecPath, opts RunOptions) []Result {
	if opts.Parallel {
		return r.runParallel(ctx, specs, opts.Workers)
	}

	var results []Result
	for i, sp := range specs {
		if err := ctx.Err(); err != nil {
			slog.Warn("test run cancelled", "remaining_files", len(specs)-i)
			break
		}
		results = append(results, r.runFile(ctx, sp)...)
	}
	return results
}

// runParallel distributes whole spec files over a bounded worker pool. Each
// worker writes into its file's slot of a pre-sized slice, so accumulation
// needs no shared counters and the merged order matches the sequential order.
func (r *Runner) runParallel(ctx context.Context, specs []testspec.SpecPath, workers int) []Result {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(specs) {
		workers = len(specs)
	}
	if workers < 1 {
		workers = 1
	}

	perFile := make([][]Result, len(specs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				perFile[idx] = r.runFile(ctx, specs[idx])
			}
		}()
	}

	for idx := range specs {
		if err := ctx.Err(); err != nil {
			slog.Warn("test run cancelled", "file", specs[idx].Path)
			break
		}
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	var results []Result
	for _, rs := range perFile {
		results = append(results, rs...)
	}
	return results
}

// runFile parses one spec file and executes its cases in order. A file that
// cannot be read or parsed yields a single structural failure; a file with
// zero cases yields nothing but a warning.
func (r *Runner) runFile(ctx context.Context, sp testspec.SpecPath) []Result {
	data, err := os.ReadFile(sp.Path)
	if err != nil {
		return []Result{{
			Name:    sp.Label,
			File:    sp.Label,
			Failure: FailureStructural,
			Message: "failed to read spec file: " + err.Error(),
		}}
	}

	file, err := testspec.Parse(data, sp.Label)
	if err != nil {
		return []Result{{
			Name:    sp.Label,
			File:    sp.Label,
			Failure: FailureStructural,
			Message: err.Error(),
		}}
	}

	if len(file.Cases) == 0 {
		slog.Warn("spec file declares no test cases", "file", sp.Path)
		return nil
	}

	results := make([]Result, 0, len(file.Cases))
	for i, c := range file.Cases {
		if r.progress != nil {
			r.progress(sp.Label, i+1, len(file.Cases))
		}
		results = append(results, r.runCase(ctx, c, sp.Label, i+1))
	}
	return results
}

// runCase executes the per-case pipeline: resolve input, invoke the evaluator,
// normalize, assert. Each failure class short-circuits into a result; a
// structural failure is detected before the evaluator is ever invoked.
func (r *Runner) runCase(ctx context.Context, c testspec.Case, fileLabel string, index int) Result {
	res := Result{
		Name:  c.Name,
		File:  fileLabel,
		Index: index,
	}

	if c.Err != nil {
		res.Failure = FailureStructural
		res.Message = c.Err.Error()
		return res
	}

	script, err := testspec.ResolveInput(c, r.libraryRoot)
	if err != nil {
		res.Failure = FailureStructural
		res.Message = err.Error()
		return res
	}

	raw, err := r.client.Evaluate(ctx, script)
	if err != nil {
		res.Failure = FailureEvaluation
		res.Message = err.Error()
		return res
	}

	actual := normalize.Normalize(raw)

	ok, err := assertion.Evaluate(c.Assertion, actual)
	if err != nil {
		res.Failure = FailureEvaluation
		res.Message = err.Error()
		return res
	}
	if !ok {
		res.Failure = FailureMismatch
		res.Message = assertion.Explain(c.Assertion, actual)
		return res
	}

	res.Passed = true
	return res
}
