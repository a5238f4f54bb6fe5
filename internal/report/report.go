// Package report renders test results for the terminal.
package report

import (
	"fmt"
	"io"

	"github.com/giantswarm/bicep-testing/internal/runner"
)

// Options controls report verbosity.
type Options struct {
	// Verbose prints passing cases as well as failing ones.
	Verbose bool

	// Quiet prints only the summary line.
	Quiet bool
}

// Write renders per-case results followed by the summary line. Failing cases
// are always shown unless Quiet is set; passing cases only under Verbose.
func Write(w io.Writer, results []runner.Result, sum runner.Summary, opts Options) error {
	s := DefaultStyles()

	for _, r := range results {
		if opts.Quiet {
			break
		}
		if r.Passed {
			if opts.Verbose {
				fmt.Fprintf(w, "%s  %s\n", s.Pass.Render("PASS"), s.CaseName.Render(caseLabel(r)))
			}
			continue
		}

		fmt.Fprintf(w, "%s  %s %s\n",
			s.Fail.Render("FAIL"),
			s.CaseName.Render(caseLabel(r)),
			s.FailureKind.Render("["+string(r.Failure)+"]"))
		if r.Message != "" {
			fmt.Fprintf(w, "      %s\n", s.Message.Render(r.Message))
		}
	}

	summary := fmt.Sprintf("%d tests, %d passed, %d failed", sum.Total, sum.Passed, sum.Failed)
	if sum.Success() {
		fmt.Fprintf(w, "\n%s\n", s.SummaryOK.Render(summary))
	} else {
		fmt.Fprintf(w, "\n%s\n", s.SummaryBad.Render(summary))
	}

	return nil
}

func caseLabel(r runner.Result) string {
	if r.Index == 0 {
		return r.File
	}
	return fmt.Sprintf("%s :: %s", r.File, r.Name)
}
