package runner

// FailureKind classifies why a test case failed.
type FailureKind string

const (
	// FailureStructural marks a malformed or incomplete spec: missing input,
	// missing or duplicate assertion key, missing library file, malformed
	// JSON. Detected before the evaluator is invoked.
	FailureStructural FailureKind = "structural"

	// FailureEvaluation marks a case that could not be evaluated: evaluator
	// unreachable, invalid regex pattern, non-numeric operand to an ordering
	// assertion.
	FailureEvaluation FailureKind = "evaluation"

	// FailureMismatch marks an assertion that legitimately evaluated to false.
	FailureMismatch FailureKind = "mismatch"
)

// Result is the outcome of one test case.
type Result struct {
	// Name is the case's display name.
	Name string `json:"name"`

	// File is the spec file's label (name without the test-file suffix).
	File string `json:"file"`

	// Index is the case's 1-based position within its file. Zero for
	// file-level failures (unreadable or malformed spec file).
	Index int `json:"index"`

	// Passed reports whether the assertion held.
	Passed bool `json:"passed"`

	// Failure and Message describe the failure. Both are empty when Passed.
	Failure FailureKind `json:"failure,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Summary is the aggregate of a run. Total == Passed + Failed always holds.
type Summary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Success reports whether the run should gate CI as passing.
func (s Summary) Success() bool {
	return s.Failed == 0
}

// Summarize reduces results to totals. It is a pure fold and order
// independent, so sequential and concurrent runs over the same inputs yield
// identical summaries.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Passed {
			s.Passed++
		}
	}
	s.Failed = s.Total - s.Passed
	return s
}
