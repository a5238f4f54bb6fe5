// Package testspec loads bicep test spec files into a uniform case model.
//
// Two mutually exclusive file schemas are supported. The modern schema carries
// a "tests" array where each element is one case. The legacy schema has no
// "tests" key: the document root itself is one implicit case whose "expected"
// field becomes an equality assertion. Both collapse into the same Case type
// so downstream consumers never see the distinction.
package testspec

import (
	"github.com/giantswarm/bicep-testing/internal/assertion"
)

// File is one parsed spec file.
type File struct {
	// Label is the spec file's name stripped of the test-file suffix.
	Label string

	// Description is informational only and may be empty.
	Description string

	// Cases holds the file's test cases in declaration order. Order is
	// significant: it drives positional naming and reporting order.
	Cases []Case
}

// Case is one evaluable unit. Exactly one input form must be set: an inline
// expression, or a library file plus a function call composed into one script.
type Case struct {
	// Name defaults to "Test <n>" (1-based) when the spec omits it.
	Name string

	// Input is the inline expression, if any.
	Input string

	// BicepFile and FunctionCall form the library-call input: the referenced
	// file's contents and the call expression are submitted as one script.
	BicepFile    string
	FunctionCall string

	// Assertion is the case's single declared assertion. Valid only when Err
	// is nil.
	Assertion assertion.Assertion

	// Err records a structural problem found at parse time (missing or
	// duplicate assertion key). It is carried on the case rather than failing
	// the whole file so that sibling cases still run.
	Err error
}

// SpecPath locates one discovered spec file.
type SpecPath struct {
	// Path is the file path as discovered.
	Path string

	// Label is the base name stripped of the test-file suffix.
	Label string
}
