// Package assertion evaluates test assertions against normalized evaluator output.
package assertion

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/giantswarm/bicep-testing/internal/normalize"
)

// Kind identifies one of the supported assertion semantics. The values are the
// JSON keys used in test spec files.
type Kind string

const (
	Equals             Kind = "shouldBe"
	NotEquals          Kind = "shouldNotBe"
	Contains           Kind = "shouldContain"
	NotContains        Kind = "shouldNotContain"
	StartsWith         Kind = "shouldStartWith"
	EndsWith           Kind = "shouldEndWith"
	MatchesRegex       Kind = "shouldMatch"
	GreaterThan        Kind = "shouldBeGreaterThan"
	LessThan           Kind = "shouldBeLessThan"
	GreaterThanOrEqual Kind = "shouldBeGreaterThanOrEqual"
	IsEmpty            Kind = "shouldBeEmpty"
)

// Kinds lists every assertion kind in selection priority order. The parser
// scans spec records in exactly this order, so it must not be reordered.
var Kinds = []Kind{
	Equals,
	NotEquals,
	Contains,
	NotContains,
	StartsWith,
	EndsWith,
	MatchesRegex,
	GreaterThan,
	LessThan,
	GreaterThanOrEqual,
	IsEmpty,
}

// Assertion is a single comparison to apply to an evaluator result.
// Expected is empty for IsEmpty, which carries no operand.
type Assertion struct {
	Kind     Kind
	Expected string
}

// Evaluate applies the assertion to the normalized actual value and reports
// whether it holds. The expected operand is normalized the same way as the
// actual value before comparison. An invalid regex pattern or a non-numeric
// side of an ordering comparison is an evaluation error, not a plain false.
func Evaluate(a Assertion, actual string) (bool, error) {
	switch a.Kind {
	case Equals:
		return actual == normalize.Normalize(a.Expected), nil
	case NotEquals:
		return actual != normalize.Normalize(a.Expected), nil
	case Contains:
		return strings.Contains(actual, normalize.Normalize(a.Expected)), nil
	case NotContains:
		return !strings.Contains(actual, normalize.Normalize(a.Expected)), nil
	case StartsWith:
		return strings.HasPrefix(actual, normalize.Normalize(a.Expected)), nil
	case EndsWith:
		return strings.HasSuffix(actual, normalize.Normalize(a.Expected)), nil
	case MatchesRegex:
		re, err := regexp.Compile(normalize.Normalize(a.Expected))
		if err != nil {
			return false, fmt.Errorf("invalid regex pattern %q: %w", a.Expected, err)
		}
		return re.MatchString(actual), nil
	case GreaterThan, LessThan, GreaterThanOrEqual:
		return evaluateOrdering(a.Kind, actual, a.Expected)
	case IsEmpty:
		return isEmptyLiteral(actual), nil
	default:
		return false, fmt.Errorf("unknown assertion kind %q", a.Kind)
	}
}

func evaluateOrdering(kind Kind, actual, expected string) (bool, error) {
	av, err := strconv.ParseFloat(strings.TrimSpace(actual), 64)
	if err != nil {
		return false, fmt.Errorf("actual value %q is not numeric", actual)
	}
	ev, err := strconv.ParseFloat(strings.TrimSpace(expected), 64)
	if err != nil {
		return false, fmt.Errorf("expected value %q is not numeric", expected)
	}

	switch kind {
	case GreaterThan:
		return av > ev, nil
	case LessThan:
		return av < ev, nil
	default:
		return av >= ev, nil
	}
}

// isEmptyLiteral reports whether the actual text is one of the forms the
// evaluator renders for an empty value: nothing, whitespace, a quoted empty
// string, or an empty collection literal. This is a textual heuristic; "0" is
// not empty.
func isEmptyLiteral(actual string) bool {
	switch strings.TrimSpace(actual) {
	case "", "''", `""`, "[]", "{}":
		return true
	}
	return false
}

// Explain renders a human-readable failure message for an assertion that
// evaluated to false. Operands are shown in their normalized form, matching
// what was actually compared.
func Explain(a Assertion, actual string) string {
	expected := normalize.Normalize(a.Expected)

	switch a.Kind {
	case Equals:
		return fmt.Sprintf("expected %q, got %q", expected, actual)
	case NotEquals:
		return fmt.Sprintf("expected anything but %q, got exactly that", expected)
	case Contains:
		return fmt.Sprintf("expected output to contain %q, got %q", expected, actual)
	case NotContains:
		return fmt.Sprintf("expected output not to contain %q, got %q", expected, actual)
	case StartsWith:
		return fmt.Sprintf("expected output to start with %q, got %q", expected, actual)
	case EndsWith:
		return fmt.Sprintf("expected output to end with %q, got %q", expected, actual)
	case MatchesRegex:
		return fmt.Sprintf("expected output to match /%s/, got %q", expected, actual)
	case GreaterThan:
		return fmt.Sprintf("expected a value greater than %s, got %q", expected, actual)
	case LessThan:
		return fmt.Sprintf("expected a value less than %s, got %q", expected, actual)
	case GreaterThanOrEqual:
		return fmt.Sprintf("expected a value greater than or equal to %s, got %q", expected, actual)
	case IsEmpty:
		return fmt.Sprintf("expected empty output, got %q", actual)
	default:
		return fmt.Sprintf("assertion %s failed for %q", a.Kind, actual)
	}
}
