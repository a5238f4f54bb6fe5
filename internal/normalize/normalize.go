// Package normalize canonicalizes evaluator output text for comparison.
package normalize

import "strings"

// Banner substrings printed by the bicep CLI when its interactive evaluation
// feature flag is enabled. Lines containing either are diagnostics, never part
// of an expression result. These must match the CLI output literally.
const (
	bannerExperimental = "the feature is experimental"
	bannerTestingOnly  = "experimental features are for testing only"
)

// Normalize converts raw evaluator output into its canonical comparable form:
// carriage returns are removed, experimental-feature banner lines and blank
// lines are dropped, and the result is trimmed. The same transformation is
// applied to multi-line expected values so that comparisons are independent of
// the author's line-ending choice.
//
// Normalize is pure and idempotent; it always returns a string, possibly empty.
func Normalize(raw string) string {
	s := strings.ReplaceAll(raw, "\r", "")

	lines := strings.Split(s, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.Contains(line, bannerExperimental) || strings.Contains(line, bannerTestingOnly) {
			continue
		}
		kept = append(kept, line)
	}

	return strings.TrimSpace(strings.Join(kept, "\n"))
}
