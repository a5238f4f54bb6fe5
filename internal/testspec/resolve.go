package testspec

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveInput produces the final script text to submit to the evaluator. An
// inline expression is passed verbatim. A library call reads the referenced
// file (relative to libraryRoot, never to the spec file's own directory) and
// concatenates its contents with the call expression, since the evaluator
// needs function definitions and the invocation in one script.
func ResolveInput(c Case, libraryRoot string) (string, error) {
	inline := c.Input != ""
	libCall := c.BicepFile != "" && c.FunctionCall != ""

	switch {
	case inline && libCall:
		return "", fmt.Errorf("test declares both inline input and a library call")
	case inline:
		return c.Input, nil
	case libCall:
		data, err := os.ReadFile(filepath.Join(libraryRoot, c.BicepFile))
		if err != nil {
			return "", fmt.Errorf("library file not found: %s", c.BicepFile)
		}
		return string(data) + "\n" + c.FunctionCall, nil
	default:
		return "", fmt.Errorf("test must have either inline input or library file + call")
	}
}
